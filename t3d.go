package gli

// Texture3D is a volume texture. Every axis, depth included, halves per
// mip level.
type Texture3D struct {
	Texture
}

// NewTexture3D allocates a 3D texture with levels mip levels.
func NewTexture3D(format Format, extent Extent3D, levels int, opts ...Option) (Texture3D, error) {
	t, err := newTexture(Target3D, format, extent, 1, levels, buildOptions(opts))
	return Texture3D{t}, err
}

// NewTexture3DMipmapped allocates a 3D texture with a full mip chain.
func NewTexture3DMipmapped(format Format, extent Extent3D, opts ...Option) (Texture3D, error) {
	return NewTexture3D(format, extent, LevelCount(extent), opts...)
}

// NewTexture3DView returns a 3D view of the part of src selected by r.
func NewTexture3DView(src Texture, format Format, r Range) (Texture3D, error) {
	t, err := newView(src, Target3D, format, r)
	return Texture3D{t}, err
}

// View returns a new reference to the whole of t.
func (t Texture3D) View() (Texture3D, error) {
	v, err := t.Texture.View()
	return Texture3D{v}, err
}

// Subset returns a new reference to levels [baseLevel, maxLevel] of t.
func (t Texture3D) Subset(baseLevel, maxLevel int) (Texture3D, error) {
	v, err := t.Texture.Subset(Range{BaseLevel: baseLevel, MaxLevel: maxLevel})
	return Texture3D{v}, err
}

// Equal reports whether t and o view the same images the same way.
func (t Texture3D) Equal(o Texture3D) bool { return t.Texture.Equal(o.Texture) }

// Compare orders t and o; see Texture.Compare.
func (t Texture3D) Compare(o Texture3D) int { return t.Texture.Compare(o.Texture) }
