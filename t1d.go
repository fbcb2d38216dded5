package gli

// Texture1D is a one-dimensional texture.
type Texture1D struct {
	Texture
}

// NewTexture1D allocates a 1D texture with levels mip levels.
func NewTexture1D(format Format, extent Extent1D, levels int, opts ...Option) (Texture1D, error) {
	t, err := newTexture(Target1D, format, extent.Extent3D(), 1, levels, buildOptions(opts))
	return Texture1D{t}, err
}

// NewTexture1DMipmapped allocates a 1D texture with a full mip chain.
func NewTexture1DMipmapped(format Format, extent Extent1D, opts ...Option) (Texture1D, error) {
	return NewTexture1D(format, extent, LevelCount(extent.Extent3D()), opts...)
}

// NewTexture1DView returns a 1D view of one layer of src.
func NewTexture1DView(src Texture, format Format, r Range) (Texture1D, error) {
	t, err := newView(src, Target1D, format, r)
	return Texture1D{t}, err
}

// Extent returns the extent of level, relative to t.
func (t Texture1D) Extent(level int) Extent1D {
	return t.Texture.Extent(level).Extent1D()
}

// View returns a new reference to the whole of t.
func (t Texture1D) View() (Texture1D, error) {
	v, err := t.Texture.View()
	return Texture1D{v}, err
}

// Subset returns a new reference to levels [baseLevel, maxLevel] of t.
func (t Texture1D) Subset(baseLevel, maxLevel int) (Texture1D, error) {
	v, err := t.Texture.Subset(Range{BaseLevel: baseLevel, MaxLevel: maxLevel})
	return Texture1D{v}, err
}

// Equal reports whether t and o view the same images the same way.
func (t Texture1D) Equal(o Texture1D) bool { return t.Texture.Equal(o.Texture) }

// Compare orders t and o; see Texture.Compare.
func (t Texture1D) Compare(o Texture1D) int { return t.Texture.Compare(o.Texture) }
