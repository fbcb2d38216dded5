package gli

// Texture2D is a two-dimensional texture with one layer and one face.
type Texture2D struct {
	Texture
}

// NewTexture2D allocates a 2D texture with levels mip levels.
//
// A zero extent returns an empty texture. levels must be between 1 and
// LevelCount of the extent.
func NewTexture2D(format Format, extent Extent2D, levels int, opts ...Option) (Texture2D, error) {
	t, err := newTexture(Target2D, format, extent.Extent3D(), 1, levels, buildOptions(opts))
	return Texture2D{t}, err
}

// NewTexture2DMipmapped allocates a 2D texture with a full mip chain.
func NewTexture2DMipmapped(format Format, extent Extent2D, opts ...Option) (Texture2D, error) {
	return NewTexture2D(format, extent, LevelCount(extent.Extent3D()), opts...)
}

// NewTexture2DView returns a 2D view of the part of src selected by r, read
// with format. src may be any two-dimensional texture; r must select a
// single layer and face.
func NewTexture2DView(src Texture, format Format, r Range) (Texture2D, error) {
	t, err := newView(src, Target2D, format, r)
	return Texture2D{t}, err
}

// Extent returns the extent of level, relative to t.
func (t Texture2D) Extent(level int) Extent2D {
	return t.Texture.Extent(level).Extent2D()
}

// View returns a new reference to the whole of t.
func (t Texture2D) View() (Texture2D, error) {
	v, err := t.Texture.View()
	return Texture2D{v}, err
}

// Subset returns a new reference to levels [baseLevel, maxLevel] of t.
func (t Texture2D) Subset(baseLevel, maxLevel int) (Texture2D, error) {
	v, err := t.Texture.Subset(Range{BaseLevel: baseLevel, MaxLevel: maxLevel})
	return Texture2D{v}, err
}

// Equal reports whether t and o view the same images the same way.
func (t Texture2D) Equal(o Texture2D) bool { return t.Texture.Equal(o.Texture) }

// Compare orders t and o; see Texture.Compare.
func (t Texture2D) Compare(o Texture2D) int { return t.Texture.Compare(o.Texture) }
