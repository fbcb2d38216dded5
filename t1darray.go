package gli

// Texture1DArray is an array of one-dimensional textures.
type Texture1DArray struct {
	Texture
}

// NewTexture1DArray allocates layers 1D images with levels mip levels each.
func NewTexture1DArray(format Format, extent Extent1D, layers, levels int, opts ...Option) (Texture1DArray, error) {
	t, err := newTexture(Target1DArray, format, extent.Extent3D(), layers, levels, buildOptions(opts))
	return Texture1DArray{t}, err
}

// NewTexture1DArrayMipmapped allocates a 1D array with full mip chains.
func NewTexture1DArrayMipmapped(format Format, extent Extent1D, layers int, opts ...Option) (Texture1DArray, error) {
	return NewTexture1DArray(format, extent, layers, LevelCount(extent.Extent3D()), opts...)
}

// NewTexture1DArrayView returns a 1D array view of the part of src
// selected by r.
func NewTexture1DArrayView(src Texture, format Format, r Range) (Texture1DArray, error) {
	t, err := newView(src, Target1DArray, format, r)
	return Texture1DArray{t}, err
}

// Extent returns the extent of level, relative to t.
func (t Texture1DArray) Extent(level int) Extent1D {
	return t.Texture.Extent(level).Extent1D()
}

// View returns a new reference to the whole of t.
func (t Texture1DArray) View() (Texture1DArray, error) {
	v, err := t.Texture.View()
	return Texture1DArray{v}, err
}

// Subset returns a new reference to layers [baseLayer, maxLayer] and
// levels [baseLevel, maxLevel] of t.
func (t Texture1DArray) Subset(baseLayer, maxLayer, baseLevel, maxLevel int) (Texture1DArray, error) {
	v, err := t.Texture.Subset(Range{
		BaseLayer: baseLayer,
		MaxLayer:  maxLayer,
		BaseLevel: baseLevel,
		MaxLevel:  maxLevel,
	})
	return Texture1DArray{v}, err
}

// Equal reports whether t and o view the same images the same way.
func (t Texture1DArray) Equal(o Texture1DArray) bool { return t.Texture.Equal(o.Texture) }

// Compare orders t and o; see Texture.Compare.
func (t Texture1DArray) Compare(o Texture1DArray) int { return t.Texture.Compare(o.Texture) }
