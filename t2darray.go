package gli

// Texture2DArray is an array of two-dimensional textures.
type Texture2DArray struct {
	Texture
}

// NewTexture2DArray allocates layers 2D images with levels mip levels each.
func NewTexture2DArray(format Format, extent Extent2D, layers, levels int, opts ...Option) (Texture2DArray, error) {
	t, err := newTexture(Target2DArray, format, extent.Extent3D(), layers, levels, buildOptions(opts))
	return Texture2DArray{t}, err
}

// NewTexture2DArrayMipmapped allocates a 2D array with full mip chains.
func NewTexture2DArrayMipmapped(format Format, extent Extent2D, layers int, opts ...Option) (Texture2DArray, error) {
	return NewTexture2DArray(format, extent, layers, LevelCount(extent.Extent3D()), opts...)
}

// NewTexture2DArrayView returns a 2D array view of the part of src
// selected by r. src may be any two-dimensional texture, so a single 2D
// texture can be viewed as an array of one layer.
func NewTexture2DArrayView(src Texture, format Format, r Range) (Texture2DArray, error) {
	t, err := newView(src, Target2DArray, format, r)
	return Texture2DArray{t}, err
}

// Extent returns the extent of level, relative to t.
func (t Texture2DArray) Extent(level int) Extent2D {
	return t.Texture.Extent(level).Extent2D()
}

// View returns a new reference to the whole of t.
func (t Texture2DArray) View() (Texture2DArray, error) {
	v, err := t.Texture.View()
	return Texture2DArray{v}, err
}

// Subset returns a new reference to layers [baseLayer, maxLayer] and
// levels [baseLevel, maxLevel] of t.
func (t Texture2DArray) Subset(baseLayer, maxLayer, baseLevel, maxLevel int) (Texture2DArray, error) {
	v, err := t.Texture.Subset(Range{
		BaseLayer: baseLayer,
		MaxLayer:  maxLayer,
		BaseLevel: baseLevel,
		MaxLevel:  maxLevel,
	})
	return Texture2DArray{v}, err
}

// Layer returns a 2D view of one layer of t.
func (t Texture2DArray) Layer(layer int) (Texture2D, error) {
	return NewTexture2DView(t.Texture, t.format, Range{
		BaseLayer: layer,
		MaxLayer:  layer,
		MaxLevel:  t.Levels() - 1,
	})
}

// Equal reports whether t and o view the same images the same way.
func (t Texture2DArray) Equal(o Texture2DArray) bool { return t.Texture.Equal(o.Texture) }

// Compare orders t and o; see Texture.Compare.
func (t Texture2DArray) Compare(o Texture2DArray) int { return t.Texture.Compare(o.Texture) }
