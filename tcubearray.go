package gli

// TextureCubeArray is an array of cube maps.
type TextureCubeArray struct {
	Texture
}

// NewTextureCubeArray allocates layers cube maps with levels mip levels per
// face. The extent must be square.
func NewTextureCubeArray(format Format, extent Extent2D, layers, levels int, opts ...Option) (TextureCubeArray, error) {
	t, err := newTexture(TargetCubeArray, format, extent.Extent3D(), layers, levels, buildOptions(opts))
	return TextureCubeArray{t}, err
}

// NewTextureCubeArrayMipmapped allocates a cube map array with full mip
// chains.
func NewTextureCubeArrayMipmapped(format Format, extent Extent2D, layers int, opts ...Option) (TextureCubeArray, error) {
	return NewTextureCubeArray(format, extent, layers, LevelCount(extent.Extent3D()), opts...)
}

// NewTextureCubeArrayView returns a cube array view of the part of src
// selected by r. src must be a cube map or cube map array.
func NewTextureCubeArrayView(src Texture, format Format, r Range) (TextureCubeArray, error) {
	t, err := newView(src, TargetCubeArray, format, r)
	return TextureCubeArray{t}, err
}

// Extent returns the extent of one face at level, relative to t.
func (t TextureCubeArray) Extent(level int) Extent2D {
	return t.Texture.Extent(level).Extent2D()
}

// View returns a new reference to the whole of t.
func (t TextureCubeArray) View() (TextureCubeArray, error) {
	v, err := t.Texture.View()
	return TextureCubeArray{v}, err
}

// Subset returns a new reference to layers [baseLayer, maxLayer] and
// levels [baseLevel, maxLevel] of every face of t.
func (t TextureCubeArray) Subset(baseLayer, maxLayer, baseLevel, maxLevel int) (TextureCubeArray, error) {
	v, err := t.Texture.Subset(Range{
		BaseLayer: baseLayer,
		MaxLayer:  maxLayer,
		MaxFace:   t.Faces() - 1,
		BaseLevel: baseLevel,
		MaxLevel:  maxLevel,
	})
	return TextureCubeArray{v}, err
}

// Layer returns a cube view of one layer of t.
func (t TextureCubeArray) Layer(layer int) (TextureCube, error) {
	return NewTextureCubeView(t.Texture, t.format, Range{
		BaseLayer: layer,
		MaxLayer:  layer,
		MaxFace:   t.Faces() - 1,
		MaxLevel:  t.Levels() - 1,
	})
}

// Equal reports whether t and o view the same images the same way.
func (t TextureCubeArray) Equal(o TextureCubeArray) bool { return t.Texture.Equal(o.Texture) }

// Compare orders t and o; see Texture.Compare.
func (t TextureCubeArray) Compare(o TextureCubeArray) int { return t.Texture.Compare(o.Texture) }
