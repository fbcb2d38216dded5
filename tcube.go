package gli

// Cube map faces, in storage order.
const (
	FacePositiveX = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
)

// TextureCube is a cube map: six square 2D faces sharing one mip chain
// length.
type TextureCube struct {
	Texture
}

// NewTextureCube allocates a cube map with levels mip levels per face.
// The extent must be square.
func NewTextureCube(format Format, extent Extent2D, levels int, opts ...Option) (TextureCube, error) {
	t, err := newTexture(TargetCube, format, extent.Extent3D(), 1, levels, buildOptions(opts))
	return TextureCube{t}, err
}

// NewTextureCubeMipmapped allocates a cube map with full mip chains.
func NewTextureCubeMipmapped(format Format, extent Extent2D, opts ...Option) (TextureCube, error) {
	return NewTextureCube(format, extent, LevelCount(extent.Extent3D()), opts...)
}

// NewTextureCubeView returns a cube view of the part of src selected by r.
// src must itself be a cube map or cube map array.
func NewTextureCubeView(src Texture, format Format, r Range) (TextureCube, error) {
	t, err := newView(src, TargetCube, format, r)
	return TextureCube{t}, err
}

// Extent returns the extent of one face at level, relative to t.
func (t TextureCube) Extent(level int) Extent2D {
	return t.Texture.Extent(level).Extent2D()
}

// View returns a new reference to the whole of t.
func (t TextureCube) View() (TextureCube, error) {
	v, err := t.Texture.View()
	return TextureCube{v}, err
}

// Subset returns a new reference to levels [baseLevel, maxLevel] of every
// face of t.
func (t TextureCube) Subset(baseLevel, maxLevel int) (TextureCube, error) {
	v, err := t.Texture.Subset(Range{
		MaxFace:   t.Faces() - 1,
		BaseLevel: baseLevel,
		MaxLevel:  maxLevel,
	})
	return TextureCube{v}, err
}

// Face returns a 2D view of one face of t.
func (t TextureCube) Face(face int) (Texture2D, error) {
	return NewTexture2DView(t.Texture, t.format, Range{
		BaseFace: face,
		MaxFace:  face,
		MaxLevel: t.Levels() - 1,
	})
}

// Equal reports whether t and o view the same images the same way.
func (t TextureCube) Equal(o TextureCube) bool { return t.Texture.Equal(o.Texture) }

// Compare orders t and o; see Texture.Compare.
func (t TextureCube) Compare(o TextureCube) int { return t.Texture.Compare(o.Texture) }
