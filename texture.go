package gli

import (
	"bytes"
	"cmp"
	"fmt"
	"sync/atomic"
)

// handle is the release token shared by all copies of one Texture value.
// Each handle owns exactly one reference to its storage.
type handle struct {
	storage  *Storage
	released atomic.Bool
}

// Range selects layers, faces and levels of a texture. Bounds are
// inclusive and relative to the texture the range is applied to.
type Range struct {
	BaseLayer, MaxLayer int
	BaseFace, MaxFace   int
	BaseLevel, MaxLevel int
}

// Layers returns the number of layers in r.
func (r Range) Layers() int { return r.MaxLayer - r.BaseLayer + 1 }

// Faces returns the number of faces in r.
func (r Range) Faces() int { return r.MaxFace - r.BaseFace + 1 }

// Levels returns the number of levels in r.
func (r Range) Levels() int { return r.MaxLevel - r.BaseLevel + 1 }

// Texture is a view of a range of layers, faces and levels of a Storage.
//
// Texture is a small value: copying it does not copy texel data and does
// not add a reference. All copies of one Texture share its release token,
// so Release frees the reference once no matter how many copies call it.
// Views that must outlive the value they were derived from are made with
// View, Reinterpret or Subset, each of which holds its own reference.
//
// The zero Texture is empty.
type Texture struct {
	ref    *handle
	target Target
	format Format

	baseLayer, maxLayer int
	baseFace, maxFace   int
	baseLevel, maxLevel int

	swizzles Swizzles
}

// newTexture allocates a storage for target and wraps it in a view of its
// whole range. A zero extent yields an empty texture and no error.
func newTexture(target Target, format Format, extent Extent3D, layers, levels int, o options) (Texture, error) {
	if !format.IsValid() {
		return Texture{}, fmt.Errorf("%w: %d", ErrInvalidFormat, format)
	}
	if !target.validExtent(extent) {
		return Texture{}, fmt.Errorf("%w: %v for %v texture", ErrInvalidExtent, extent, target)
	}
	if !o.swizzles.IsValid() {
		return Texture{}, fmt.Errorf("%w: swizzles %v", ErrInvalidFormat, o.swizzles)
	}
	if extent.IsEmpty() {
		return Texture{target: target, format: format, swizzles: o.swizzles}, nil
	}
	if !target.IsArray() && layers != 1 {
		return Texture{}, fmt.Errorf("%w: %d layers for %v texture", ErrInvalidExtent, layers, target)
	}

	faces := 1
	if target.IsCube() {
		faces = cubeFaces
	}
	s, err := newStorage(format, extent, layers, faces, levels, o)
	if err != nil {
		return Texture{}, err
	}
	return Texture{
		ref:      &handle{storage: s},
		target:   target,
		format:   format,
		maxLayer: layers - 1,
		maxFace:  faces - 1,
		maxLevel: levels - 1,
		swizzles: o.swizzles,
	}, nil
}

// newView returns a new reference to the part of src selected by r,
// relative to src, seen as target with the given format.
func newView(src Texture, target Target, format Format, r Range) (Texture, error) {
	if src.Empty() {
		return Texture{}, ErrEmpty
	}
	if src.target.Dimensions() != target.Dimensions() || (target.IsCube() && !src.target.IsCube()) {
		return Texture{}, fmt.Errorf("%w: %v view of %v texture", ErrInvalidRange, target, src.target)
	}
	if !format.Compatible(src.ref.storage.format) {
		return Texture{}, fmt.Errorf("%w: %v view of %v storage", ErrFormatMismatch, format, src.ref.storage.format)
	}
	if err := src.checkRange(r); err != nil {
		return Texture{}, err
	}
	if !target.IsArray() && r.Layers() != 1 {
		return Texture{}, fmt.Errorf("%w: %d layers for %v view", ErrInvalidRange, r.Layers(), target)
	}
	if !target.IsCube() && r.Faces() != 1 {
		return Texture{}, fmt.Errorf("%w: %d faces for %v view", ErrInvalidRange, r.Faces(), target)
	}
	if err := src.ref.storage.Retain(); err != nil {
		return Texture{}, err
	}

	return Texture{
		ref:       &handle{storage: src.ref.storage},
		target:    target,
		format:    format,
		baseLayer: src.baseLayer + r.BaseLayer,
		maxLayer:  src.baseLayer + r.MaxLayer,
		baseFace:  src.baseFace + r.BaseFace,
		maxFace:   src.baseFace + r.MaxFace,
		baseLevel: src.baseLevel + r.BaseLevel,
		maxLevel:  src.baseLevel + r.MaxLevel,
		swizzles:  src.swizzles,
	}, nil
}

// checkRange validates r against the counts of t.
func (t Texture) checkRange(r Range) error {
	switch {
	case r.BaseLayer < 0 || r.BaseLayer > r.MaxLayer || r.MaxLayer >= t.Layers():
		return fmt.Errorf("%w: layers [%d, %d] of %d", ErrInvalidRange, r.BaseLayer, r.MaxLayer, t.Layers())
	case r.BaseFace < 0 || r.BaseFace > r.MaxFace || r.MaxFace >= t.Faces():
		return fmt.Errorf("%w: faces [%d, %d] of %d", ErrInvalidRange, r.BaseFace, r.MaxFace, t.Faces())
	case r.BaseLevel < 0 || r.BaseLevel > r.MaxLevel || r.MaxLevel >= t.Levels():
		return fmt.Errorf("%w: levels [%d, %d] of %d", ErrInvalidRange, r.BaseLevel, r.MaxLevel, t.Levels())
	}
	return nil
}

// Empty reports whether t views no storage, either because it was never
// allocated or because it has been released.
func (t Texture) Empty() bool {
	return t.ref == nil || t.ref.released.Load() || t.ref.storage.Released()
}

// storage returns the viewed storage, or nil if t is empty.
func (t Texture) storage() *Storage {
	if t.Empty() {
		return nil
	}
	return t.ref.storage
}

// Storage returns the storage t views, or nil if t is empty.
func (t Texture) Storage() *Storage { return t.storage() }

// Target returns the kind of texture t is.
func (t Texture) Target() Target { return t.target }

// Format returns the format t interprets its texels with.
func (t Texture) Format() Format { return t.format }

// BaseLayer returns the first storage layer of t.
func (t Texture) BaseLayer() int { return t.baseLayer }

// MaxLayer returns the last storage layer of t.
func (t Texture) MaxLayer() int { return t.maxLayer }

// Layers returns the number of layers of t, or 0 if t is empty.
func (t Texture) Layers() int {
	if t.Empty() {
		return 0
	}
	return t.maxLayer - t.baseLayer + 1
}

// BaseFace returns the first storage face of t.
func (t Texture) BaseFace() int { return t.baseFace }

// MaxFace returns the last storage face of t.
func (t Texture) MaxFace() int { return t.maxFace }

// Faces returns the number of faces of t, or 0 if t is empty.
func (t Texture) Faces() int {
	if t.Empty() {
		return 0
	}
	return t.maxFace - t.baseFace + 1
}

// BaseLevel returns the first storage level of t.
func (t Texture) BaseLevel() int { return t.baseLevel }

// MaxLevel returns the last storage level of t.
func (t Texture) MaxLevel() int { return t.maxLevel }

// Levels returns the number of levels of t, or 0 if t is empty.
func (t Texture) Levels() int {
	if t.Empty() {
		return 0
	}
	return t.maxLevel - t.baseLevel + 1
}

// Range returns the whole range of t, relative to t.
func (t Texture) Range() Range {
	return Range{
		MaxLayer: t.Layers() - 1,
		MaxFace:  t.Faces() - 1,
		MaxLevel: t.Levels() - 1,
	}
}

// Extent returns the extent of level, relative to t. It is the zero extent
// if t is empty or level is out of range.
func (t Texture) Extent(level int) Extent3D {
	if level < 0 || level >= t.Levels() {
		return Extent3D{}
	}
	return t.ref.storage.Extent(t.baseLevel + level)
}

// SetSwizzles sets the swizzle override of t. Components left as
// SwizzleNone inherit the format default. Other views of the same storage
// are not affected.
func (t *Texture) SetSwizzles(s Swizzles) error {
	if !s.IsValid() {
		return fmt.Errorf("%w: swizzles %v", ErrInvalidFormat, s)
	}
	t.swizzles = s
	return nil
}

// Swizzles returns the swizzles of t with the format defaults filled in.
func (t Texture) Swizzles() Swizzles {
	return t.swizzles.Resolve(t.format.Swizzles())
}

// SizeAt returns the bytes of level, relative to t, across the layers and
// faces of t.
func (t Texture) SizeAt(level int) int {
	if level < 0 || level >= t.Levels() {
		return 0
	}
	return t.ref.storage.ImageSize(t.baseLevel+level) * t.Layers() * t.Faces()
}

// Size returns the bytes of all images of t.
func (t Texture) Size() int {
	var n int
	for l := range t.Levels() {
		n += t.SizeAt(l)
	}
	return n
}

// Data returns the bytes of the storage from the first image of t to the
// end of its last image. The span also covers images of other faces and
// levels that lie between them when t is narrower than its storage.
// Data returns nil if t is empty.
func (t Texture) Data() []byte {
	s := t.storage()
	if s == nil {
		return nil
	}
	begin := s.offset(t.baseLayer, t.baseFace, t.baseLevel)
	end := s.offset(t.maxLayer, t.maxFace, t.maxLevel) + s.imageSizes[t.maxLevel]
	return s.data[begin:end:end]
}

// ImageData returns the bytes of one image, indices relative to t.
func (t Texture) ImageData(layer, face, level int) ([]byte, error) {
	s, err := t.locate(layer, face, level)
	if err != nil {
		return nil, err
	}
	return s.image(t.baseLayer+layer, t.baseFace+face, t.baseLevel+level), nil
}

// locate checks that (layer, face, level) addresses an image of t.
func (t Texture) locate(layer, face, level int) (*Storage, error) {
	s := t.storage()
	if s == nil {
		return nil, ErrEmpty
	}
	if layer < 0 || layer >= t.Layers() || face < 0 || face >= t.Faces() || level < 0 || level >= t.Levels() {
		return nil, fmt.Errorf("%w: image (layer %d, face %d, level %d) of %dx%dx%d",
			ErrOutOfBounds, layer, face, level, t.Layers(), t.Faces(), t.Levels())
	}
	return s, nil
}

// At returns the image at (layer, face, level), relative to t.
func (t Texture) At(layer, face, level int) (Image, error) {
	s, err := t.locate(layer, face, level)
	if err != nil {
		return Image{}, err
	}
	return Image{
		storage: s,
		format:  t.format,
		swizzle: t.Swizzles(),
		layer:   t.baseLayer + layer,
		face:    t.baseFace + face,
		level:   t.baseLevel + level,
	}, nil
}

// ImageCount returns the number of images of t.
func (t Texture) ImageCount() int {
	return t.Layers() * t.Faces() * t.Levels()
}

// Image returns the image at a linear index. Images are ordered by layer,
// then face, then level.
func (t Texture) Image(index int) (Image, error) {
	if t.Empty() {
		return Image{}, ErrEmpty
	}
	if index < 0 || index >= t.ImageCount() {
		return Image{}, fmt.Errorf("%w: image %d of %d", ErrOutOfBounds, index, t.ImageCount())
	}
	levels, faces := t.Levels(), t.Faces()
	return t.At(index/(faces*levels), index/levels%faces, index%levels)
}

// View returns a new reference to the whole of t.
func (t Texture) View() (Texture, error) {
	return newView(t, t.target, t.format, t.Range())
}

// Reinterpret returns a new reference to the part of t selected by r, read
// with format. format must share block size and block extent with the
// storage format.
func (t Texture) Reinterpret(format Format, r Range) (Texture, error) {
	return newView(t, t.target, format, r)
}

// Subset returns a new reference to the part of t selected by r.
func (t Texture) Subset(r Range) (Texture, error) {
	return newView(t, t.target, t.format, r)
}

// Release drops the reference held by t and every copy of t. The storage
// is freed when its last reference is released. Release of an empty or
// already released texture does nothing.
func (t Texture) Release() {
	if t.ref == nil || !t.ref.released.CompareAndSwap(false, true) {
		return
	}
	t.ref.storage.Release()
}

// Equal reports whether t and o view the same images of the same storage
// with the same target, format and resolved swizzles. Empty textures are
// equal to each other.
func (t Texture) Equal(o Texture) bool {
	return t.Compare(o) == 0
}

// Compare orders textures by storage identity, then target, format, ranges
// and resolved swizzles. Empty textures sort first.
func (t Texture) Compare(o Texture) int {
	ts, us := t.storage(), o.storage()
	switch {
	case ts == nil && us == nil:
		return 0
	case ts == nil:
		return -1
	case us == nil:
		return 1
	}
	if ts != us {
		if c := bytes.Compare(ts.id[:], us.id[:]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(t.target, o.target); c != 0 {
		return c
	}
	if c := cmp.Compare(t.format, o.format); c != 0 {
		return c
	}
	for _, p := range [...][2]int{
		{t.baseLayer, o.baseLayer}, {t.maxLayer, o.maxLayer},
		{t.baseFace, o.baseFace}, {t.maxFace, o.maxFace},
		{t.baseLevel, o.baseLevel}, {t.maxLevel, o.maxLevel},
	} {
		if c := cmp.Compare(p[0], p[1]); c != 0 {
			return c
		}
	}
	ta, oa := t.Swizzles(), o.Swizzles()
	for i := range ta {
		if c := cmp.Compare(ta[i], oa[i]); c != 0 {
			return c
		}
	}
	return 0
}

// String returns a short description of t.
func (t Texture) String() string {
	if t.Empty() {
		return fmt.Sprintf("Texture%v(empty)", t.target)
	}
	return fmt.Sprintf("Texture%v(%v %v, layers %d, faces %d, levels %d)",
		t.target, t.format, t.Extent(0), t.Layers(), t.Faces(), t.Levels())
}
