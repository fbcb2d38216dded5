package gli

import (
	"fmt"
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/google/uuid"
)

// Storage is one contiguous allocation holding every level, face and layer
// of a logical texture.
//
// Images are laid out layer by layer; within a layer face by face; within a
// face level by level, so the mip chain of one face is contiguous:
//
//	offset(layer, face, level) = layer*LayerSize + face*FaceSize + Σ ImageSize(l), l < level
//
// A Storage is shared by the textures viewing it and is reference counted:
// the buffer is handed back to its Allocator exactly once, when the last
// reference is released. Storage does not lock its buffer; callers serialize
// writers (Clear, CopyRegion, writes through Data) against other access.
type Storage struct {
	id     uuid.UUID
	format Format
	extent Extent3D
	layers int
	faces  int
	levels int

	imageSizes   []int // bytes of one image, per level
	levelOffsets []int // offset of each level inside a face
	faceSize     int
	layerSize    int

	data  []byte
	alloc Allocator
	refs  atomic.Int32
}

// NewStorage allocates a storage for the given format, base extent and
// counts. The caller owns the returned reference and must call Release.
//
// Every axis of extent and every count must be at least 1, and levels may
// not exceed LevelCount(extent).
func NewStorage(format Format, extent Extent3D, layers, faces, levels int, opts ...Option) (*Storage, error) {
	return newStorage(format, extent, layers, faces, levels, buildOptions(opts))
}

func newStorage(format Format, extent Extent3D, layers, faces, levels int, o options) (*Storage, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormat, format)
	}
	if err := checkLayout(extent, layers, faces, levels); err != nil {
		return nil, err
	}

	s := &Storage{
		format:       format,
		extent:       extent,
		layers:       layers,
		faces:        faces,
		levels:       levels,
		imageSizes:   make([]int, levels),
		levelOffsets: make([]int, levels),
		alloc:        o.allocator,
	}

	var ok bool
	for l := range levels {
		if s.imageSizes[l], ok = format.imageBytes(extent.Mip(l)); !ok {
			return nil, fmt.Errorf("%w: size overflow at level %d", ErrAllocation, l)
		}
		s.levelOffsets[l] = s.faceSize
		if s.faceSize, ok = addInt(s.faceSize, s.imageSizes[l]); !ok {
			return nil, fmt.Errorf("%w: size overflow", ErrAllocation)
		}
	}
	if s.layerSize, ok = mulInt(s.faceSize, faces); !ok {
		return nil, fmt.Errorf("%w: size overflow", ErrAllocation)
	}
	total, ok := mulInt(s.layerSize, layers)
	if !ok {
		return nil, fmt.Errorf("%w: size overflow", ErrAllocation)
	}

	data, err := s.alloc.Alloc(total, o.zero)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	if len(data) != total {
		s.alloc.Free(data)
		return nil, fmt.Errorf("%w: allocator returned %d bytes, want %d", ErrAllocation, len(data), total)
	}
	s.data = data
	s.id = uuid.New()
	s.refs.Store(1)

	Logger().Debug("gli: storage allocated",
		"id", s.id, "format", format, "extent", extent,
		"layers", layers, "faces", faces, "levels", levels, "bytes", total)
	return s, nil
}

// checkLayout validates the shape of a new storage.
func checkLayout(extent Extent3D, layers, faces, levels int) error {
	switch {
	case extent.Width < 1, extent.Height < 1, extent.Depth < 1:
		return fmt.Errorf("%w: invalid size %v", ErrInvalidExtent, extent)
	case layers < 1:
		return fmt.Errorf("%w: invalid layer count %d", ErrInvalidExtent, layers)
	case faces < 1:
		return fmt.Errorf("%w: invalid face count %d", ErrInvalidExtent, faces)
	case levels < 1, levels > LevelCount(extent):
		return fmt.Errorf("%w: invalid level count %d for %v", ErrInvalidExtent, levels, extent)
	}
	return nil
}

// ID returns the identity of s, stable for its lifetime.
func (s *Storage) ID() uuid.UUID { return s.id }

// Format returns the format the storage was allocated with.
func (s *Storage) Format() Format { return s.format }

// Layers returns the number of layers.
func (s *Storage) Layers() int { return s.layers }

// Faces returns the number of faces per layer.
func (s *Storage) Faces() int { return s.faces }

// Levels returns the number of mip levels per face.
func (s *Storage) Levels() int { return s.levels }

// Extent returns the extent of level, or the zero extent if level is out
// of range.
func (s *Storage) Extent(level int) Extent3D {
	if level < 0 || level >= s.levels {
		return Extent3D{}
	}
	return s.extent.Mip(level)
}

// ImageSize returns the bytes of one image at level, or 0 if level is out
// of range.
func (s *Storage) ImageSize(level int) int {
	if level < 0 || level >= s.levels {
		return 0
	}
	return s.imageSizes[level]
}

// LevelSize returns the bytes of one level across all layers and faces.
func (s *Storage) LevelSize(level int) int {
	return s.ImageSize(level) * s.faces * s.layers
}

// FaceSize returns the bytes of the mip chain of one face.
func (s *Storage) FaceSize() int { return s.faceSize }

// LayerSize returns the bytes of all faces of one layer.
func (s *Storage) LayerSize() int { return s.layerSize }

// Size returns the total buffer length in bytes.
func (s *Storage) Size() int { return s.layerSize * s.layers }

// Offset returns the byte offset of the image at (layer, face, level).
func (s *Storage) Offset(layer, face, level int) (int, error) {
	if !s.inRange(layer, face, level) {
		return 0, fmt.Errorf("%w: image (layer %d, face %d, level %d) of %dx%dx%d",
			ErrOutOfBounds, layer, face, level, s.layers, s.faces, s.levels)
	}
	return s.offset(layer, face, level), nil
}

func (s *Storage) inRange(layer, face, level int) bool {
	return layer >= 0 && layer < s.layers &&
		face >= 0 && face < s.faces &&
		level >= 0 && level < s.levels
}

// offset assumes the indices are in range.
func (s *Storage) offset(layer, face, level int) int {
	return layer*s.layerSize + face*s.faceSize + s.levelOffsets[level]
}

// image returns the bytes of one image, or nil once s is freed.
// It assumes the indices are in range.
func (s *Storage) image(layer, face, level int) []byte {
	if s.data == nil {
		return nil
	}
	off := s.offset(layer, face, level)
	return s.data[off : off+s.imageSizes[level] : off+s.imageSizes[level]]
}

// Data returns the whole buffer, or nil once the storage is freed.
func (s *Storage) Data() []byte { return s.data }

// Clear zeroes the whole buffer. The change is visible to every view of s.
func (s *Storage) Clear() {
	clear(s.data)
}

// Refs returns the current reference count.
func (s *Storage) Refs() int { return int(s.refs.Load()) }

// Released reports whether the buffer has been freed.
func (s *Storage) Released() bool { return s.refs.Load() <= 0 }

// Retain adds a reference. It fails with ErrReleased if the buffer has
// already been freed.
func (s *Storage) Retain() error {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return ErrReleased
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return nil
		}
	}
}

// Release drops a reference and frees the buffer when it was the last one.
// Releasing a freed storage is logged and otherwise ignored.
func (s *Storage) Release() {
	for {
		n := s.refs.Load()
		if n <= 0 {
			Logger().Warn("gli: release of freed storage", "id", s.id)
			return
		}
		if s.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				s.free()
			}
			return
		}
	}
}

func (s *Storage) free() {
	buf := s.data
	s.data = nil
	s.alloc.Free(buf)
	Logger().Debug("gli: storage freed", "id", s.id, "bytes", len(buf))
}

// Region describes a box copy between two images. Offsets and extent are in
// texels and must be aligned to the format's block extent, except that the
// extent may end at the image edge.
type Region struct {
	SrcLayer, SrcFace, SrcLevel int
	SrcOffset                   Offset3D

	DstLayer, DstFace, DstLevel int
	DstOffset                   Offset3D

	Extent Extent3D
}

// CopyRegion copies the box described by r from src into s without any
// format conversion. src may be s itself; overlapping boxes are handled.
//
// Both storages must share block size and block extent (ErrFormatMismatch),
// and the box must lie inside both images (ErrOutOfBounds). On error s is
// left untouched.
func (s *Storage) CopyRegion(src *Storage, r Region) error {
	if s == nil || src == nil {
		return ErrEmpty
	}
	if s.data == nil || src.data == nil {
		return ErrReleased
	}
	if !s.format.Compatible(src.format) {
		return fmt.Errorf("%w: %v and %v", ErrFormatMismatch, src.format, s.format)
	}
	if !src.inRange(r.SrcLayer, r.SrcFace, r.SrcLevel) {
		return fmt.Errorf("%w: source image (layer %d, face %d, level %d)",
			ErrOutOfBounds, r.SrcLayer, r.SrcFace, r.SrcLevel)
	}
	if !s.inRange(r.DstLayer, r.DstFace, r.DstLevel) {
		return fmt.Errorf("%w: destination image (layer %d, face %d, level %d)",
			ErrOutOfBounds, r.DstLayer, r.DstFace, r.DstLevel)
	}

	srcExt := src.extent.Mip(r.SrcLevel)
	dstExt := s.extent.Mip(r.DstLevel)
	if !srcExt.Contains(r.SrcOffset, r.Extent) {
		return fmt.Errorf("%w: box %v at %v exceeds source %v", ErrOutOfBounds, r.Extent, r.SrcOffset, srcExt)
	}
	if !dstExt.Contains(r.DstOffset, r.Extent) {
		return fmt.Errorf("%w: box %v at %v exceeds destination %v", ErrOutOfBounds, r.Extent, r.DstOffset, dstExt)
	}
	be := s.format.BlockExtent()
	if !blockAligned(r.SrcOffset, r.Extent, srcExt, be) || !blockAligned(r.DstOffset, r.Extent, dstExt, be) {
		return fmt.Errorf("%w: box %v not aligned to %v blocks", ErrOutOfBounds, r.Extent, be)
	}
	if r.Extent.IsEmpty() {
		return nil
	}

	srcImg := src.image(r.SrcLayer, r.SrcFace, r.SrcLevel)
	dstImg := s.image(r.DstLayer, r.DstFace, r.DstLevel)

	// Whole image.
	if r.Extent == srcExt && srcExt == dstExt {
		copy(dstImg, srcImg)
		return nil
	}

	bs := s.format.BlockSize()
	srcBlocks := s.format.BlockCount(srcExt)
	dstBlocks := s.format.BlockCount(dstExt)
	box := s.format.BlockCount(r.Extent)
	rowBytes := box.Width * bs

	if s == src {
		// Stage through a copy so overlapping rows are not clobbered.
		srcImg = append([]byte(nil), srcImg...)
	}

	for z := range box.Depth {
		for y := range box.Height {
			so := blockOffset(srcBlocks, bs, r.SrcOffset.X/be.Width, r.SrcOffset.Y/be.Height+y, r.SrcOffset.Z/be.Depth+z)
			do := blockOffset(dstBlocks, bs, r.DstOffset.X/be.Width, r.DstOffset.Y/be.Height+y, r.DstOffset.Z/be.Depth+z)
			copy(dstImg[do:do+rowBytes], srcImg[so:so+rowBytes])
		}
	}
	return nil
}

// blockOffset returns the byte offset of block (x, y, z) in an image whose
// block counts are n.
func blockOffset(n Extent3D, blockSize, x, y, z int) int {
	return ((z*n.Height+y)*n.Width + x) * blockSize
}

// blockAligned reports whether the box at off with size ext starts on a
// block boundary and either spans whole blocks or ends at the image edge.
func blockAligned(off Offset3D, ext, image, block Extent3D) bool {
	if off.X%block.Width != 0 || off.Y%block.Height != 0 || off.Z%block.Depth != 0 {
		return false
	}
	if ext.Width%block.Width != 0 && off.X+ext.Width != image.Width {
		return false
	}
	if ext.Height%block.Height != 0 && off.Y+ext.Height != image.Height {
		return false
	}
	if ext.Depth%block.Depth != 0 && off.Z+ext.Depth != image.Depth {
		return false
	}
	return true
}

func addInt(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b)) //nolint:gosec // a, b are non-negative sizes
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}
