package gli

import "errors"

// Errors reported by texture construction, addressing and copies.
//
// Callers should compare with errors.Is; most call sites wrap these with
// additional detail.
var (
	// ErrAllocation is returned when the storage size overflows, the
	// allocator fails, or a memory budget would be exceeded.
	ErrAllocation = errors.New("gli: allocation failed")

	// ErrInvalidRange is returned when a base/max range is inverted or
	// exceeds the parent view.
	ErrInvalidRange = errors.New("gli: invalid range")

	// ErrFormatMismatch is returned when two textures with incompatible
	// block layouts are copied, or a view reinterprets a format with a
	// different block size.
	ErrFormatMismatch = errors.New("gli: format mismatch")

	// ErrOutOfBounds is returned when an index, offset or extent falls
	// outside the addressed image or view.
	ErrOutOfBounds = errors.New("gli: out of bounds")

	// ErrInvalidFormat is returned for formats outside the registry.
	ErrInvalidFormat = errors.New("gli: invalid format")

	// ErrInvalidExtent is returned for negative extents, zero level counts
	// or extents that do not fit the texture target.
	ErrInvalidExtent = errors.New("gli: invalid extent")

	// ErrEmpty is returned when operating on an empty texture.
	ErrEmpty = errors.New("gli: empty texture")

	// ErrReleased is returned when accessing storage after its last
	// reference was released.
	ErrReleased = errors.New("gli: storage released")
)
