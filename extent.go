package gli

import (
	"fmt"
	"math/bits"

	"github.com/gogpu/gputypes"
)

// Extent1D is the size of a 1D image in texels.
type Extent1D struct {
	Width int
}

// Extent2D is the size of a 2D image in texels.
type Extent2D struct {
	Width, Height int
}

// Extent3D is the size of a 3D image in texels.
// Lower-dimensional textures store 1 in the unused axes.
type Extent3D struct {
	Width, Height, Depth int
}

// Extent3D widens e, with height and depth of 1.
func (e Extent1D) Extent3D() Extent3D {
	return Extent3D{Width: e.Width, Height: 1, Depth: 1}
}

// Extent3D widens e, with a depth of 1.
func (e Extent2D) Extent3D() Extent3D {
	return Extent3D{Width: e.Width, Height: e.Height, Depth: 1}
}

// Extent1D returns the width of e.
func (e Extent3D) Extent1D() Extent1D {
	return Extent1D{Width: e.Width}
}

// Extent2D returns the width and height of e.
func (e Extent3D) Extent2D() Extent2D {
	return Extent2D{Width: e.Width, Height: e.Height}
}

// IsEmpty reports whether any axis of e is zero.
func (e Extent3D) IsEmpty() bool {
	return e.Width == 0 || e.Height == 0 || e.Depth == 0
}

// MaxDim returns the largest axis of e.
func (e Extent3D) MaxDim() int {
	return max(e.Width, e.Height, e.Depth)
}

// Mip returns e at mip level, halving every axis per level with a floor of 1.
func (e Extent3D) Mip(level int) Extent3D {
	return Extent3D{
		Width:  max(1, e.Width>>level),
		Height: max(1, e.Height>>level),
		Depth:  max(1, e.Depth>>level),
	}
}

// Contains reports whether the box at off with size ext lies inside e.
func (e Extent3D) Contains(off Offset3D, ext Extent3D) bool {
	if off.X < 0 || off.Y < 0 || off.Z < 0 {
		return false
	}
	if ext.Width < 0 || ext.Height < 0 || ext.Depth < 0 {
		return false
	}
	return off.X <= e.Width && ext.Width <= e.Width-off.X &&
		off.Y <= e.Height && ext.Height <= e.Height-off.Y &&
		off.Z <= e.Depth && ext.Depth <= e.Depth-off.Z
}

// GPU converts e to the WebGPU extent type.
// Negative axes are clamped to zero.
func (e Extent3D) GPU() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(max(0, e.Width)),  //nolint:gosec // clamped
		Height:             uint32(max(0, e.Height)), //nolint:gosec // clamped
		DepthOrArrayLayers: uint32(max(0, e.Depth)),  //nolint:gosec // clamped
	}
}

// String returns e as "WxHxD".
func (e Extent3D) String() string {
	return fmt.Sprintf("%dx%dx%d", e.Width, e.Height, e.Depth)
}

// Offset3D addresses a texel inside an image.
type Offset3D struct {
	X, Y, Z int
}

// GPU converts o to the WebGPU origin type.
// Negative coordinates are clamped to zero.
func (o Offset3D) GPU() gputypes.Origin3D {
	return gputypes.Origin3D{
		X: uint32(max(0, o.X)), //nolint:gosec // clamped
		Y: uint32(max(0, o.Y)), //nolint:gosec // clamped
		Z: uint32(max(0, o.Z)), //nolint:gosec // clamped
	}
}

// LevelCount returns the number of levels of a complete mipmap chain for e:
// floor(log2(max axis)) + 1. It returns 0 for an empty extent.
func LevelCount(e Extent3D) int {
	m := e.MaxDim()
	if m <= 0 {
		return 0
	}
	return bits.Len(uint(m))
}
