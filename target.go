package gli

import "github.com/gogpu/gputypes"

// Target identifies which of the seven texture variants a view is.
type Target uint8

const (
	// Target1D is a single row of texels.
	Target1D Target = iota
	// Target1DArray is an array of 1D images.
	Target1DArray
	// Target2D is a single 2D image with mip levels.
	Target2D
	// Target2DArray is an array of 2D images.
	Target2DArray
	// Target3D is a volume.
	Target3D
	// TargetCube is six square 2D faces.
	TargetCube
	// TargetCubeArray is an array of cube maps.
	TargetCubeArray

	targetCount
)

// targetTrait is the dimensionality trait of a target.
type targetTrait struct {
	dims  int // addressable axes of one image: 1, 2 or 3
	array bool
	cube  bool
}

var targetTraits = [targetCount]targetTrait{
	Target1D:        {dims: 1},
	Target1DArray:   {dims: 1, array: true},
	Target2D:        {dims: 2},
	Target2DArray:   {dims: 2, array: true},
	Target3D:        {dims: 3},
	TargetCube:      {dims: 2, cube: true},
	TargetCubeArray: {dims: 2, array: true, cube: true},
}

// cubeFaces is the face count of cube targets.
const cubeFaces = 6

// IsValid reports whether t is one of the seven targets.
func (t Target) IsValid() bool {
	return t < targetCount
}

// Dimensions returns the number of extent axes of one image of t.
func (t Target) Dimensions() int {
	if !t.IsValid() {
		return 0
	}
	return targetTraits[t].dims
}

// IsArray reports whether t has a layer axis.
func (t Target) IsArray() bool {
	return t.IsValid() && targetTraits[t].array
}

// IsCube reports whether t has six faces.
func (t Target) IsCube() bool {
	return t.IsValid() && targetTraits[t].cube
}

// String returns the conventional target name.
func (t Target) String() string {
	switch t {
	case Target1D:
		return "1D"
	case Target1DArray:
		return "1DArray"
	case Target2D:
		return "2D"
	case Target2DArray:
		return "2DArray"
	case Target3D:
		return "3D"
	case TargetCube:
		return "Cube"
	case TargetCubeArray:
		return "CubeArray"
	default:
		return "Unknown"
	}
}

// TextureDimension returns the WebGPU dimension of the storage behind t.
// Cube targets are stored as 2D layers.
func (t Target) TextureDimension() gputypes.TextureDimension {
	switch t.Dimensions() {
	case 1:
		return gputypes.TextureDimension1D
	case 3:
		return gputypes.TextureDimension3D
	default:
		return gputypes.TextureDimension2D
	}
}

// ViewDimension returns the WebGPU view dimension of t.
// WebGPU has no 1D array views, so Target1DArray reports false.
func (t Target) ViewDimension() (gputypes.TextureViewDimension, bool) {
	switch t {
	case Target1D:
		return gputypes.TextureViewDimension1D, true
	case Target2D:
		return gputypes.TextureViewDimension2D, true
	case Target2DArray:
		return gputypes.TextureViewDimension2DArray, true
	case Target3D:
		return gputypes.TextureViewDimension3D, true
	case TargetCube:
		return gputypes.TextureViewDimensionCube, true
	case TargetCubeArray:
		return gputypes.TextureViewDimensionCubeArray, true
	default:
		var none gputypes.TextureViewDimension
		return none, false
	}
}

// validExtent reports whether e has the shape t requires: unused axes of 1,
// and square faces for cube targets.
func (t Target) validExtent(e Extent3D) bool {
	if e.Width < 0 || e.Height < 0 || e.Depth < 0 {
		return false
	}
	switch t.Dimensions() {
	case 1:
		return e.Height == 1 && e.Depth == 1
	case 2:
		if e.Depth != 1 {
			return false
		}
		return !t.IsCube() || e.Width == e.Height
	case 3:
		return true
	default:
		return false
	}
}
