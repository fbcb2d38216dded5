package gli

import "github.com/gogpu/gputypes"

// Format identifies the pixel layout of texture data.
//
// Format is a closed set: values outside the registry are rejected when a
// texture is constructed, and lookups on them return the zero FormatInfo.
type Format uint8

const (
	// FormatUndefined is the zero value and is never a valid texture format.
	FormatUndefined Format = iota

	// FormatR8Unorm is one 8-bit normalized channel.
	FormatR8Unorm

	// FormatRG8Unorm is two 8-bit normalized channels.
	FormatRG8Unorm

	// FormatRGB8Unorm is three 8-bit normalized channels, no alpha.
	FormatRGB8Unorm

	// FormatRGBA8Unorm is four 8-bit normalized channels (4 bytes per pixel).
	FormatRGBA8Unorm

	// FormatRGBA8Srgb is FormatRGBA8Unorm in the sRGB color space.
	FormatRGBA8Srgb

	// FormatBGRA8Unorm stores blue first; reads are swizzled back to RGBA.
	FormatBGRA8Unorm

	// FormatBGRA8Srgb is FormatBGRA8Unorm in the sRGB color space.
	FormatBGRA8Srgb

	// FormatR16Float is one 16-bit float channel.
	FormatR16Float

	// FormatRGBA16Float is four 16-bit float channels.
	FormatRGBA16Float

	// FormatR32Float is one 32-bit float channel.
	FormatR32Float

	// FormatRG32Float is two 32-bit float channels.
	FormatRG32Float

	// FormatRGB32Float is three 32-bit float channels.
	FormatRGB32Float

	// FormatRGBA32Float is four 32-bit float channels.
	FormatRGBA32Float

	// FormatD24UnormS8Uint is packed 24-bit depth and 8-bit stencil.
	FormatD24UnormS8Uint

	// FormatD32Float is 32-bit float depth.
	FormatD32Float

	// FormatBC1RGBAUnorm is BC1 (DXT1) block compression, 8 bytes per 4x4 block.
	FormatBC1RGBAUnorm

	// FormatBC3RGBAUnorm is BC3 (DXT5) block compression, 16 bytes per 4x4 block.
	FormatBC3RGBAUnorm

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatFlags describes properties of a format beyond its size.
type FormatFlags uint8

const (
	// FlagCompressed marks block-compressed formats.
	FlagCompressed FormatFlags = 1 << iota
	// FlagSrgb marks formats stored in the sRGB color space.
	FlagSrgb
	// FlagFloat marks floating point channels.
	FlagFloat
	// FlagDepth marks formats with a depth component.
	FlagDepth
	// FlagStencil marks formats with a stencil component.
	FlagStencil
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BlockSize is the number of bytes of one block.
	BlockSize int

	// BlockExtent is the number of texels covered by one block on each
	// axis. It is 1x1x1 for uncompressed formats.
	BlockExtent Extent3D

	// Channels is the number of color channels.
	Channels int

	// Flags holds the format properties.
	Flags FormatFlags

	// Swizzles is the default channel mapping of the format.
	Swizzles Swizzles
}

var (
	unitBlock  = Extent3D{Width: 1, Height: 1, Depth: 1}
	block4x4   = Extent3D{Width: 4, Height: 4, Depth: 1}
	swizzleR   = Swizzles{SwizzleRed, SwizzleZero, SwizzleZero, SwizzleOne}
	swizzleRG  = Swizzles{SwizzleRed, SwizzleGreen, SwizzleZero, SwizzleOne}
	swizzleRGB = Swizzles{SwizzleRed, SwizzleGreen, SwizzleBlue, SwizzleOne}
	swizzleBGR = Swizzles{SwizzleBlue, SwizzleGreen, SwizzleRed, SwizzleAlpha}
)

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatR8Unorm:        {BlockSize: 1, BlockExtent: unitBlock, Channels: 1, Swizzles: swizzleR},
	FormatRG8Unorm:       {BlockSize: 2, BlockExtent: unitBlock, Channels: 2, Swizzles: swizzleRG},
	FormatRGB8Unorm:      {BlockSize: 3, BlockExtent: unitBlock, Channels: 3, Swizzles: swizzleRGB},
	FormatRGBA8Unorm:     {BlockSize: 4, BlockExtent: unitBlock, Channels: 4, Swizzles: IdentitySwizzles},
	FormatRGBA8Srgb:      {BlockSize: 4, BlockExtent: unitBlock, Channels: 4, Flags: FlagSrgb, Swizzles: IdentitySwizzles},
	FormatBGRA8Unorm:     {BlockSize: 4, BlockExtent: unitBlock, Channels: 4, Swizzles: swizzleBGR},
	FormatBGRA8Srgb:      {BlockSize: 4, BlockExtent: unitBlock, Channels: 4, Flags: FlagSrgb, Swizzles: swizzleBGR},
	FormatR16Float:       {BlockSize: 2, BlockExtent: unitBlock, Channels: 1, Flags: FlagFloat, Swizzles: swizzleR},
	FormatRGBA16Float:    {BlockSize: 8, BlockExtent: unitBlock, Channels: 4, Flags: FlagFloat, Swizzles: IdentitySwizzles},
	FormatR32Float:       {BlockSize: 4, BlockExtent: unitBlock, Channels: 1, Flags: FlagFloat, Swizzles: swizzleR},
	FormatRG32Float:      {BlockSize: 8, BlockExtent: unitBlock, Channels: 2, Flags: FlagFloat, Swizzles: swizzleRG},
	FormatRGB32Float:     {BlockSize: 12, BlockExtent: unitBlock, Channels: 3, Flags: FlagFloat, Swizzles: swizzleRGB},
	FormatRGBA32Float:    {BlockSize: 16, BlockExtent: unitBlock, Channels: 4, Flags: FlagFloat, Swizzles: IdentitySwizzles},
	FormatD24UnormS8Uint: {BlockSize: 4, BlockExtent: unitBlock, Channels: 2, Flags: FlagDepth | FlagStencil, Swizzles: swizzleRG},
	FormatD32Float:       {BlockSize: 4, BlockExtent: unitBlock, Channels: 1, Flags: FlagDepth | FlagFloat, Swizzles: swizzleR},
	FormatBC1RGBAUnorm:   {BlockSize: 8, BlockExtent: block4x4, Channels: 4, Flags: FlagCompressed, Swizzles: IdentitySwizzles},
	FormatBC3RGBAUnorm:   {BlockSize: 16, BlockExtent: block4x4, Channels: 4, Flags: FlagCompressed, Swizzles: IdentitySwizzles},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid returns true if the format is a known, defined format.
func (f Format) IsValid() bool {
	return f > FormatUndefined && f < formatCount
}

// BlockSize returns the number of bytes per block (per pixel for
// uncompressed formats).
func (f Format) BlockSize() int {
	return f.Info().BlockSize
}

// BlockExtent returns the texel dimensions of one block.
func (f Format) BlockExtent() Extent3D {
	return f.Info().BlockExtent
}

// Channels returns the number of channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// Swizzles returns the default channel mapping of the format.
func (f Format) Swizzles() Swizzles {
	return f.Info().Swizzles
}

// IsCompressed reports whether f is block compressed.
func (f Format) IsCompressed() bool {
	return f.Info().Flags&FlagCompressed != 0
}

// IsSrgb reports whether f stores sRGB encoded color.
func (f Format) IsSrgb() bool {
	return f.Info().Flags&FlagSrgb != 0
}

// IsDepth reports whether f has a depth component.
func (f Format) IsDepth() bool {
	return f.Info().Flags&FlagDepth != 0
}

// Compatible reports whether views of f and g may alias the same bytes:
// both must be valid and share block size and block extent.
func (f Format) Compatible(g Format) bool {
	if !f.IsValid() || !g.IsValid() {
		return false
	}
	a, b := f.Info(), g.Info()
	return a.BlockSize == b.BlockSize && a.BlockExtent == b.BlockExtent
}

// BlockCount returns the number of blocks needed to cover e, rounding up
// partial blocks. Each axis covers at least one block.
func (f Format) BlockCount(e Extent3D) Extent3D {
	be := f.BlockExtent()
	if be.Width == 0 {
		return Extent3D{}
	}
	return Extent3D{
		Width:  max(1, ceilDiv(e.Width, be.Width)),
		Height: max(1, ceilDiv(e.Height, be.Height)),
		Depth:  max(1, ceilDiv(e.Depth, be.Depth)),
	}
}

// ImageBytes returns the number of bytes of one image of extent e, or -1
// if the size does not fit in an int.
func (f Format) ImageBytes(e Extent3D) int {
	n, ok := f.imageBytes(e)
	if !ok {
		return -1
	}
	return n
}

// imageBytes is ImageBytes with overflow reporting.
func (f Format) imageBytes(e Extent3D) (int, bool) {
	bc := f.BlockCount(e)
	n, ok := mulInt(bc.Width, bc.Height)
	if ok {
		n, ok = mulInt(n, bc.Depth)
	}
	if ok {
		n, ok = mulInt(n, f.BlockSize())
	}
	return n, ok
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatUndefined:
		return "Undefined"
	case FormatR8Unorm:
		return "R8Unorm"
	case FormatRG8Unorm:
		return "RG8Unorm"
	case FormatRGB8Unorm:
		return "RGB8Unorm"
	case FormatRGBA8Unorm:
		return "RGBA8Unorm"
	case FormatRGBA8Srgb:
		return "RGBA8Srgb"
	case FormatBGRA8Unorm:
		return "BGRA8Unorm"
	case FormatBGRA8Srgb:
		return "BGRA8Srgb"
	case FormatR16Float:
		return "R16Float"
	case FormatRGBA16Float:
		return "RGBA16Float"
	case FormatR32Float:
		return "R32Float"
	case FormatRG32Float:
		return "RG32Float"
	case FormatRGB32Float:
		return "RGB32Float"
	case FormatRGBA32Float:
		return "RGBA32Float"
	case FormatD24UnormS8Uint:
		return "D24UnormS8Uint"
	case FormatD32Float:
		return "D32Float"
	case FormatBC1RGBAUnorm:
		return "BC1RGBAUnorm"
	case FormatBC3RGBAUnorm:
		return "BC3RGBAUnorm"
	default:
		return "Unknown"
	}
}

// GPUFormat converts f to the WebGPU texture format.
// It returns false for formats that have no WebGPU equivalent in gputypes.
func (f Format) GPUFormat() (gputypes.TextureFormat, bool) {
	switch f {
	case FormatR8Unorm:
		return gputypes.TextureFormatR8Unorm, true
	case FormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, true
	case FormatRGBA8Srgb:
		return gputypes.TextureFormatRGBA8UnormSrgb, true
	case FormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm, true
	case FormatBGRA8Srgb:
		return gputypes.TextureFormatBGRA8UnormSrgb, true
	case FormatR32Float:
		return gputypes.TextureFormatR32Float, true
	case FormatRG32Float:
		return gputypes.TextureFormatRG32Float, true
	case FormatRGBA32Float:
		return gputypes.TextureFormatRGBA32Float, true
	case FormatD24UnormS8Uint:
		return gputypes.TextureFormatDepth24PlusStencil8, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// FormatFromGPU is the inverse of Format.GPUFormat.
// It returns FormatUndefined for unsupported WebGPU formats.
func FormatFromGPU(f gputypes.TextureFormat) Format {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return FormatR8Unorm
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8Unorm
	case gputypes.TextureFormatRGBA8UnormSrgb:
		return FormatRGBA8Srgb
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8Unorm
	case gputypes.TextureFormatBGRA8UnormSrgb:
		return FormatBGRA8Srgb
	case gputypes.TextureFormatR32Float:
		return FormatR32Float
	case gputypes.TextureFormatRG32Float:
		return FormatRG32Float
	case gputypes.TextureFormatRGBA32Float:
		return FormatRGBA32Float
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatD24UnormS8Uint
	default:
		return FormatUndefined
	}
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
