// Package gli stores texture images for Go.
//
// # Overview
//
// gli describes 1D, 2D and 3D textures, arrays of them, cube maps and cube
// map arrays, each with an explicit mip chain. All images of one texture
// live in a single contiguous Storage; textures are lightweight views that
// select a range of its layers, faces and levels and never copy bytes.
//
// # Quick Start
//
//	import "github.com/gogpu/gli"
//
//	// A 256x256 RGBA texture with a full mip chain
//	tex, err := gli.NewTexture2DMipmapped(gli.FormatRGBA8Unorm, gli.Extent2D{Width: 256, Height: 256})
//	if err != nil {
//		return err
//	}
//	defer tex.Release()
//
//	// Levels 1 and below share the same bytes
//	small, err := tex.Subset(1, tex.Levels()-1)
//	if err != nil {
//		return err
//	}
//	defer small.Release()
//
//	// Write one texel
//	err = small.Store(gli.Offset3D{X: 3, Y: 4}, 0, 0, 0, []byte{255, 0, 0, 255})
//
// # Layout
//
// A Storage is laid out layer by layer, then face by face, then level by
// level. See Storage.Offset.
//
// # Ownership
//
// Every allocating constructor and every View, Reinterpret or Subset call
// returns a texture holding one reference to its storage. Release drops it;
// the buffer is returned to its Allocator when the last reference goes.
// Copies of a Texture value share one reference, so releasing two copies
// of the same value releases once.
//
// # Concurrency
//
// Reference counting is atomic and textures may be released from any
// goroutine. Texel data is not locked: concurrent reads are safe, writers
// must be serialized by the caller.
//
// # Related packages
//
//   - imageio decodes and encodes images into 2D textures and cube maps.
//   - integration/gputex hands images to a gpucontext texture sink.
package gli

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
