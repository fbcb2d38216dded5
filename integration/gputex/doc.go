// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gputex hands gli images to a GPU texture sink.
//
// The GPU side is reached only through gpucontext interfaces, so gputex
// works with any host that can create a texture from RGBA bytes:
//
//	tex, err := gli.NewTexture2D(gli.FormatBGRA8Unorm, gli.Extent2D{Width: 64, Height: 64}, 1)
//	...
//	img, _ := tex.At(0, 0, 0)
//	b, err := gputex.Bind(dc.TextureCreator(), img)
//	...
//	// after writing new texels
//	err = b.Sync()
//
// Images are converted to tightly packed, non-premultiplied RGBA8 with the
// texture's swizzles applied, which is the layout NewTextureFromRGBA takes.
// Describe reports the gputypes view of a whole texture for hosts that
// allocate GPU storage themselves.
package gputex
