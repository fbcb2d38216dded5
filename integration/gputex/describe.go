// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gputex

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gli"
)

// Descriptor is the WebGPU description of a gli texture.
type Descriptor struct {
	Format        gputypes.TextureFormat
	Dimension     gputypes.TextureDimension
	ViewDimension gputypes.TextureViewDimension
	Size          gputypes.Extent3D
	MipLevelCount uint32
}

// Describe maps t to WebGPU types. Size.DepthOrArrayLayers holds the
// depth of 3D textures and layers × faces otherwise, as WebGPU expects.
func Describe(t gli.Texture) (Descriptor, error) {
	if t.Empty() {
		return Descriptor{}, gli.ErrEmpty
	}
	format, ok := t.Format().GPUFormat()
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %v has no WebGPU format", gli.ErrInvalidFormat, t.Format())
	}
	view, ok := t.Target().ViewDimension()
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %v has no WebGPU view dimension", gli.ErrInvalidFormat, t.Target())
	}

	size := t.Extent(0).GPU()
	if t.Target() != gli.Target3D {
		size.DepthOrArrayLayers = uint32(t.Layers() * t.Faces()) //nolint:gosec // counts are small and positive
	}
	return Descriptor{
		Format:        format,
		Dimension:     t.Target().TextureDimension(),
		ViewDimension: view,
		Size:          size,
		MipLevelCount: uint32(t.Levels()), //nolint:gosec // counts are small and positive
	}, nil
}
