// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gputex

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gli"
	"github.com/gogpu/gli/imageio"
)

// Errors returned by gputex.
var (
	// ErrNilCreator is returned when Bind is given a nil creator.
	ErrNilCreator = errors.New("gputex: nil texture creator")

	// ErrClosed is returned by operations on a closed Binding.
	ErrClosed = errors.New("gputex: binding is closed")

	// ErrNotUpdatable is returned by Sync when the GPU texture cannot be
	// updated in place.
	ErrNotUpdatable = errors.New("gputex: texture does not implement gpucontext.TextureUpdater")
)

// textureDestroyer is implemented by GPU textures that hold resources.
type textureDestroyer interface {
	Destroy()
}

// RGBA returns the texels of img as tightly packed RGBA8 bytes, with the
// swizzles of its texture applied.
func RGBA(img gli.Image) ([]byte, error) {
	m, err := imageio.ToImage(img)
	if err != nil {
		return nil, fmt.Errorf("gputex: %w", err)
	}
	return m.Pix, nil
}

// Binding ties one gli image to the GPU texture created from it.
//
// Binding is NOT safe for concurrent use.
type Binding struct {
	img     gli.Image
	texture gpucontext.Texture
	closed  bool
}

// Bind uploads img through creator and returns the binding.
func Bind(creator gpucontext.TextureCreator, img gli.Image) (*Binding, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	data, err := RGBA(img)
	if err != nil {
		return nil, err
	}
	e := img.Extent()
	tex, err := creator.NewTextureFromRGBA(e.Width, e.Height, data)
	if err != nil {
		return nil, fmt.Errorf("gputex: NewTextureFromRGBA failed: %w", err)
	}
	gli.Logger().Debug("gputex: texture created",
		"format", img.Format(), "width", e.Width, "height", e.Height,
		"layer", img.Layer(), "face", img.Face(), "level", img.Level())
	return &Binding{img: img, texture: tex}, nil
}

// Texture returns the GPU texture, or nil once the binding is closed.
func (b *Binding) Texture() gpucontext.Texture {
	return b.texture
}

// Image returns the bound image.
func (b *Binding) Image() gli.Image {
	return b.img
}

// Sync uploads the current texels of the bound image to the GPU texture.
func (b *Binding) Sync() error {
	if b.closed {
		return ErrClosed
	}
	updater, ok := b.texture.(gpucontext.TextureUpdater)
	if !ok {
		return ErrNotUpdatable
	}
	data, err := RGBA(b.img)
	if err != nil {
		return err
	}
	if err := updater.UpdateData(data); err != nil {
		return fmt.Errorf("gputex: texture update failed: %w", err)
	}
	return nil
}

// Close destroys the GPU texture if it supports it. Close is idempotent.
// The gli texture is not released.
func (b *Binding) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if d, ok := b.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	b.texture = nil
	return nil
}
