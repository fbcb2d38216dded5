package gli

import "fmt"

// texelOffset returns the byte offset of the texel at coord in an image of
// extent e.
func texelOffset(format Format, e Extent3D, coord Offset3D) (int, error) {
	if format.IsCompressed() {
		return 0, fmt.Errorf("%w: texel access to compressed %v", ErrFormatMismatch, format)
	}
	if !e.Contains(coord, Extent3D{Width: 1, Height: 1, Depth: 1}) {
		return 0, fmt.Errorf("%w: texel %v of %v", ErrOutOfBounds, coord, e)
	}
	return ((coord.Z*e.Height+coord.Y)*e.Width + coord.X) * format.BlockSize(), nil
}

// Load returns a copy of the bytes of the texel at coord.
// Compressed formats have no addressable texels and fail with
// ErrFormatMismatch.
func (img Image) Load(coord Offset3D) ([]byte, error) {
	data, err := img.bytes()
	if err != nil {
		return nil, err
	}
	off, err := texelOffset(img.format, img.Extent(), coord)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), data[off:off+img.format.BlockSize()]...), nil
}

// Store writes texel, one texel in the image format, at coord.
func (img Image) Store(coord Offset3D, texel []byte) error {
	data, err := img.bytes()
	if err != nil {
		return err
	}
	off, err := texelOffset(img.format, img.Extent(), coord)
	if err != nil {
		return err
	}
	if len(texel) != img.format.BlockSize() {
		return fmt.Errorf("%w: %d byte texel for %v", ErrFormatMismatch, len(texel), img.format)
	}
	copy(data[off:], texel)
	return nil
}

// Load returns a copy of the texel at coord of the image at (layer, face,
// level), relative to t.
func (t Texture) Load(coord Offset3D, layer, face, level int) ([]byte, error) {
	img, err := t.At(layer, face, level)
	if err != nil {
		return nil, err
	}
	return img.Load(coord)
}

// Store writes texel at coord of the image at (layer, face, level),
// relative to t.
func (t Texture) Store(coord Offset3D, layer, face, level int, texel []byte) error {
	img, err := t.At(layer, face, level)
	if err != nil {
		return err
	}
	return img.Store(coord, texel)
}
