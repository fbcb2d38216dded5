package gli

import "fmt"

// Copy copies one image of src into one image of t. Indices are relative to
// each texture. Both images must have the same byte size and compatible
// formats. On error t is unchanged.
func (t Texture) Copy(src Texture, srcLayer, srcFace, srcLevel, dstLayer, dstFace, dstLevel int) error {
	if t.Empty() || src.Empty() {
		return ErrEmpty
	}
	if !t.format.Compatible(src.format) {
		return fmt.Errorf("%w: copy from %v to %v", ErrFormatMismatch, src.format, t.format)
	}
	from, err := src.ImageData(srcLayer, srcFace, srcLevel)
	if err != nil {
		return fmt.Errorf("copy source: %w", err)
	}
	to, err := t.ImageData(dstLayer, dstFace, dstLevel)
	if err != nil {
		return fmt.Errorf("copy destination: %w", err)
	}
	if len(from) != len(to) {
		return fmt.Errorf("%w: copy of %d byte image into %d bytes", ErrFormatMismatch, len(from), len(to))
	}
	copy(to, from)
	return nil
}

// CopySubset copies the box of size extent at srcOffset in one image of
// src to dstOffset in one image of t. Indices are relative to each
// texture. The box must lie inside both images and be aligned to the
// format's blocks. On error t is unchanged.
func (t Texture) CopySubset(src Texture,
	srcLayer, srcFace, srcLevel int, srcOffset Offset3D,
	dstLayer, dstFace, dstLevel int, dstOffset Offset3D,
	extent Extent3D,
) error {
	if t.Empty() || src.Empty() {
		return ErrEmpty
	}
	if !t.format.Compatible(src.format) {
		return fmt.Errorf("%w: copy from %v to %v", ErrFormatMismatch, src.format, t.format)
	}
	ss, err := src.locate(srcLayer, srcFace, srcLevel)
	if err != nil {
		return fmt.Errorf("copy source: %w", err)
	}
	ds, err := t.locate(dstLayer, dstFace, dstLevel)
	if err != nil {
		return fmt.Errorf("copy destination: %w", err)
	}
	return ds.CopyRegion(ss, Region{
		SrcLayer:  src.baseLayer + srcLayer,
		SrcFace:   src.baseFace + srcFace,
		SrcLevel:  src.baseLevel + srcLevel,
		SrcOffset: srcOffset,
		DstLayer:  t.baseLayer + dstLayer,
		DstFace:   t.baseFace + dstFace,
		DstLevel:  t.baseLevel + dstLevel,
		DstOffset: dstOffset,
		Extent:    extent,
	})
}

// Clear zeroes every image of t. Images of the storage outside t are not
// touched.
func (t Texture) Clear() error {
	return t.eachImage(Image.Clear)
}

// ClearImage zeroes the image at (layer, face, level), relative to t.
func (t Texture) ClearImage(layer, face, level int) error {
	img, err := t.At(layer, face, level)
	if err != nil {
		return err
	}
	return img.Clear()
}

// Fill sets every texel of every image of t to texel.
func (t Texture) Fill(texel []byte) error {
	if len(texel) != t.format.BlockSize() {
		return fmt.Errorf("%w: %d byte texel for %v", ErrFormatMismatch, len(texel), t.format)
	}
	return t.eachImage(func(img Image) error { return img.Fill(texel) })
}

// FillImage sets every texel of the image at (layer, face, level),
// relative to t, to texel.
func (t Texture) FillImage(layer, face, level int, texel []byte) error {
	img, err := t.At(layer, face, level)
	if err != nil {
		return err
	}
	return img.Fill(texel)
}

func (t Texture) eachImage(fn func(Image) error) error {
	if t.Empty() {
		return ErrEmpty
	}
	for i := range t.ImageCount() {
		img, err := t.Image(i)
		if err != nil {
			return err
		}
		if err := fn(img); err != nil {
			return err
		}
	}
	return nil
}
