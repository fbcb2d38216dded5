package gli

import "fmt"

// Image is one (layer, face, level) image of a texture.
//
// An Image does not hold a reference to its storage. It stays usable while
// the texture it came from is alive; once the storage is freed Data returns
// nil and texel access fails with ErrReleased.
type Image struct {
	storage *Storage
	format  Format
	swizzle Swizzles
	layer   int
	face    int
	level   int
}

// Empty reports whether img addresses no live storage.
func (img Image) Empty() bool {
	return img.storage == nil || img.storage.Released()
}

// Format returns the format the image is read with.
func (img Image) Format() Format { return img.format }

// Swizzles returns the resolved swizzles of the texture img came from.
func (img Image) Swizzles() Swizzles {
	return img.swizzle.Resolve(img.format.Swizzles())
}

// Layer returns the storage layer of img.
func (img Image) Layer() int { return img.layer }

// Face returns the storage face of img.
func (img Image) Face() int { return img.face }

// Level returns the storage level of img.
func (img Image) Level() int { return img.level }

// Extent returns the extent of img.
func (img Image) Extent() Extent3D {
	if img.storage == nil {
		return Extent3D{}
	}
	return img.storage.Extent(img.level)
}

// Size returns the bytes of img.
func (img Image) Size() int {
	if img.storage == nil {
		return 0
	}
	return img.storage.ImageSize(img.level)
}

// Data returns the bytes of img, or nil once the storage is freed.
func (img Image) Data() []byte {
	if img.Empty() {
		return nil
	}
	return img.storage.image(img.layer, img.face, img.level)
}

// Clear zeroes img.
func (img Image) Clear() error {
	data, err := img.bytes()
	if err != nil {
		return err
	}
	clear(data)
	return nil
}

// Fill sets every texel of img to texel, which holds one texel in the
// image format. Compressed formats are filled block by block, so texel
// is then one encoded block.
func (img Image) Fill(texel []byte) error {
	data, err := img.bytes()
	if err != nil {
		return err
	}
	bs := img.format.BlockSize()
	if len(texel) != bs {
		return fmt.Errorf("%w: %d byte texel for %v", ErrFormatMismatch, len(texel), img.format)
	}
	fillBlocks(data, texel)
	return nil
}

func (img Image) bytes() ([]byte, error) {
	if img.storage == nil {
		return nil, ErrEmpty
	}
	data := img.Data()
	if data == nil {
		return nil, ErrReleased
	}
	return data, nil
}

// fillBlocks repeats block over data, doubling the copied prefix.
func fillBlocks(data, block []byte) {
	if len(data) == 0 {
		return
	}
	n := copy(data, block)
	for n < len(data) {
		n += copy(data[n:], data[:n])
	}
}
