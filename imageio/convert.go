package imageio

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/gli"
)

// byteOrder returns, for each byte of a texel of f, the NRGBA channel it
// stores. Only 8-bit uncompressed color formats are supported.
func byteOrder(f gli.Format) ([]int, bool) {
	switch f {
	case gli.FormatR8Unorm:
		return []int{0}, true
	case gli.FormatRG8Unorm:
		return []int{0, 1}, true
	case gli.FormatRGB8Unorm:
		return []int{0, 1, 2}, true
	case gli.FormatRGBA8Unorm, gli.FormatRGBA8Srgb:
		return []int{0, 1, 2, 3}, true
	case gli.FormatBGRA8Unorm, gli.FormatBGRA8Srgb:
		return []int{2, 1, 0, 3}, true
	default:
		return nil, false
	}
}

// toNRGBA converts img to non-premultiplied RGBA with origin (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// planar returns the data and 2D size of img, rejecting volumes and
// formats without an 8-bit channel layout.
func planar(img gli.Image) ([]byte, []int, gli.Extent2D, error) {
	order, ok := byteOrder(img.Format())
	if !ok {
		return nil, nil, gli.Extent2D{}, fmt.Errorf("%w: texture format %v", ErrUnsupportedFormat, img.Format())
	}
	e := img.Extent()
	if e.Depth != 1 {
		return nil, nil, gli.Extent2D{}, fmt.Errorf("%w: image depth %d", ErrUnsupportedFormat, e.Depth)
	}
	data := img.Data()
	if data == nil {
		if img.Empty() && img.Size() > 0 {
			return nil, nil, gli.Extent2D{}, gli.ErrReleased
		}
		return nil, nil, gli.Extent2D{}, gli.ErrEmpty
	}
	return data, order, e.Extent2D(), nil
}

// ToImage converts img to an NRGBA image, applying the swizzles of the
// texture it came from.
func ToImage(img gli.Image) (*image.NRGBA, error) {
	data, order, e, err := planar(img)
	if err != nil {
		return nil, err
	}
	sw := img.Swizzles()
	bs := len(order)
	dst := image.NewNRGBA(image.Rect(0, 0, e.Width, e.Height))
	for y := range e.Height {
		row := data[y*e.Width*bs:]
		pix := dst.Pix[y*dst.Stride:]
		for x := range e.Width {
			var texel [4]uint8
			copy(texel[:], row[x*bs:x*bs+bs])
			c := sw.Apply(texel, 0xff)
			copy(pix[x*4:x*4+4], c[:])
		}
	}
	return dst, nil
}

// FromImage writes src into dst. Both must have the same size. Channels
// dst's format lacks are dropped.
func FromImage(dst gli.Image, src image.Image) error {
	data, order, e, err := planar(dst)
	if err != nil {
		return err
	}
	b := src.Bounds()
	if b.Dx() != e.Width || b.Dy() != e.Height {
		return fmt.Errorf("%w: %dx%d image into %dx%d texture", gli.ErrOutOfBounds, b.Dx(), b.Dy(), e.Width, e.Height)
	}
	n := toNRGBA(src)
	bs := len(order)
	for y := range e.Height {
		row := data[y*e.Width*bs:]
		pix := n.Pix[y*n.Stride:]
		for x := range e.Width {
			for i, ch := range order {
				row[x*bs+i] = pix[x*4+ch]
			}
		}
	}
	return nil
}
