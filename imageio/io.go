// Package imageio decodes image files into gli textures and encodes gli
// images back into files.
//
// Decoding accepts PNG, JPEG, BMP, TIFF and WebP and always produces
// FormatRGBA8Unorm textures. Encoding accepts uncompressed 8-bit formats
// and applies the texture's swizzles.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP with image.Decode

	"github.com/gogpu/gli"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned for file kinds or texture formats
	// imageio cannot handle.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Kind identifies an image file encoding.
type Kind uint8

// Supported encodings.
const (
	KindUnknown Kind = iota
	KindPNG
	KindJPEG
	KindBMP
	KindTIFF
)

// String returns the conventional name of k.
func (k Kind) String() string {
	switch k {
	case KindPNG:
		return "png"
	case KindJPEG:
		return "jpeg"
	case KindBMP:
		return "bmp"
	case KindTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// KindFromPath returns the encoding implied by the extension of path.
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return KindPNG
	case ".jpg", ".jpeg":
		return KindJPEG
	case ".bmp":
		return KindBMP
	case ".tif", ".tiff":
		return KindTIFF
	default:
		return KindUnknown
	}
}

// Decode decodes an image from r into a single level RGBA8 texture.
// The options configure the allocation.
func Decode(r io.Reader, opts ...gli.Option) (gli.Texture2D, error) {
	src, err := decodeNRGBA(r)
	if err != nil {
		return gli.Texture2D{}, err
	}
	return newTexture(src, 1, opts)
}

// DecodeMipmapped decodes an image from r into an RGBA8 texture with a
// full mip chain. Only level 0 is filled; the other levels are left as
// allocated.
func DecodeMipmapped(r io.Reader, opts ...gli.Option) (gli.Texture2D, error) {
	src, err := decodeNRGBA(r)
	if err != nil {
		return gli.Texture2D{}, err
	}
	b := src.Bounds()
	return newTexture(src, gli.LevelCount(gli.Extent3D{Width: b.Dx(), Height: b.Dy(), Depth: 1}), opts)
}

// DecodeBytes decodes an image held in data.
func DecodeBytes(data []byte, opts ...gli.Option) (gli.Texture2D, error) {
	if len(data) == 0 {
		return gli.Texture2D{}, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), opts...)
}

// Load decodes the image file at path.
func Load(path string, opts ...gli.Option) (gli.Texture2D, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return gli.Texture2D{}, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, opts...)
}

func decodeNRGBA(r io.Reader) (*image.NRGBA, error) {
	img, kind, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	b := img.Bounds()
	gli.Logger().Debug("imageio: decoded", "kind", kind, "width", b.Dx(), "height", b.Dy())
	return toNRGBA(img), nil
}

func newTexture(src *image.NRGBA, levels int, opts []gli.Option) (gli.Texture2D, error) {
	b := src.Bounds()
	if b.Empty() {
		return gli.Texture2D{}, ErrEmptyData
	}
	t, err := gli.NewTexture2D(gli.FormatRGBA8Unorm, gli.Extent2D{Width: b.Dx(), Height: b.Dy()}, levels, opts...)
	if err != nil {
		return gli.Texture2D{}, err
	}
	img, err := t.At(0, 0, 0)
	if err == nil {
		err = FromImage(img, src)
	}
	if err != nil {
		t.Release()
		return gli.Texture2D{}, err
	}
	return t, nil
}

// Encode writes img to w in the given encoding.
func Encode(w io.Writer, img gli.Image, kind Kind) error {
	m, err := ToImage(img)
	if err != nil {
		return err
	}
	switch kind {
	case KindPNG:
		err = png.Encode(w, m)
	case KindJPEG:
		err = jpeg.Encode(w, m, &jpeg.Options{Quality: jpeg.DefaultQuality})
	case KindBMP:
		err = bmp.Encode(w, m)
	case KindTIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: encoding %v", ErrUnsupportedFormat, kind)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", kind, err)
	}
	return nil
}

// Save writes img to the file at path, choosing the encoding from the
// file extension.
func Save(path string, img gli.Image) error {
	kind := KindFromPath(path)
	if kind == KindUnknown {
		return fmt.Errorf("%w: file %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, img, kind); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
