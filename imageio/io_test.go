package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gli"
)

// testImage returns a w x h image whose pixel (x, y) is (x, y, x+y, 255).
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	tex, err := DecodeBytes(encodePNG(t, testImage(5, 3)))
	if err != nil {
		t.Fatalf("DecodeBytes() = %v", err)
	}
	defer tex.Release()

	if tex.Format() != gli.FormatRGBA8Unorm || tex.Extent(0) != (gli.Extent2D{Width: 5, Height: 3}) {
		t.Fatalf("texture = %v", tex)
	}
	got, err := tex.Load(gli.Offset3D{X: 4, Y: 2}, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{4, 2, 6, 255}) {
		t.Errorf("texel (4, 2) = %v", got)
	}
}

func TestDecodeMipmapped(t *testing.T) {
	tex, err := DecodeMipmapped(bytes.NewReader(encodePNG(t, testImage(8, 4))))
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Release()
	if tex.Levels() != 4 {
		t.Errorf("Levels() = %d, want 4", tex.Levels())
	}
	last, _ := tex.ImageData(0, 0, 3)
	if !bytes.Equal(last, make([]byte, 4)) {
		t.Errorf("level 3 = %v, want zero", last)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) = %v, want ErrEmptyData", err)
	}
	if _, err := DecodeBytes([]byte("not an image")); err == nil {
		t.Error("DecodeBytes(garbage) succeeded")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src := testImage(6, 4)
	for _, kind := range []Kind{KindPNG, KindBMP, KindTIFF} {
		t.Run(kind.String(), func(t *testing.T) {
			tex, err := gli.NewTexture2D(gli.FormatRGBA8Unorm, gli.Extent2D{Width: 6, Height: 4}, 1)
			if err != nil {
				t.Fatal(err)
			}
			defer tex.Release()
			img, _ := tex.At(0, 0, 0)
			if err := FromImage(img, src); err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			if err := Encode(&buf, img, kind); err != nil {
				t.Fatalf("Encode() = %v", err)
			}
			back, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() = %v", err)
			}
			defer back.Release()
			if !bytes.Equal(back.Data(), tex.Data()) {
				t.Error("decoded bytes differ from the encoded texture")
			}
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	tex, _ := gli.NewTexture2D(gli.FormatRGBA8Unorm, gli.Extent2D{Width: 8, Height: 8}, 1)
	defer tex.Release()
	img, _ := tex.At(0, 0, 0)

	var buf bytes.Buffer
	if err := Encode(&buf, img, KindJPEG); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty JPEG output")
	}
	if err := Encode(&buf, img, KindUnknown); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(unknown) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestToImageSwizzles(t *testing.T) {
	tex, _ := gli.NewTexture2D(gli.FormatBGRA8Unorm, gli.Extent2D{Width: 1, Height: 1}, 1)
	defer tex.Release()
	if err := tex.Store(gli.Offset3D{}, 0, 0, 0, []byte{30, 20, 10, 40}); err != nil {
		t.Fatal(err)
	}
	img, _ := tex.At(0, 0, 0)
	m, err := ToImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("BGRA pixel = %v", got)
	}

	view, _ := tex.View()
	defer view.Release()
	if err := view.SetSwizzles(gli.Swizzles{gli.SwizzleBlue, gli.SwizzleBlue, gli.SwizzleBlue, gli.SwizzleOne}); err != nil {
		t.Fatal(err)
	}
	img, _ = view.At(0, 0, 0)
	m, _ = ToImage(img)
	if got := m.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 10, B: 10, A: 255}) {
		t.Errorf("swizzled pixel = %v", got)
	}
}

func TestFromImageFormats(t *testing.T) {
	src := testImage(2, 2)
	tests := []struct {
		format gli.Format
		want   []byte // texel (1, 1)
	}{
		{gli.FormatR8Unorm, []byte{1}},
		{gli.FormatRG8Unorm, []byte{1, 1}},
		{gli.FormatRGB8Unorm, []byte{1, 1, 2}},
		{gli.FormatBGRA8Srgb, []byte{2, 1, 1, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			tex, err := gli.NewTexture2D(tt.format, gli.Extent2D{Width: 2, Height: 2}, 1)
			if err != nil {
				t.Fatal(err)
			}
			defer tex.Release()
			img, _ := tex.At(0, 0, 0)
			if err := FromImage(img, src); err != nil {
				t.Fatal(err)
			}
			got, _ := tex.Load(gli.Offset3D{X: 1, Y: 1}, 0, 0, 0)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("texel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromImageErrors(t *testing.T) {
	f32, _ := gli.NewTexture2D(gli.FormatR32Float, gli.Extent2D{Width: 2, Height: 2}, 1)
	defer f32.Release()
	img, _ := f32.At(0, 0, 0)
	if err := FromImage(img, testImage(2, 2)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FromImage(R32Float) = %v, want ErrUnsupportedFormat", err)
	}

	tex, _ := gli.NewTexture2D(gli.FormatRGBA8Unorm, gli.Extent2D{Width: 2, Height: 2}, 1)
	img, _ = tex.At(0, 0, 0)
	if err := FromImage(img, testImage(3, 2)); !errors.Is(err, gli.ErrOutOfBounds) {
		t.Errorf("FromImage(size mismatch) = %v, want ErrOutOfBounds", err)
	}
	tex.Release()
	if _, err := ToImage(img); !errors.Is(err, gli.ErrReleased) {
		t.Errorf("ToImage(released) = %v, want ErrReleased", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	tex, err := DecodeBytes(encodePNG(t, testImage(4, 4)))
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Release()
	img, _ := tex.At(0, 0, 0)

	path := filepath.Join(dir, "out.bmp")
	if err := Save(path, img); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	defer back.Release()
	if !bytes.Equal(back.Data(), tex.Data()) {
		t.Error("BMP round trip changed the pixels")
	}

	if err := Save(filepath.Join(dir, "out.xyz"), img); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.xyz")); !os.IsNotExist(err) {
		t.Error("Save created a file for an unsupported kind")
	}
}

func TestKindFromPath(t *testing.T) {
	tests := map[string]Kind{
		"a.PNG":      KindPNG,
		"b.jpeg":     KindJPEG,
		"c.jpg":      KindJPEG,
		"d.bmp":      KindBMP,
		"e.tif":      KindTIFF,
		"f.webp":     KindUnknown,
		"no-ext":     KindUnknown,
		"dir.png/gz": KindUnknown,
	}
	for path, want := range tests {
		if got := KindFromPath(path); got != want {
			t.Errorf("KindFromPath(%q) = %v, want %v", path, got, want)
		}
	}
}
