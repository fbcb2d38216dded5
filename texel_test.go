package gli

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestTexture_LoadStore(t *testing.T) {
	vol, err := NewTexture3D(FormatRGBA8Unorm, Extent3D{Width: 4, Height: 4, Depth: 4}, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer vol.Release()

	texel := []byte{10, 20, 30, 40}
	coord := Offset3D{X: 1, Y: 0, Z: 1}
	if err := vol.Store(coord, 0, 0, 1, texel); err != nil {
		t.Fatalf("Store() = %v", err)
	}
	got, err := vol.Load(coord, 0, 0, 1)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if !bytes.Equal(got, texel) {
		t.Errorf("Load() = %v, want %v", got, texel)
	}

	// Level 1 is 2x2x2: texel (1, 0, 1) is index 5.
	img, _ := vol.ImageData(0, 0, 1)
	if !bytes.Equal(img[20:24], texel) {
		t.Errorf("stored at wrong offset: %v", img)
	}

	got[0] = 99
	if again, _ := vol.Load(coord, 0, 0, 1); again[0] != 10 {
		t.Error("Load() returned a slice aliasing the storage")
	}
}

func TestTexture_LoadStoreErrors(t *testing.T) {
	tex := newRGBA(t, 4, 4, 1)
	bc, err := NewTexture2D(FormatBC1RGBAUnorm, Extent2D{Width: 4, Height: 4}, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer bc.Release()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"outside image", tex.Store(Offset3D{X: 4}, 0, 0, 0, []byte{1, 2, 3, 4}), ErrOutOfBounds},
		{"wrong texel size", tex.Store(Offset3D{}, 0, 0, 0, []byte{1}), ErrFormatMismatch},
		{"huge coordinate", tex.Store(Offset3D{X: math.MaxInt}, 0, 0, 0, []byte{1, 2, 3, 4}), ErrOutOfBounds},
		{"missing level", tex.Store(Offset3D{}, 0, 0, 1, []byte{1, 2, 3, 4}), ErrOutOfBounds},
		{"compressed", bc.Store(Offset3D{}, 0, 0, 0, make([]byte, 8)), ErrFormatMismatch},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.wantErr) {
			t.Errorf("%s: err = %v, want %v", tt.name, tt.err, tt.wantErr)
		}
	}
	if !bytes.Equal(tex.Data(), make([]byte, 64)) {
		t.Error("failed stores modified the texture")
	}
	if _, err := tex.Load(Offset3D{X: math.MaxInt}, 0, 0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Load(MaxInt) = %v, want ErrOutOfBounds", err)
	}
	if _, err := bc.Load(Offset3D{}, 0, 0, 0); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Load(compressed) = %v, want ErrFormatMismatch", err)
	}
}

func TestImage_Accessors(t *testing.T) {
	arr, err := NewTexture1DArray(FormatR16Float, Extent1D{Width: 8}, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer arr.Release()
	sub, err := arr.Subset(1, 2, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Release()

	img, err := sub.At(1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if img.Layer() != 2 || img.Face() != 0 || img.Level() != 1 {
		t.Errorf("image = (%d, %d, %d), want (2, 0, 1)", img.Layer(), img.Face(), img.Level())
	}
	if img.Extent() != (Extent3D{4, 1, 1}) || img.Size() != 8 || len(img.Data()) != 8 {
		t.Errorf("extent %v size %d len %d", img.Extent(), img.Size(), len(img.Data()))
	}
	if img.Format() != FormatR16Float {
		t.Errorf("Format() = %v", img.Format())
	}
	if err := img.Fill([]byte{0x00, 0x3c}); err != nil {
		t.Fatal(err)
	}
	want, _ := arr.ImageData(2, 0, 1)
	if !bytes.Equal(want, []byte{0, 0x3c, 0, 0x3c, 0, 0x3c, 0, 0x3c}) {
		t.Errorf("image bytes = %v", want)
	}

	var zero Image
	if !zero.Empty() || zero.Data() != nil {
		t.Error("zero Image is not empty")
	}
	if err := zero.Clear(); !errors.Is(err, ErrEmpty) {
		t.Errorf("zero Image Clear() = %v, want ErrEmpty", err)
	}
}
