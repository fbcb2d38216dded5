package gli

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func newRGBA(t *testing.T, w, h, levels int) Texture2D {
	t.Helper()
	tex, err := NewTexture2D(FormatRGBA8Unorm, Extent2D{Width: w, Height: h}, levels)
	if err != nil {
		t.Fatalf("NewTexture2D() = %v", err)
	}
	t.Cleanup(tex.Release)
	return tex
}

func TestTexture2D_Size(t *testing.T) {
	tex := newRGBA(t, 4, 4, 3)
	if got := tex.Size(); got != 84 {
		t.Errorf("Size() = %d, want 84", got)
	}
	sum := 0
	for l := range tex.Levels() {
		sum += tex.SizeAt(l)
	}
	if sum != tex.Size() {
		t.Errorf("sum of SizeAt = %d, Size() = %d", sum, tex.Size())
	}
	if got := len(tex.Data()); got != 84 {
		t.Errorf("len(Data()) = %d, want 84", got)
	}
}

func TestTexture_ZeroValue(t *testing.T) {
	var tex Texture
	if !tex.Empty() {
		t.Error("zero Texture is not empty")
	}
	if tex.Layers() != 0 || tex.Faces() != 0 || tex.Levels() != 0 || tex.Size() != 0 {
		t.Error("zero Texture has non-zero counts")
	}
	if tex.Data() != nil {
		t.Error("zero Texture has data")
	}
	if _, err := tex.View(); !errors.Is(err, ErrEmpty) {
		t.Errorf("View() = %v, want ErrEmpty", err)
	}
	if _, err := tex.Image(0); !errors.Is(err, ErrEmpty) {
		t.Errorf("Image(0) = %v, want ErrEmpty", err)
	}
	tex.Release()
}

func TestNewTexture_ZeroExtent(t *testing.T) {
	tex, err := NewTexture2D(FormatRGBA8Unorm, Extent2D{}, 1)
	if err != nil {
		t.Fatalf("NewTexture2D(zero) = %v", err)
	}
	if !tex.Empty() {
		t.Error("zero extent texture is not empty")
	}
	if tex.Target() != Target2D {
		t.Errorf("Target() = %v, want 2D", tex.Target())
	}
}

func TestNewTexture_Errors(t *testing.T) {
	tests := []struct {
		name    string
		create  func() error
		wantErr error
	}{
		{"format", func() error {
			_, err := NewTexture2D(FormatUndefined, Extent2D{Width: 4, Height: 4}, 1)
			return err
		}, ErrInvalidFormat},
		{"levels", func() error {
			_, err := NewTexture2D(FormatR8Unorm, Extent2D{Width: 4, Height: 4}, 0)
			return err
		}, ErrInvalidExtent},
		{"cube not square", func() error {
			_, err := NewTextureCube(FormatR8Unorm, Extent2D{Width: 4, Height: 2}, 1)
			return err
		}, ErrInvalidExtent},
		{"array layers", func() error {
			_, err := NewTexture2DArray(FormatR8Unorm, Extent2D{Width: 4, Height: 4}, 0, 1)
			return err
		}, ErrInvalidExtent},
		{"swizzles", func() error {
			_, err := NewTexture2D(FormatR8Unorm, Extent2D{Width: 4, Height: 4}, 1, WithSwizzles(Swizzles{swizzleCount}))
			return err
		}, ErrInvalidFormat},
		{"image size overflow", func() error {
			_, err := NewTexture2D(FormatRGBA8Unorm, Extent2D{Width: math.MaxInt / 2, Height: 3}, 1)
			return err
		}, ErrAllocation},
		{"budget", func() error {
			_, err := NewTexture2D(FormatR8Unorm, Extent2D{Width: 4, Height: 4}, 1,
				WithAllocator(NewBudgetAllocator(nil, 8)))
			return err
		}, ErrAllocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.create(); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTexture_WithoutZeroInit(t *testing.T) {
	pool := NewPoolAllocator(1)
	first, _ := NewTexture2D(FormatR8Unorm, Extent2D{Width: 2, Height: 2}, 1, WithAllocator(pool))
	copy(first.Data(), []byte{1, 2, 3, 4})
	first.Release()

	reused, err := NewTexture2D(FormatR8Unorm, Extent2D{Width: 2, Height: 2}, 1,
		WithAllocator(pool), WithoutZeroInit())
	if err != nil {
		t.Fatal(err)
	}
	defer reused.Release()
	if !bytes.Equal(reused.Data(), []byte{1, 2, 3, 4}) {
		t.Errorf("Data() = %v, want the pooled contents", reused.Data())
	}
}

func TestTexture_ViewRoundTrip(t *testing.T) {
	tex := newRGBA(t, 8, 8, 4)
	fillSequence(tex.Data())

	view, err := tex.View()
	if err != nil {
		t.Fatal(err)
	}
	defer view.Release()

	if !bytes.Equal(view.Data(), tex.Data()) {
		t.Error("full view Data() differs from original")
	}
	if !view.Equal(tex) {
		t.Error("full view is not Equal to original")
	}
	if tex.Storage().Refs() != 2 {
		t.Errorf("Refs() = %d, want 2", tex.Storage().Refs())
	}
}

func TestTexture_SubsetAssociative(t *testing.T) {
	arr, err := NewTexture2DArray(FormatR8Unorm, Extent2D{Width: 16, Height: 16}, 6, 5)
	if err != nil {
		t.Fatal(err)
	}
	defer arr.Release()

	a, err := arr.Subset(1, 4, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()
	ab, err := a.Subset(1, 2, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer ab.Release()
	direct, err := arr.Subset(2, 3, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer direct.Release()

	if !ab.Equal(direct) {
		t.Errorf("nested subset %v != direct subset %v", ab, direct)
	}
	if ab.BaseLayer() != 2 || ab.MaxLayer() != 3 || ab.BaseLevel() != 2 || ab.MaxLevel() != 3 {
		t.Errorf("ranges = layers [%d, %d] levels [%d, %d]",
			ab.BaseLayer(), ab.MaxLayer(), ab.BaseLevel(), ab.MaxLevel())
	}
	if got := ab.Extent(0); got != (Extent2D{Width: 4, Height: 4}) {
		t.Errorf("Extent(0) = %v, want 4x4", got)
	}
}

func TestTexture_SubsetInvalidRange(t *testing.T) {
	arr, err := NewTexture2DArray(FormatR8Unorm, Extent2D{Width: 8, Height: 8}, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer arr.Release()

	tests := []struct {
		name                                     string
		baseLayer, maxLayer, baseLevel, maxLevel int
	}{
		{"base after max", 2, 1, 0, 0},
		{"layer past end", 0, 4, 0, 0},
		{"level past end", 0, 0, 0, 4},
		{"negative base", -1, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := arr.Subset(tt.baseLayer, tt.maxLayer, tt.baseLevel, tt.maxLevel)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("Subset() = %v, want ErrInvalidRange", err)
			}
		})
	}
	if arr.Storage().Refs() != 1 {
		t.Errorf("failed subsets leaked references: Refs() = %d", arr.Storage().Refs())
	}

	// Ranges are relative to the parent view.
	narrow, err := arr.Subset(2, 3, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer narrow.Release()
	if _, err := narrow.Subset(0, 2, 0, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Subset past narrowed parent = %v, want ErrInvalidRange", err)
	}
}

func TestTexture_Reinterpret(t *testing.T) {
	tex := newRGBA(t, 4, 4, 1)

	view, err := tex.Reinterpret(FormatBGRA8Unorm, tex.Range())
	if err != nil {
		t.Fatalf("Reinterpret(BGRA8) = %v", err)
	}
	defer view.Release()
	if view.Format() != FormatBGRA8Unorm || view.Size() != tex.Size() {
		t.Errorf("view = %v, size %d", view.Format(), view.Size())
	}
	if view.Equal(tex.Texture) {
		t.Error("views with different formats are Equal")
	}

	if _, err := tex.Reinterpret(FormatRG8Unorm, tex.Range()); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Reinterpret(RG8) = %v, want ErrFormatMismatch", err)
	}
}

func TestTexture_ReleaseExactlyOnce(t *testing.T) {
	alloc := &countingAllocator{}
	tex, err := NewTexture2D(FormatRGBA8Unorm, Extent2D{Width: 8, Height: 8}, 1, WithAllocator(alloc))
	if err != nil {
		t.Fatal(err)
	}
	fillSequence(tex.Data())
	want := bytes.Clone(tex.Data())

	const n = 5
	views := make([]Texture2D, n)
	for i := range views {
		if views[i], err = tex.View(); err != nil {
			t.Fatal(err)
		}
	}
	for _, v := range views {
		v.Release()
		v.Release() // copies share one token
	}
	if tex.Empty() || !bytes.Equal(tex.Data(), want) {
		t.Fatal("original changed after releasing its views")
	}
	if alloc.frees != 0 {
		t.Fatalf("frees = %d before last release", alloc.frees)
	}

	cp := tex
	tex.Release()
	cp.Release()
	if alloc.frees != 1 {
		t.Errorf("frees = %d, want 1", alloc.frees)
	}
	if !cp.Empty() {
		t.Error("copy of released texture is not empty")
	}
}

func TestTexture_ImageAfterRelease(t *testing.T) {
	tex, _ := NewTexture2D(FormatRGBA8Unorm, Extent2D{Width: 2, Height: 2}, 1)
	img, err := tex.At(0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	tex.Release()

	if img.Data() != nil {
		t.Error("Image.Data() after release is not nil")
	}
	if _, err := img.Load(Offset3D{}); !errors.Is(err, ErrReleased) {
		t.Errorf("Load() = %v, want ErrReleased", err)
	}
	if got := img.Extent(); got != (Extent3D{2, 2, 1}) {
		t.Errorf("Extent() = %v after release", got)
	}
}

func TestTexture_ImageOrder(t *testing.T) {
	arr, err := NewTextureCubeArray(FormatR8Unorm, Extent2D{Width: 4, Height: 4}, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer arr.Release()

	if got := arr.ImageCount(); got != 2*6*3 {
		t.Fatalf("ImageCount() = %d", got)
	}
	i := 0
	for layer := range 2 {
		for face := range 6 {
			for level := range 3 {
				img, err := arr.Image(i)
				if err != nil {
					t.Fatalf("Image(%d) = %v", i, err)
				}
				if img.Layer() != layer || img.Face() != face || img.Level() != level {
					t.Errorf("Image(%d) = (%d, %d, %d), want (%d, %d, %d)",
						i, img.Layer(), img.Face(), img.Level(), layer, face, level)
				}
				i++
			}
		}
	}
	if _, err := arr.Image(i); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Image(%d) = %v, want ErrOutOfBounds", i, err)
	}
	if _, err := arr.Image(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Image(-1) = %v, want ErrOutOfBounds", err)
	}
}

func TestTexture_Swizzles(t *testing.T) {
	tex := newRGBA(t, 2, 2, 1)
	view, err := tex.View()
	if err != nil {
		t.Fatal(err)
	}
	defer view.Release()

	if err := view.SetSwizzles(Swizzles{SwizzleAlpha, SwizzleNone, SwizzleNone, SwizzleOne}); err != nil {
		t.Fatal(err)
	}
	want := Swizzles{SwizzleAlpha, SwizzleGreen, SwizzleBlue, SwizzleOne}
	if got := view.Swizzles(); got != want {
		t.Errorf("Swizzles() = %v, want %v", got, want)
	}
	if got := tex.Swizzles(); got != IdentitySwizzles {
		t.Errorf("original Swizzles() = %v, changed by view", got)
	}
	if view.Equal(tex) {
		t.Error("views with different swizzles are Equal")
	}
	if err := view.SetSwizzles(Swizzles{swizzleCount}); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("SetSwizzles(invalid) = %v", err)
	}
}

func TestTexture_Compare(t *testing.T) {
	a := newRGBA(t, 4, 4, 3)
	b := newRGBA(t, 4, 4, 3)
	low, err := a.Subset(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer low.Release()

	if a.Compare(a) != 0 {
		t.Error("Compare(self) != 0")
	}
	if c1, c2 := a.Compare(b), b.Compare(a); c1 == 0 || c1 != -c2 {
		t.Errorf("Compare across storages = %d, %d", c1, c2)
	}
	if c1, c2 := a.Compare(low), low.Compare(a); c1 == 0 || c1 != -c2 {
		t.Errorf("Compare across ranges = %d, %d", c1, c2)
	}
	var empty Texture2D
	if empty.Compare(a) != -1 || !empty.Equal(Texture2D{}) {
		t.Error("empty textures must sort first and equal each other")
	}
}

func TestTexture_DataSpan(t *testing.T) {
	arr, err := NewTexture2DArray(FormatR8Unorm, Extent2D{Width: 2, Height: 2}, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer arr.Release()

	mid, err := arr.Subset(1, 1, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer mid.Release()

	// One layer: a 4 byte level 0 and a 1 byte level 1.
	off, _ := arr.Storage().Offset(1, 0, 0)
	if len(mid.Data()) != 5 || &mid.Data()[0] != &arr.Data()[off] {
		t.Errorf("Data() span = %d bytes at wrong offset", len(mid.Data()))
	}
	if mid.Size() != 5 {
		t.Errorf("Size() = %d, want 5", mid.Size())
	}
}
