package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gli"
)

// LoadCube decodes six face files, in gli.FacePositiveX to
// gli.FaceNegativeZ order, into an RGBA8 cube map with one level.
// The files are decoded concurrently and must all be square images of the
// same size.
func LoadCube(paths [6]string, opts ...gli.Option) (gli.TextureCube, error) {
	var faces [6]*image.NRGBA

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			f, err := os.Open(filepath.Clean(path))
			if err != nil {
				return fmt.Errorf("imageio: open face %d: %w", i, err)
			}
			defer func() { _ = f.Close() }()

			faces[i], err = decodeNRGBA(f)
			if err != nil {
				return fmt.Errorf("face %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return gli.TextureCube{}, err
	}
	return NewCube(faces, opts...)
}

// NewCube builds a single level cube map from six face images.
func NewCube(faces [6]*image.NRGBA, opts ...gli.Option) (gli.TextureCube, error) {
	for i, f := range faces {
		if f == nil {
			return gli.TextureCube{}, fmt.Errorf("%w: face %d", ErrEmptyData, i)
		}
	}
	size := faces[0].Bounds().Size()
	if size.X != size.Y || size.X == 0 {
		return gli.TextureCube{}, fmt.Errorf("%w: face size %v", gli.ErrInvalidExtent, size)
	}
	for i, f := range faces[1:] {
		if f.Bounds().Size() != size {
			return gli.TextureCube{}, fmt.Errorf("%w: face %d is %v, want %v",
				gli.ErrInvalidExtent, i+1, f.Bounds().Size(), size)
		}
	}

	cube, err := gli.NewTextureCube(gli.FormatRGBA8Unorm, gli.Extent2D{Width: size.X, Height: size.Y}, 1, opts...)
	if err != nil {
		return gli.TextureCube{}, err
	}
	for face, src := range faces {
		img, err := cube.At(0, face, 0)
		if err == nil {
			err = FromImage(img, src)
		}
		if err != nil {
			cube.Release()
			return gli.TextureCube{}, err
		}
	}
	return cube, nil
}
