package loaders

import (
	"errors"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/df07/go-raytracer/pkg/core"
)

func writeTestImage(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("Failed to save test image: %v", err)
	}
	return path
}

func TestLoadPicture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // top-left: white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // top-right: red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // bottom-left: green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // bottom-right: blue

	for _, name := range []string{"test.png", "test.bmp"} {
		t.Run(name, func(t *testing.T) {
			pic, err := LoadPicture(writeTestImage(t, name, img), 0)
			if err != nil {
				t.Fatalf("LoadPicture failed: %v", err)
			}
			if pic.Width != 2 || pic.Height != 2 {
				t.Fatalf("Expected 2x2 picture, got %dx%d", pic.Width, pic.Height)
			}

			expected := []core.Vec3{
				core.NewVec3(1, 1, 1),
				core.NewVec3(1, 0, 0),
				core.NewVec3(0, 1, 0),
				core.NewVec3(0, 0, 1),
			}
			for i, want := range expected {
				if !pic.Pixels[i].Equals(want, 0.01) {
					t.Errorf("Pixel %d: expected %v, got %v", i, want, pic.Pixels[i])
				}
			}
		})
	}
}

func TestLoadPicture_Downscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	pic, err := LoadPicture(writeTestImage(t, "big.png", img), 16)
	if err != nil {
		t.Fatalf("LoadPicture failed: %v", err)
	}
	if pic.Width != 16 || pic.Height != 8 {
		t.Errorf("Expected 16x8 picture, got %dx%d", pic.Width, pic.Height)
	}
	if c := pic.At(8, 4); math.Abs(c.X-128.0/255.0) > 0.02 {
		t.Errorf("Expected mid gray after resize, got %v", c)
	}
}

func TestLoadPicture_Errors(t *testing.T) {
	if _, err := LoadPicture(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("Expected error for missing file")
	}

	if _, err := PictureFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)), 0); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Expected ErrEmptyImage, got %v", err)
	}
}
