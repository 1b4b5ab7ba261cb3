// Package loaders decodes image files into pictures usable as textures.
package loaders

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-raytracer/pkg/core"
)

// ErrEmptyImage is returned for images with no pixels
var ErrEmptyImage = errors.New("image has no pixels")

// LoadPicture decodes an image file (jpg, png, gif, tif, bmp or webp) into a picture
// with channels in [0, 1]. When maxEdge is positive, larger images are scaled down so
// neither side exceeds it.
func LoadPicture(filename string, maxEdge int) (*core.Picture, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", filename, err)
	}

	pic, err := PictureFromImage(img, maxEdge)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image %s: %w", filename, err)
	}
	return pic, nil
}

// PictureFromImage converts a decoded image into a picture, scaling it down to maxEdge when positive
func PictureFromImage(img image.Image, maxEdge int) (*core.Picture, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, ErrEmptyImage
	}

	if maxEdge > 0 && (bounds.Dx() > maxEdge || bounds.Dy() > maxEdge) {
		img = resize.Thumbnail(uint(maxEdge), uint(maxEdge), img, resize.Bilinear)
		bounds = img.Bounds()
	}

	width := bounds.Dx()
	height := bounds.Dy()
	pic := core.NewPicture(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pic.Set(x, y, core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			))
		}
	}

	return pic, nil
}
