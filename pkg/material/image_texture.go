package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D picture
type ImageTexture struct {
	Picture *core.Picture
}

// NewImageTexture creates a new image texture
func NewImageTexture(picture *core.Picture) *ImageTexture {
	return &ImageTexture{Picture: picture}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	width, height := t.Picture.Width, t.Picture.Height
	if width == 0 || height == 0 {
		return core.NewVec3(0, 1, 1) // debug cyan for missing data
	}

	// Wrap UV coordinates to [0, 1]
	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(width))
	y := int((1.0 - v) * float64(height))

	// Clamp to image bounds
	x = max(0, min(x, width-1))
	y = max(0, min(y, height-1))

	return t.Picture.At(x, y)
}
