package core

import (
	"image"
	"image/color"
)

// Picture is a dense row-major buffer of linear colors. Row 0 is the top of the image.
type Picture struct {
	Width  int
	Height int
	Pixels []Vec3 // Pixels[y*Width + x]
}

// NewPicture creates a black picture of the given size
func NewPicture(width, height int) *Picture {
	return &Picture{
		Width:  width,
		Height: height,
		Pixels: make([]Vec3, width*height),
	}
}

// At returns the color at (x, y)
func (p *Picture) At(x, y int) Vec3 {
	return p.Pixels[y*p.Width+x]
}

// Set stores the color at (x, y)
func (p *Picture) Set(x, y int, c Vec3) {
	p.Pixels[y*p.Width+x] = c
}

// AddBand adds every pixel of band into this picture, starting at row offsetY.
// The band must have the same width as the picture.
func (p *Picture) AddBand(band *Picture, offsetY int) {
	base := offsetY * p.Width
	for i, c := range band.Pixels {
		p.Pixels[base+i] = p.Pixels[base+i].Add(c)
	}
}

// AddPicture adds other into this picture element-wise. Sizes must match.
func (p *Picture) AddPicture(other *Picture) {
	p.AddBand(other, 0)
}

// Scale multiplies every pixel by factor
func (p *Picture) Scale(factor float64) {
	for i := range p.Pixels {
		p.Pixels[i] = p.Pixels[i].Multiply(factor)
	}
}

// GammaCorrect applies pixel^(1/gamma) to every pixel
func (p *Picture) GammaCorrect(gamma float64) {
	for i := range p.Pixels {
		p.Pixels[i] = p.Pixels[i].GammaCorrect(gamma)
	}
}

// ToRGBA converts the picture to an 8-bit image, clamping to [0, 1]
func (p *Picture) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := p.At(x, y).Clamp(0.0, 1.0)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
