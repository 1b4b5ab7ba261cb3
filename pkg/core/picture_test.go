package core

import "testing"

func TestPicture_AddBandAndScale(t *testing.T) {
	frame := NewPicture(2, 3)
	band := NewPicture(2, 1)
	band.Set(0, 0, NewVec3(1, 2, 3))
	band.Set(1, 0, NewVec3(4, 5, 6))

	frame.AddBand(band, 1)
	frame.AddBand(band, 1)
	frame.Scale(0.5)

	if got := frame.At(0, 1); got != NewVec3(1, 2, 3) {
		t.Errorf("Expected (1, 2, 3), got %v", got)
	}
	if got := frame.At(1, 1); got != NewVec3(4, 5, 6) {
		t.Errorf("Expected (4, 5, 6), got %v", got)
	}
	for _, y := range []int{0, 2} {
		for x := 0; x < 2; x++ {
			if got := frame.At(x, y); got != (Vec3{}) {
				t.Errorf("Row %d should be untouched, got %v at x=%d", y, got, x)
			}
		}
	}
}

func TestPicture_ToRGBAClamps(t *testing.T) {
	pic := NewPicture(2, 1)
	pic.Set(0, 0, NewVec3(-1, 0.5, 2))
	pic.Set(1, 0, NewVec3(1, 1, 1))

	img := pic.ToRGBA()
	c := img.RGBAAt(0, 0)
	if c.R != 0 || c.G != 127 || c.B != 255 || c.A != 255 {
		t.Errorf("Unexpected clamped color %v", c)
	}
	if white := img.RGBAAt(1, 0); white.R != 255 || white.G != 255 || white.B != 255 {
		t.Errorf("Expected white, got %v", white)
	}
}
