package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission   ColorSource // Emitted color
	Brightness float64     // Multiplier applied to the emitted color
}

// NewDiffuseLight creates a light with a uniform emitted color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission), Brightness: 1.0}
}

// NewTexturedDiffuseLight creates a light whose emission is texture times brightness
func NewTexturedDiffuseLight(emission ColorSource, brightness float64) *DiffuseLight {
	return &DiffuseLight{Emission: emission, Brightness: brightness}
}

// Scatter never scatters: lights absorb every incoming ray
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted light for this material
func (e *DiffuseLight) Emit(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Emission.Evaluate(uv, point).Multiply(e.Brightness)
}
