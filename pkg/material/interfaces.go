package material

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// Material decides how a ray continues after it hits a surface
type Material interface {
	// Scatter returns the continuation ray and its attenuation, or false when the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light. Materials that do not
// implement it contribute no emission.
type Emitter interface {
	Emit(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray, starting at the hit point
	Attenuation core.Vec3 // Per-channel color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	FrontFace bool      // True when the ray enters the surface from outside
	UV        core.Vec2 // Surface texture coordinates
	Material  Material  // Material of the hit object
}

// SetFaceNormal orients the normal against the ray and records which side was hit.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// EmittedLight returns the emission of the hit material, or black when it does not emit
func EmittedLight(hit *HitRecord) core.Vec3 {
	if emitter, ok := hit.Material.(Emitter); ok {
		return emitter.Emit(hit.UV, hit.Point)
	}
	return core.Vec3{}
}
