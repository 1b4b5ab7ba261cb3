package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// mediumExitOffset separates the entry and exit queries against the boundary
const mediumExitOffset = 1e-4

// ConstantMedium is a volume of uniform density bounded by a closed convex shape
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium of the given density and color
func NewConstantMedium(boundary Shape, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Hit samples an exponential free path inside the boundary. The normal and face of the
// record are arbitrary since the isotropic phase function ignores them.
func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := c.Boundary.Hit(ray, entry.T+mediumExitOffset, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(math.Max(entry.T, tMin), 0)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}

	rayLength := ray.Direction.Length()
	distanceInside := rayLength * (t2 - t1)

	// 1 - U keeps the logarithm finite
	hitDistance := c.negInvDensity * math.Log(1-sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  c.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (c *ConstantMedium) BoundingBox() (core.AABB, bool) {
	return c.Boundary.BoundingBox()
}
