package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Shapes are immutable once built and may be shared by any number of render workers.
type Shape interface {
	// Hit returns the nearest intersection with t in [tMin, tMax].
	// The sampler is only consumed by stochastic shapes such as participating media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns the shape's box, or false when the shape is unbounded
	BoundingBox() (core.AABB, bool)
}
