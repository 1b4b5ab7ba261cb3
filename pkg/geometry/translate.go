package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Translate wraps a shape moved by a fixed offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate moves shape by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit moves the ray into object space and the hit point back out
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	local := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Shape.Hit(local, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the child's box moved by the offset
func (t *Translate) BoundingBox() (core.AABB, bool) {
	box, ok := t.Shape.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}
