package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Box is an axis-aligned cuboid made of six rectangles organized in their own BVH
type Box struct {
	Min, Max core.Vec3
	sides    *BVHNode
}

// NewBox creates a box spanning p0 to p1. Panics when any component of p0 exceeds p1.
func NewBox(p0, p1 core.Vec3, material material.Material, sampler core.Sampler) *Box {
	if p0.X > p1.X || p0.Y > p1.Y || p0.Z > p1.Z {
		panic(fmt.Sprintf("geometry: inverted box corners %v > %v", p0, p1))
	}

	sides := []Shape{
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material), // front
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material), // back
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material), // top
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material), // bottom
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material), // right
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material), // left
	}

	return &Box{
		Min:   p0,
		Max:   p1,
		sides: NewBVHNode(sides, sampler),
	}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the exact corner-to-corner box
func (b *Box) BoundingBox() (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
