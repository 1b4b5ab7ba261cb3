package geometry

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// rectThickness pads the bounding box of planar rectangles along their fixed axis
const rectThickness = 1e-3

// planeRect is an axis-aligned rectangle lying in the plane axis == K,
// spanning [A0, A1] on axisA and [B0, B1] on axisB.
type planeRect struct {
	axis, axisA, axisB int
	A0, A1, B0, B1, K  float64
	Material           material.Material
}

func (r *planeRect) hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t := (r.K - ray.Origin.Axis(r.axis)) / ray.Direction.Axis(r.axis)
	if math.IsNaN(t) || math.IsInf(t, 0) || t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(r.axisA) + t*ray.Direction.Axis(r.axisA)
	b := ray.Origin.Axis(r.axisB) + t*ray.Direction.Axis(r.axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	var outwardNormal core.Vec3
	switch r.axis {
	case 0:
		outwardNormal = core.NewVec3(1, 0, 0)
	case 1:
		outwardNormal = core.NewVec3(0, 1, 0)
	default:
		outwardNormal = core.NewVec3(0, 0, 1)
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)
	return hitRecord, true
}

func (r *planeRect) boundingBox() core.AABB {
	var min, max [3]float64
	min[r.axisA], max[r.axisA] = r.A0, r.A1
	min[r.axisB], max[r.axisB] = r.B0, r.B1
	min[r.axis], max[r.axis] = r.K, r.K
	box := core.NewAABB(core.NewVec3(min[0], min[1], min[2]), core.NewVec3(max[0], max[1], max[2]))
	return box.Pad(r.axis, rectThickness)
}

// XYRect is a rectangle in the plane z = K
type XYRect struct{ planeRect }

// NewXYRect creates a rectangle spanning [x0, x1] x [y0, y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{planeRect{axis: 2, axisA: 0, axisB: 1, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}}
}

// Hit tests the ray against the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.hit(ray, tMin, tMax)
}

// BoundingBox returns the rectangle's box padded along Z
func (r *XYRect) BoundingBox() (core.AABB, bool) {
	return r.boundingBox(), true
}

// XZRect is a rectangle in the plane y = K
type XZRect struct{ planeRect }

// NewXZRect creates a rectangle spanning [x0, x1] x [z0, z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{planeRect{axis: 1, axisA: 0, axisB: 2, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}}
}

// Hit tests the ray against the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.hit(ray, tMin, tMax)
}

// BoundingBox returns the rectangle's box padded along Y
func (r *XZRect) BoundingBox() (core.AABB, bool) {
	return r.boundingBox(), true
}

// YZRect is a rectangle in the plane x = K
type YZRect struct{ planeRect }

// NewYZRect creates a rectangle spanning [y0, y1] x [z0, z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{planeRect{axis: 0, axisA: 1, axisB: 2, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}}
}

// Hit tests the ray against the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return r.hit(ray, tMin, tMax)
}

// BoundingBox returns the rectangle's box padded along X
func (r *YZRect) BoundingBox() (core.AABB, bool) {
	return r.boundingBox(), true
}
