package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Axis names a coordinate axis for rotations
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotate wraps a shape rotated about a single coordinate axis through the origin
type Rotate struct {
	Shape   Shape
	Axis    Axis
	Degrees float64

	forward mgl64.Mat3 // object space to world space
	inverse mgl64.Mat3 // world space to object space
	box     core.AABB
	bounded bool
}

// NewRotate rotates shape by degrees about axis, counter-clockwise looking down the axis
func NewRotate(shape Shape, axis Axis, degrees float64) *Rotate {
	radians := mgl64.DegToRad(degrees)

	var forward mgl64.Mat3
	switch axis {
	case AxisX:
		forward = mgl64.Rotate3DX(radians)
	case AxisY:
		forward = mgl64.Rotate3DY(radians)
	default:
		forward = mgl64.Rotate3DZ(radians)
	}

	r := &Rotate{
		Shape:   shape,
		Axis:    axis,
		Degrees: degrees,
		forward: forward,
		inverse: forward.Transpose(), // rotation matrices are orthonormal
	}

	if childBox, ok := shape.BoundingBox(); ok {
		corners := childBox.Corners()
		for i, corner := range corners {
			corners[i] = transform(r.forward, corner)
		}
		r.box = core.NewAABBFromPoints(corners[:]...)
		r.bounded = true
	}

	return r
}

// NewRotateY is shorthand for a rotation about the Y axis
func NewRotateY(shape Shape, degrees float64) *Rotate {
	return NewRotate(shape, AxisY, degrees)
}

// Hit transforms the ray into object space, delegates, and transforms the result back
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	local := core.NewRayAtTime(transform(r.inverse, ray.Origin), transform(r.inverse, ray.Direction), ray.Time)

	hit, ok := r.Shape.Hit(local, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	outwardNormal := hit.Normal
	if !hit.FrontFace {
		outwardNormal = outwardNormal.Negate()
	}

	hit.Point = transform(r.forward, hit.Point)
	hit.SetFaceNormal(ray, transform(r.forward, outwardNormal))
	return hit, true
}

// BoundingBox returns the box around the eight rotated corners of the child's box
func (r *Rotate) BoundingBox() (core.AABB, bool) {
	return r.box, r.bounded
}

func transform(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}
