package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Container is a growable list of shapes that becomes hittable after Finalize.
// Finalize organizes the shapes into a BVH and caches their combined box.
type Container struct {
	shapes    []Shape
	root      *BVHNode
	box       core.AABB
	finalized bool
}

// NewContainer creates an empty container
func NewContainer() *Container {
	return &Container{}
}

// Add appends a shape. Adding after Finalize requires another Finalize.
func (c *Container) Add(shape Shape) {
	c.shapes = append(c.shapes, shape)
	c.finalized = false
}

// AddAll appends several shapes
func (c *Container) AddAll(shapes ...Shape) {
	c.shapes = append(c.shapes, shapes...)
	c.finalized = false
}

// Len returns the number of shapes added so far
func (c *Container) Len() int {
	return len(c.shapes)
}

// Clear removes every shape and drops the hierarchy
func (c *Container) Clear() {
	c.shapes = nil
	c.root = nil
	c.box = core.AABB{}
	c.finalized = false
}

// Finalize builds the hierarchy. An empty container finalizes to one that never hits.
func (c *Container) Finalize(sampler core.Sampler) {
	c.root = nil
	c.box = core.EmptyAABB()
	if len(c.shapes) > 0 {
		c.root = NewBVHNode(c.shapes, sampler)
		c.box, _ = c.root.BoundingBox()
	}
	c.finalized = true
}

// Stats returns the hierarchy statistics, zero for an empty container
func (c *Container) Stats() BVHStats {
	c.mustBeFinalized()
	if c.root == nil {
		return BVHStats{}
	}
	return c.root.Stats()
}

// Hit delegates to the hierarchy
func (c *Container) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	c.mustBeFinalized()
	if c.root == nil {
		return nil, false
	}
	return c.root.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the cached box; an empty container has none
func (c *Container) BoundingBox() (core.AABB, bool) {
	c.mustBeFinalized()
	return c.box, c.root != nil
}

func (c *Container) mustBeFinalized() {
	if !c.finalized {
		panic("geometry: container queried before Finalize")
	}
}
