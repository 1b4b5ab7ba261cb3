package geometry

import (
	"sort"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// BVHNode is a node of a Bounding Volume Hierarchy. Both children are shapes:
// either nested nodes or the primitives themselves.
type BVHNode struct {
	Left   Shape
	Right  Shape
	box    core.AABB
	single bool // both children are the same primitive
}

// NewBVHNode builds a hierarchy over the given shapes. The split axis at every level
// is chosen at random from the sampler. Panics on an empty list or an unbounded shape.
func NewBVHNode(shapes []Shape, sampler core.Sampler) *BVHNode {
	if len(shapes) == 0 {
		panic("geometry: BVH built over zero shapes")
	}

	// Sort a copy so the caller's slice keeps its order
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return buildBVH(shapesCopy, sampler)
}

func buildBVH(shapes []Shape, sampler core.Sampler) *BVHNode {
	node := &BVHNode{}

	switch len(shapes) {
	case 1:
		node.Left, node.Right = shapes[0], shapes[0]
		node.single = true
	case 2:
		sortShapesByAxis(shapes, randomAxis(sampler))
		node.Left, node.Right = shapes[0], shapes[1]
	default:
		sortShapesByAxis(shapes, randomAxis(sampler))
		mid := len(shapes) / 2
		node.Left = childFor(shapes[:mid], sampler)
		node.Right = childFor(shapes[mid:], sampler)
	}

	node.box = mustBox(node.Left).Union(mustBox(node.Right))
	return node
}

// childFor returns a half of size one as a direct leaf, otherwise a nested node
func childFor(shapes []Shape, sampler core.Sampler) Shape {
	if len(shapes) == 1 {
		return shapes[0]
	}
	return buildBVH(shapes, sampler)
}

func randomAxis(sampler core.Sampler) int {
	return min(int(sampler.Get1D()*3), 2)
}

func mustBox(shape Shape) core.AABB {
	box, ok := shape.BoundingBox()
	if !ok {
		panic("geometry: unbounded shape inside a BVH")
	}
	return box
}

// sortShapesByAxis sorts shapes by the minimum corner of their bounding box along axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		return mustBox(shapes[i]).Min.Axis(axis) < mustBox(shapes[j]).Min.Axis(axis)
	})
}

// Hit tests the left subtree over the full interval, then the right subtree up to the left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if n.single {
		return leftHit, hitLeft
	}

	if hitLeft {
		if rightHit, hitRight := n.Right.Hit(ray, tMin, leftHit.T, sampler); hitRight {
			return rightHit, true
		}
		return leftHit, true
	}

	return n.Right.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the union of both children's boxes
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.box, true
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // interior nodes
	Leaves   int // primitive references
	MaxDepth int
}

// Stats walks the hierarchy and collects node counts and depth
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Shape{n.Left, n.Right}
	if n.single {
		children = children[:1]
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
