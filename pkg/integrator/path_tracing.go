package integrator

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/scene"
)

// HitEpsilon is the near bound for every intersection query, avoiding self-hits
const HitEpsilon = 1e-3

// DefaultMaxDepth is used when the configured depth is not positive
const DefaultMaxDepth = 50

// PathTracingIntegrator implements unidirectional path tracing without light sampling
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a path tracer that follows at most maxDepth bounces
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor follows one path iteratively, accumulating emission weighted by the path attenuation.
// A path that runs out of bounces returns black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3 {
	emitted := core.Vec3{}
	attenuation := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.maxDepth; depth++ {
		hit, isHit := scene.World.Hit(ray, HitEpsilon, math.Inf(1), sampler)
		if !isHit {
			return emitted.Add(attenuation.MultiplyVec(scene.Environment.Color(ray)))
		}

		emitted = emitted.Add(attenuation.MultiplyVec(material.EmittedLight(hit)))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray, only emitted light remains
			return emitted
		}

		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{}
}
