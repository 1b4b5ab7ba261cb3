package scene

import (
	"math/rand"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Camera      *geometry.Camera
	World       geometry.Shape // Root of the scene, usually a finalized container
	Environment Environment    // Radiance for rays that escape the world
	Sampling    SamplingConfig // Settings the scene was designed for
}

// SamplingConfig contains the scene's recommended render settings
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Options adjust how a built-in scene is constructed
type Options struct {
	Seed        int64   // Seed for scene layout, noise and BVH axis choices
	TextureDir  string  // Directory holding image textures such as earthmap.jpg
	AspectRatio float64 // Overrides the scene's aspect ratio when positive
}

// builder carries the shared state used while constructing a scene
type builder struct {
	opts    Options
	random  *rand.Rand
	sampler core.Sampler
}

func newBuilder(opts Options) *builder {
	random := rand.New(rand.NewSource(opts.Seed))
	return &builder{
		opts:    opts,
		random:  random,
		sampler: core.NewRandomSampler(random),
	}
}

// camera applies the aspect ratio override before building the camera
func (b *builder) camera(config geometry.CameraConfig) *geometry.Camera {
	if b.opts.AspectRatio > 0 {
		config.AspectRatio = b.opts.AspectRatio
	}
	return geometry.NewCamera(config)
}

// finalize wraps shapes in a container with its BVH built
func (b *builder) finalize(shapes ...geometry.Shape) *geometry.Container {
	container := geometry.NewContainer()
	container.AddAll(shapes...)
	container.Finalize(b.sampler)
	return container
}

// randomVec returns a vector with components uniform in [lo, hi)
func (b *builder) randomVec(lo, hi float64) core.Vec3 {
	return core.NewVec3(
		lo+(hi-lo)*b.random.Float64(),
		lo+(hi-lo)*b.random.Float64(),
		lo+(hi-lo)*b.random.Float64(),
	)
}

func (b *builder) rangeFloat(lo, hi float64) float64 {
	return lo + (hi-lo)*b.random.Float64()
}
