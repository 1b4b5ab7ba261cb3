package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/log"
	"github.com/df07/go-raytracer/pkg/scene"
)

var (
	ErrSceneNotDefined  = errors.New("renderer: scene not defined")
	ErrCameraNotDefined = errors.New("renderer: camera not defined")
	ErrInvalidConfig    = errors.New("renderer: invalid config")
)

var logger = log.New("renderer")

// Config contains everything a render needs besides the scene and camera
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int       // Maximum ray bounce depth
	NumWorkers      int       // Number of parallel workers (0 = use CPU count)
	Seed            int64     // Worker i draws from Seed + i
	Gamma           float64   // 0 or 1 leaves the merged picture linear
	Partition       Partition // How work is split between workers
	Sequential      bool      // Run the same job plan on the calling goroutine
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		Seed:            1,
		Gamma:           2.0,
		Partition:       PartitionSamples,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d", ErrInvalidConfig, c.NumWorkers)
	case c.Gamma < 0:
		return fmt.Errorf("%w: gamma %g", ErrInvalidConfig, c.Gamma)
	case c.Partition < PartitionSamples || c.Partition > PartitionAuto:
		return fmt.Errorf("%w: partition %d", ErrInvalidConfig, int(c.Partition))
	}
	return nil
}

// Raytracer renders a scene through a camera into a linear picture
type Raytracer struct {
	config Config
	scene  *scene.Scene
	camera *geometry.Camera
}

// NewRaytracer creates a raytracer. SetScene and SetCamera must be called before Render.
func NewRaytracer(config Config) *Raytracer {
	return &Raytracer{config: config}
}

// SetScene sets the world and environment to render
func (rt *Raytracer) SetScene(s *scene.Scene) {
	rt.scene = s
}

// SetCamera sets the camera primary rays are generated from
func (rt *Raytracer) SetCamera(camera *geometry.Camera) {
	rt.camera = camera
}

// Config returns the render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render splits the frame between workers, waits for all of them and merges their
// buffers in worker order. The result is averaged and gamma corrected.
func (rt *Raytracer) Render() (*core.Picture, RenderStats, error) {
	if rt.scene == nil || rt.scene.World == nil || rt.scene.Environment == nil {
		return nil, RenderStats{}, ErrSceneNotDefined
	}
	if rt.camera == nil {
		return nil, RenderStats{}, ErrCameraNotDefined
	}
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	cfg := rt.config
	workers := cfg.NumWorkers
	if workers == 0 {
		workers = logicalCPUs()
	}
	partition := cfg.Partition
	if partition == PartitionAuto {
		partition = choosePartition(cfg.Width, cfg.Height, min(workers, cfg.SamplesPerPixel))
	}

	jobs := planJobs(cfg, workers, partition)
	logger.Infof("rendering %q at %dx%d, %d spp, %d workers, %s partition",
		rt.scene.Name, cfg.Width, cfg.Height, cfg.SamplesPerPixel, len(jobs), partition)

	pool := newWorkerPool(rt.scene, rt.camera, integrator.NewPathTracingIntegrator(cfg.MaxDepth), cfg.Width, cfg.Height)

	start := time.Now()
	var results []jobResult
	if cfg.Sequential {
		results = pool.runSequential(jobs)
	} else {
		results = pool.runParallel(jobs)
	}

	picture := merge(results, cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.Gamma)

	stats := RenderStats{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		Partition:       partition,
		Duration:        time.Since(start),
	}
	for _, r := range results {
		stats.Workers = append(stats.Workers, r.stats)
	}
	logger.Noticef("rendered %q in %s (%d primary rays)", rt.scene.Name, stats.Duration, stats.PrimaryRays())

	return picture, stats, nil
}

// merge sums the worker buffers in order, averages by the sample count and applies gamma
func merge(results []jobResult, width, height, samplesPerPixel int, gamma float64) *core.Picture {
	picture := core.NewPicture(width, height)
	for _, r := range results {
		picture.AddBand(r.buffer, r.job.y0)
	}
	picture.Scale(1.0 / float64(samplesPerPixel))
	if gamma != 0 && gamma != 1 {
		picture.GammaCorrect(gamma)
	}
	return picture
}
