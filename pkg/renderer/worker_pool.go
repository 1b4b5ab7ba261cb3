package renderer

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/integrator"
	"github.com/df07/go-raytracer/pkg/scene"
)

// Partition selects how the frame is divided between workers
type Partition int

const (
	// PartitionSamples gives every worker the whole frame and a share of the samples
	PartitionSamples Partition = iota
	// PartitionScanlines gives every worker a band of rows at the full sample count
	PartitionScanlines
	// PartitionAuto picks scanlines when per-worker frames would not fit in memory
	PartitionAuto
)

var partitionNames = map[Partition]string{
	PartitionSamples:   "samples",
	PartitionScanlines: "scanlines",
	PartitionAuto:      "auto",
}

func (p Partition) String() string {
	if name, ok := partitionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("partition(%d)", int(p))
}

// ParsePartition converts a partition name into a Partition
func ParsePartition(name string) (Partition, error) {
	for p, n := range partitionNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown partition %q", ErrInvalidConfig, name)
}

// job is one worker's share of the frame
type job struct {
	id      int
	seed    int64
	samples int // Samples per pixel taken by this job
	y0, y1  int // Rows [y0, y1) rendered by this job
}

type jobResult struct {
	job    job
	buffer *core.Picture // Unnormalized sample sums for rows [y0, y1)
	stats  WorkerStats
}

// planJobs splits the frame into at most workers jobs. The remainder of an uneven
// split goes to the first jobs.
func planJobs(cfg Config, workers int, partition Partition) []job {
	total := cfg.SamplesPerPixel
	if partition == PartitionScanlines {
		total = cfg.Height
	}
	n := min(workers, total)
	if n < 1 {
		n = 1
	}

	base, remainder := total/n, total%n
	jobs := make([]job, 0, n)
	offset := 0
	for i := 0; i < n; i++ {
		share := base
		if i < remainder {
			share++
		}
		j := job{id: i, seed: cfg.Seed + int64(i)}
		if partition == PartitionScanlines {
			j.samples = cfg.SamplesPerPixel
			j.y0, j.y1 = offset, offset+share
		} else {
			j.samples = share
			j.y0, j.y1 = 0, cfg.Height
		}
		offset += share
		jobs = append(jobs, j)
	}
	return jobs
}

// workerPool runs jobs against a shared, read-only scene
type workerPool struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	width      int
	height     int
}

func newWorkerPool(s *scene.Scene, camera *geometry.Camera, integ integrator.Integrator, width, height int) *workerPool {
	return &workerPool{
		scene:      s,
		camera:     camera,
		integrator: integ,
		width:      width,
		height:     height,
	}
}

// runParallel starts one goroutine per job and waits for all of them.
// Results are returned in job order regardless of completion order.
func (wp *workerPool) runParallel(jobs []job) []jobResult {
	results := make([]jobResult, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			results[i] = wp.render(j)
		}(i, j)
	}
	wg.Wait()
	return results
}

// runSequential renders the same jobs one after another on the calling goroutine
func (wp *workerPool) runSequential(jobs []job) []jobResult {
	results := make([]jobResult, len(jobs))
	for i, j := range jobs {
		results[i] = wp.render(j)
	}
	return results
}

// render traces every pixel of the job's rows with the job's own random source
func (wp *workerPool) render(j job) jobResult {
	start := time.Now()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(j.seed)))
	buffer := core.NewPicture(wp.width, j.y1-j.y0)

	for y := j.y0; y < j.y1; y++ {
		for x := 0; x < wp.width; x++ {
			sum := core.Vec3{}
			for s := 0; s < j.samples; s++ {
				jitter := sampler.Get2D()
				u := (float64(x) + jitter.X) / float64(wp.width)
				v := (float64(wp.height-1-y) + jitter.Y) / float64(wp.height)

				ray := wp.camera.GetRay(u, v, sampler)
				sum = sum.Add(wp.integrator.RayColor(ray, wp.scene, sampler))
			}
			buffer.Set(x, y-j.y0, sum)
		}
	}

	stats := WorkerStats{
		ID:       j.id,
		Samples:  j.samples,
		Rows:     j.y1 - j.y0,
		Duration: time.Since(start),
	}
	logger.Debugf("worker %d finished %d rows at %d spp in %s", j.id, stats.Rows, stats.Samples, stats.Duration)
	return jobResult{job: j, buffer: buffer, stats: stats}
}
