package renderer

import "time"

// WorkerStats records what a single worker rendered
type WorkerStats struct {
	ID       int
	Samples  int // Samples per pixel taken by the worker
	Rows     int // Rows rendered by the worker
	Duration time.Duration
}

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Partition       Partition // Partition actually used, never PartitionAuto
	Workers         []WorkerStats
	Duration        time.Duration // Wall time from dispatch to merge
}

// PrimaryRays returns the number of camera rays traced by all workers
func (s RenderStats) PrimaryRays() int64 {
	var total int64
	for _, w := range s.Workers {
		total += int64(w.Samples) * int64(w.Rows) * int64(s.Width)
	}
	return total
}

// SlowestWorker returns the longest worker duration
func (s RenderStats) SlowestWorker() time.Duration {
	var slowest time.Duration
	for _, w := range s.Workers {
		if w.Duration > slowest {
			slowest = w.Duration
		}
	}
	return slowest
}
