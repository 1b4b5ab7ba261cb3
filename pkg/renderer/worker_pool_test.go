package renderer

import (
	"bytes"
	"errors"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/df07/go-raytracer/pkg/log"
)

func TestPlanJobs(t *testing.T) {
	tests := []struct {
		name      string
		samples   int
		height    int
		workers   int
		partition Partition
		expected  []job
	}{
		{
			name: "Samples with remainder", samples: 10, height: 4, workers: 4, partition: PartitionSamples,
			expected: []job{
				{id: 0, seed: 5, samples: 3, y0: 0, y1: 4},
				{id: 1, seed: 6, samples: 3, y0: 0, y1: 4},
				{id: 2, seed: 7, samples: 2, y0: 0, y1: 4},
				{id: 3, seed: 8, samples: 2, y0: 0, y1: 4},
			},
		},
		{
			name: "More workers than samples", samples: 2, height: 4, workers: 8, partition: PartitionSamples,
			expected: []job{
				{id: 0, seed: 5, samples: 1, y0: 0, y1: 4},
				{id: 1, seed: 6, samples: 1, y0: 0, y1: 4},
			},
		},
		{
			name: "Scanlines with remainder", samples: 16, height: 7, workers: 3, partition: PartitionScanlines,
			expected: []job{
				{id: 0, seed: 5, samples: 16, y0: 0, y1: 3},
				{id: 1, seed: 6, samples: 16, y0: 3, y1: 5},
				{id: 2, seed: 7, samples: 16, y0: 5, y1: 7},
			},
		},
		{
			name: "More workers than rows", samples: 16, height: 2, workers: 5, partition: PartitionScanlines,
			expected: []job{
				{id: 0, seed: 5, samples: 16, y0: 0, y1: 1},
				{id: 1, seed: 6, samples: 16, y0: 1, y1: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Width: 4, Height: tt.height, SamplesPerPixel: tt.samples, Seed: 5}
			jobs := planJobs(cfg, tt.workers, tt.partition)
			if len(jobs) != len(tt.expected) {
				t.Fatalf("Expected %d jobs, got %d: %+v", len(tt.expected), len(jobs), jobs)
			}
			for i := range jobs {
				if jobs[i] != tt.expected[i] {
					t.Errorf("Job %d: expected %+v, got %+v", i, tt.expected[i], jobs[i])
				}
			}
		})
	}
}

func TestPartitionForBudget(t *testing.T) {
	// 100x100 frame = 240000 bytes per worker
	tests := []struct {
		name      string
		workers   int
		available uint64
		expected  Partition
	}{
		{"Fits", 4, 4 * 4 * 240000, PartitionSamples},
		{"Too large", 5, 4 * 4 * 240000, PartitionScanlines},
		{"No memory", 1, 0, PartitionScanlines},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := partitionForBudget(100, 100, tt.workers, tt.available); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParsePartition(t *testing.T) {
	for _, p := range []Partition{PartitionSamples, PartitionScanlines, PartitionAuto} {
		got, err := ParsePartition(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePartition(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePartition("tiles"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for unknown partition, got %v", err)
	}
}

func TestCPUCountOrFallback(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		err      error
		expected int
	}{
		{"Reported count", 12, nil, 12},
		{"Query error", 12, errors.New("no /proc"), runtime.NumCPU()},
		{"Zero count", 0, nil, runtime.NumCPU()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cpuCountOrFallback(tt.n, tt.err); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCPUCountOrFallback_WarningWithoutError(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	defer log.SetSink(os.Stderr)

	cpuCountOrFallback(0, nil)

	if strings.Contains(buf.String(), "<nil>") {
		t.Errorf("Warning should not print a nil error: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "reported as 0") {
		t.Errorf("Expected the reported count in the warning, got %q", buf.String())
	}
}
