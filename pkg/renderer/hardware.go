package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// bytesPerPixel is the size of one linear Vec3 in a worker buffer
const bytesPerPixel = 3 * 8

// logicalCPUs returns the hardware parallelism, falling back to the Go runtime's count
func logicalCPUs() int {
	n, err := cpu.Counts(true)
	return cpuCountOrFallback(n, err)
}

func cpuCountOrFallback(n int, err error) int {
	switch {
	case err != nil:
		logger.Warningf("could not query CPU count, using runtime value: %v", err)
	case n <= 0:
		logger.Warningf("CPU count reported as %d, using runtime value", n)
	default:
		return n
	}
	return runtime.NumCPU()
}

// choosePartition picks scanlines when workers private frames would take more
// than a quarter of the available memory
func choosePartition(width, height, workers int) Partition {
	vm, err := mem.VirtualMemory()
	if err != nil {
		logger.Warningf("could not query available memory, partitioning by samples: %v", err)
		return PartitionSamples
	}
	return partitionForBudget(width, height, workers, vm.Available)
}

func partitionForBudget(width, height, workers int, available uint64) Partition {
	needed := uint64(width) * uint64(height) * uint64(workers) * bytesPerPixel
	if needed > available/4 {
		return PartitionScanlines
	}
	return PartitionSamples
}
