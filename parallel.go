package treestats

import (
	"sync"
	"sync/atomic"
)

// countOverlaps returns the number of unordered node pairs in ids whose
// regions overlap.
func countOverlaps(tree SpatialTree, ids []int) int {
	var count int
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if tree.NodesOverlap(ids[i], ids[j]) {
				count++
			}
		}
	}
	return count
}

// countOverlapsParallel is countOverlaps split across numWorkers goroutines.
// Falls back to sequential countOverlaps if numWorkers <= 1.
func countOverlapsParallel(tree SpatialTree, ids []int, numWorkers int) int {
	n := len(ids)
	if numWorkers <= 1 || n <= 1 {
		return countOverlaps(tree, ids)
	}

	// Split rows across workers. Each worker handles a contiguous range of
	// "source" rows i and tests (i, j) for all j > i.
	var (
		wg    sync.WaitGroup
		total atomic.Int64
	)
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			var local int64
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					if tree.NodesOverlap(ids[i], ids[j]) {
						local++
					}
				}
			}
			total.Add(local)
		}(startRow, endRow)
	}

	wg.Wait()
	return int(total.Load())
}
