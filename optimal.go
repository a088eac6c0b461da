package treestats

import "fmt"

// OptimalHeight returns the height of the optimal profile, or 0 when no
// profile has been established.
func (r *TreeQualityReport) OptimalHeight() int {
	if r.optimal == nil {
		return 0
	}
	return r.optimal.height()
}

// Optimal returns a copy of the optimal profile, root first. ok is false
// when no profile has been established.
func (r *TreeQualityReport) Optimal() (levels []OptimalLevelAggregate, ok bool) {
	if r.optimal == nil {
		return nil, false
	}
	return r.optimal.clone().levels, true
}

// SetOptimalTreeInfo installs a precomputed optimal profile of the given
// height. objectCounts[i] and nodeCounts[i] describe level i. The previous
// profile is discarded and the report becomes stale. On error the report
// is not modified.
func (r *TreeQualityReport) SetOptimalTreeInfo(height int, objectCounts, nodeCounts []int) error {
	if height < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidHeight, height)
	}
	if len(objectCounts) != height || len(nodeCounts) != height {
		return fmt.Errorf("%w: height %d, %d object counts, %d node counts",
			ErrOptimalProfileMismatch, height, len(objectCounts), len(nodeCounts))
	}

	levels := make([]OptimalLevelAggregate, height)
	for i := range levels {
		if objectCounts[i] < 0 || nodeCounts[i] < 0 {
			return fmt.Errorf("%w: optimal level %d", ErrNegativeCount, i)
		}
		levels[i] = OptimalLevelAggregate{NodeCount: nodeCounts[i], ObjectCount: objectCounts[i]}
	}

	r.optimal = &optimalProfile{levels: levels}
	r.Invalidate()
	return nil
}

// CalculateOptimalTreeInfo simulates the smallest tree able to hold the
// report's objects when every node holds occupation entries and all
// objects live in the deepest level. The simulated profile replaces any
// previous one and the report becomes stale.
func (r *TreeQualityReport) CalculateOptimalTreeInfo(occupation int) error {
	if r.objectCount <= 0 {
		return ErrNoObjects
	}
	if occupation <= 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidOccupation, occupation)
	}

	height := ceilLog(r.objectCount, occupation)
	levels := make([]OptimalLevelAggregate, height)

	last := height - 1
	levels[last] = OptimalLevelAggregate{
		NodeCount:   ceilDiv(r.objectCount, occupation),
		ObjectCount: r.objectCount,
	}
	for i := last; i > 0; i-- {
		levels[i-1] = OptimalLevelAggregate{
			NodeCount:   ceilDiv(levels[i].NodeCount, occupation),
			ObjectCount: levels[i].NodeCount,
		}
	}

	r.optimal = &optimalProfile{levels: levels}
	r.Invalidate()
	return nil
}

// ceilLog returns ceil(log_base(n)) for n >= 1 and base >= 2, computed
// as the smallest h with base^h >= n. The result is at least 1.
func ceilLog(n, base int) int {
	h := 0
	for capacity := 1; capacity < n; h++ {
		if capacity > n/base {
			// capacity*base would reach n (and might overflow).
			h++
			break
		}
		capacity *= base
	}
	return max(h, 1)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
