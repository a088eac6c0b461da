package treestats

import "fmt"

// State tells whether the derived scalars of a report may be read.
type State int

const (
	// StateStale means FatFactor, BloatFactor and the local factors do not
	// reflect the current aggregates.
	StateStale State = iota
	// StateFresh means Calculate ran and nothing has changed since.
	StateFresh
)

func (s State) String() string {
	switch s {
	case StateStale:
		return "stale"
	case StateFresh:
		return "fresh"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TreeQualityReport aggregates per-level statistics of a tree index and
// derives its FatFactor and BloatFactor.
//
// A report is filled by one traversal pass at a time: call ResetData, feed
// every level through AddLevel, then call Calculate. The report is not safe
// for concurrent use; hand a Clone to other goroutines.
type TreeQualityReport struct {
	height      int
	minHeight   int
	objectCount int
	levels      []LevelAggregate
	optimal     *optimalProfile

	fatFactor   float64
	bloatFactor float64

	objectSizeSum   float64
	objectSizeCount int

	state State
}

// NewTreeQualityReport creates a stale report for a tree of the given
// height holding objectCount objects. All level aggregates start at zero.
func NewTreeQualityReport(height, objectCount int) (*TreeQualityReport, error) {
	if height < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidHeight, height)
	}
	if objectCount < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidObjectCount, objectCount)
	}
	return &TreeQualityReport{
		height:      height,
		minHeight:   height,
		objectCount: objectCount,
		levels:      make([]LevelAggregate, height),
	}, nil
}

// Height returns the number of levels of the measured tree.
func (r *TreeQualityReport) Height() int { return r.height }

// ObjectCount returns the total number of indexed objects.
func (r *TreeQualityReport) ObjectCount() int { return r.objectCount }

// MinHeight returns the lower bound on the tree height.
func (r *TreeQualityReport) MinHeight() int { return r.minHeight }

// SetMinHeight lowers (or restores) the informational minimum height.
func (r *TreeQualityReport) SetMinHeight(h int) error {
	if h < 1 || h > r.height {
		return fmt.Errorf("treestats: min height must be in [1, %d], got %d", r.height, h)
	}
	r.minHeight = h
	return nil
}

// State returns whether the derived scalars are fresh.
func (r *TreeQualityReport) State() State { return r.state }

// Ready reports whether FatFactor and BloatFactor may be read.
func (r *TreeQualityReport) Ready() bool { return r.state == StateFresh }

// Invalidate marks the derived scalars stale.
func (r *TreeQualityReport) Invalidate() { r.state = StateStale }

// ResetData zeroes all level aggregates and the object-size accumulators
// to start a new pass. The optimal profile is kept.
func (r *TreeQualityReport) ResetData() {
	clear(r.levels)
	r.objectSizeSum = 0
	r.objectSizeCount = 0
	r.Invalidate()
}

// AddLevel accumulates the counts a traversal observed on one level.
func (r *TreeQualityReport) AddLevel(level, nodes, objects, intersections int) error {
	if level < 0 || level >= r.height {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrLevelOutOfRange, level, r.height)
	}
	if nodes < 0 || objects < 0 || intersections < 0 {
		return fmt.Errorf("%w: level %d got nodes=%d objects=%d intersections=%d",
			ErrNegativeCount, level, nodes, objects, intersections)
	}
	l := &r.levels[level]
	l.NodeCount += nodes
	l.ObjectCount += objects
	l.Intersections += intersections
	r.Invalidate()
	return nil
}

// Levels returns a copy of the level aggregates, root first.
func (r *TreeQualityReport) Levels() []LevelAggregate {
	out := make([]LevelAggregate, len(r.levels))
	copy(out, r.levels)
	return out
}

// AddObjectSize records the size of one indexed object.
func (r *TreeQualityReport) AddObjectSize(size float64) {
	r.objectSizeSum += size
	r.objectSizeCount++
}

// ObjectSizeSum returns the sum of all recorded object sizes.
func (r *TreeQualityReport) ObjectSizeSum() float64 { return r.objectSizeSum }

// ObjectSizeCount returns the number of recorded object sizes.
func (r *TreeQualityReport) ObjectSizeCount() int { return r.objectSizeCount }

// MeanObjectSize returns ObjectSizeSum / ObjectSizeCount.
func (r *TreeQualityReport) MeanObjectSize() (float64, error) {
	if r.objectSizeCount == 0 {
		return 0, ErrNoObjectSizes
	}
	return r.objectSizeSum / float64(r.objectSizeCount), nil
}

// Calculate derives the local FatFactor of every level, the global
// FatFactor and, when an optimal profile is present, the BloatFactor.
// Every precondition is checked before anything is written, so a failed
// call leaves the report stale and unchanged.
func (r *TreeQualityReport) Calculate() error {
	if r.objectCount <= 0 {
		return ErrNoObjects
	}

	var totalIntersections, totalNodes int
	for i, l := range r.levels {
		if l.NodeCount <= 0 || l.ObjectCount <= 0 {
			return fmt.Errorf("treestats: level %d: %w", i, ErrEmptyLevel)
		}
		totalIntersections += l.Intersections
		totalNodes += l.NodeCount
	}

	n := float64(r.objectCount)

	// The reference tree has one access per level per object, so
	// (height+1) accesses and height+1 nodes are subtracted.
	fatDenom := n * float64(totalNodes-r.height-1)
	if fatDenom <= 0 {
		return fmt.Errorf("%w: %d nodes over %d levels", ErrDegenerateTree, totalNodes, r.height)
	}

	var bloatFactor float64
	if r.optimal != nil {
		optHeight := float64(r.optimal.height() + 1)
		bloatDenom := n*float64(r.optimal.totalNodes()) - optHeight
		if bloatDenom <= 0 {
			return fmt.Errorf("%w: optimal profile has %d nodes", ErrDegenerateTree, r.optimal.totalNodes())
		}
		bloatFactor = (float64(totalIntersections) - optHeight*n) / bloatDenom
	}

	for i := range r.levels {
		l := &r.levels[i]
		l.FatFactor = float64(l.ObjectCount-l.Intersections) /
			float64(l.ObjectCount) /
			float64(l.NodeCount)
	}
	r.fatFactor = (float64(totalIntersections) - float64(r.height+1)*n) / fatDenom
	r.bloatFactor = bloatFactor
	r.state = StateFresh
	return nil
}

// FatFactor returns the global FatFactor. Values near 0 indicate little
// overlap relative to a minimally overlapping tree of the same height.
func (r *TreeQualityReport) FatFactor() (float64, error) {
	if !r.Ready() {
		return 0, ErrStale
	}
	return r.fatFactor, nil
}

// BloatFactor returns the BloatFactor against the optimal profile.
func (r *TreeQualityReport) BloatFactor() (float64, error) {
	if !r.Ready() {
		return 0, ErrStale
	}
	if r.optimal == nil {
		return 0, ErrNoOptimalProfile
	}
	return r.bloatFactor, nil
}

// LocalFatFactor returns the local FatFactor of one level.
func (r *TreeQualityReport) LocalFatFactor(level int) (float64, error) {
	if level < 0 || level >= r.height {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrLevelOutOfRange, level, r.height)
	}
	if !r.Ready() {
		return 0, ErrStale
	}
	return r.levels[level].FatFactor, nil
}

// Clone returns a deep copy of the report, including its state and its
// optimal profile. The copy shares no memory with r.
func (r *TreeQualityReport) Clone() *TreeQualityReport {
	c := *r
	c.levels = make([]LevelAggregate, len(r.levels))
	copy(c.levels, r.levels)
	c.optimal = r.optimal.clone()
	return &c
}
