package treestats

import "errors"

var (
	// ErrStale indicates the derived scalars were read before Calculate ran
	// on the current aggregate state.
	ErrStale = errors.New("treestats: statistics are stale, call Calculate first")
	// ErrInvalidHeight indicates a non-positive tree height.
	ErrInvalidHeight = errors.New("treestats: height must be >= 1")
	// ErrInvalidObjectCount indicates a negative object count.
	ErrInvalidObjectCount = errors.New("treestats: object count must be >= 0")
	// ErrNoObjects indicates an operation that needs at least one indexed object.
	ErrNoObjects = errors.New("treestats: tree holds no objects")
	// ErrEmptyLevel indicates a level with no nodes or no objects.
	ErrEmptyLevel = errors.New("treestats: level has no nodes or no objects")
	// ErrDegenerateTree indicates a FatFactor or BloatFactor denominator <= 0.
	ErrDegenerateTree = errors.New("treestats: tree has too few nodes for its height")
	// ErrLevelOutOfRange indicates a level index outside [0, height).
	ErrLevelOutOfRange = errors.New("treestats: level index out of range")
	// ErrNegativeCount indicates a negative node, object, or intersection count.
	ErrNegativeCount = errors.New("treestats: counts must be >= 0")
	// ErrInvalidOccupation indicates an occupation that cannot form a tree.
	ErrInvalidOccupation = errors.New("treestats: occupation must be > 1")
	// ErrOptimalProfileMismatch indicates optimal node/object counts whose
	// lengths do not match the declared height.
	ErrOptimalProfileMismatch = errors.New("treestats: optimal profile length does not match height")
	// ErrNoOptimalProfile indicates BloatFactor was requested without a baseline.
	ErrNoOptimalProfile = errors.New("treestats: no optimal tree profile")
	// ErrNoObjectSizes indicates MeanObjectSize was requested with no samples.
	ErrNoObjectSizes = errors.New("treestats: no object size samples")
)
