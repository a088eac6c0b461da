package treestats

// LevelAggregate holds what a traversal observed on one level of the real
// tree. Level 0 is the root.
type LevelAggregate struct {
	// NodeCount is the number of nodes on this level.
	NodeCount int
	// ObjectCount is the number of indexed objects whose path passes
	// through this level.
	ObjectCount int
	// Intersections is the number of pairwise node-region overlaps
	// detected on this level.
	Intersections int
	// FatFactor is the local factor derived by Calculate:
	// (ObjectCount - Intersections) / ObjectCount / NodeCount.
	FatFactor float64
}

// OptimalLevelAggregate describes one level of a maximally packed tree
// holding the same objects as the measured one.
type OptimalLevelAggregate struct {
	NodeCount   int
	ObjectCount int
}

// optimalProfile is the simulated or injected baseline. A nil
// *optimalProfile means no baseline has been established.
type optimalProfile struct {
	levels []OptimalLevelAggregate
}

func (p *optimalProfile) height() int { return len(p.levels) }

func (p *optimalProfile) totalNodes() int {
	var total int
	for _, l := range p.levels {
		total += l.NodeCount
	}
	return total
}

func (p *optimalProfile) clone() *optimalProfile {
	if p == nil {
		return nil
	}
	levels := make([]OptimalLevelAggregate, len(p.levels))
	copy(levels, p.levels)
	return &optimalProfile{levels: levels}
}
