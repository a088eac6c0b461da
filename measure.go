package treestats

import (
	"fmt"
	"log"
)

// Measure walks tree level by level and returns a calculated report.
//
// For every level it records the number of nodes, the number of points
// stored under them, and the number of node pairs whose regions overlap.
// Every point's size is fed into the report's size accumulator. The
// optimal profile is simulated with cfg.Occupation before Calculate runs,
// so both FatFactor and BloatFactor are readable on success.
func Measure(tree SpatialTree, cfg MeasureConfig) (*TreeQualityReport, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := tree.NumPoints()
	if n == 0 {
		return nil, ErrNoObjects
	}

	levels := levelNodes(tree)
	report, err := NewTreeQualityReport(len(levels), n)
	if err != nil {
		return nil, err
	}
	if err := fillReport(report, tree, levels, cfg); err != nil {
		return nil, err
	}

	occupation := cfg.Occupation
	if occupation == 0 {
		occupation = max(tree.LeafSize(), 2)
		log.Printf("treestats: no occupation configured, simulating optimal tree with leaf size %d", occupation)
	}
	if err := report.CalculateOptimalTreeInfo(occupation); err != nil {
		return nil, err
	}
	if err := report.Calculate(); err != nil {
		return nil, fmt.Errorf("treestats: measuring %d-level tree: %w", len(levels), err)
	}
	return report, nil
}

// Remeasure runs a fresh pass over tree into an existing report, keeping
// its optimal profile. The tree must still have the report's height and
// object count.
func Remeasure(report *TreeQualityReport, tree SpatialTree, cfg MeasureConfig) error {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return err
	}

	levels := levelNodes(tree)
	if len(levels) != report.Height() || tree.NumPoints() != report.ObjectCount() {
		return fmt.Errorf("treestats: tree has %d levels and %d points, report expects %d and %d",
			len(levels), tree.NumPoints(), report.Height(), report.ObjectCount())
	}

	report.ResetData()
	if err := fillReport(report, tree, levels, cfg); err != nil {
		return err
	}
	return report.Calculate()
}

// fillReport adds one pass worth of level counts and object sizes.
func fillReport(report *TreeQualityReport, tree SpatialTree, levels [][]int, cfg MeasureConfig) error {
	for depth, ids := range levels {
		objects := 0
		for _, id := range ids {
			objects += tree.Node(id).Size()
		}
		overlaps := countOverlapsParallel(tree, ids, cfg.Workers)
		if err := report.AddLevel(depth, len(ids), objects, overlaps); err != nil {
			return err
		}
	}

	for pos := 0; pos < tree.NumPoints(); pos++ {
		report.AddObjectSize(cfg.ObjectSize(tree.Point(pos)))
	}
	return nil
}

// levelNodes returns the node ids of each level, root level first.
func levelNodes(tree SpatialTree) [][]int {
	if tree.NumPoints() == 0 {
		return nil
	}
	var levels [][]int
	frontier := []int{0}
	for len(frontier) > 0 {
		levels = append(levels, frontier)
		var next []int
		for _, id := range frontier {
			if tree.Node(id).IsLeaf {
				continue
			}
			left, right := tree.ChildNodes(id)
			next = append(next, left, right)
		}
		frontier = next
	}
	return levels
}
