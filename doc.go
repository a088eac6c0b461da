// Package treestats computes structural-quality statistics for hierarchical
// tree indexes: the FatFactor, which measures how much node regions overlap
// relative to a minimally overlapping tree of the same height, and the
// BloatFactor, which compares the tree against a simulated, maximally packed
// tree holding the same objects.
//
// A traversal fills a [TreeQualityReport] level by level and then derives the
// statistics:
//
//	report, err := treestats.NewTreeQualityReport(height, objectCount)
//	for level, c := range counts {
//		report.AddLevel(level, c.Nodes, c.Objects, c.Intersections)
//	}
//	report.CalculateOptimalTreeInfo(occupation)
//	err = report.Calculate()
//	fat, err := report.FatFactor()
//	bloat, err := report.BloatFactor()
//
// Derived values are only readable while the report is fresh: any change to
// the level data or the optimal profile makes the getters return [ErrStale]
// until Calculate runs again.
//
// # Spatial trees
//
// The package ships two array-form binary indexes, [KDTree] and [BallTree],
// and [Measure], which walks any [SpatialTree] and returns a calculated report:
//
//	tree := treestats.NewBallTree(data, n, dims, treestats.EuclideanMetric{}, 16)
//	report, err := treestats.Measure(tree, treestats.DefaultMeasureConfig())
package treestats
