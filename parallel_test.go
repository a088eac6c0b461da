package treestats

import "testing"

func TestCountOverlapsParallel_MatchesSequential(t *testing.T) {
	n, dims := 300, 2
	data := generateFlatData(n, dims)
	trees := map[string]SpatialTree{
		"kdtree":   NewKDTree(data, n, dims, 2),
		"balltree": NewBallTree(data, n, dims, EuclideanMetric{}, 2),
	}

	for name, tree := range trees {
		for depth, ids := range levelNodes(tree) {
			sequential := countOverlaps(tree, ids)
			for _, workers := range []int{0, 1, 2, 3, 8} {
				if got := countOverlapsParallel(tree, ids, workers); got != sequential {
					t.Errorf("%s level %d workers=%d: got %d overlaps, want %d",
						name, depth, workers, got, sequential)
				}
			}
		}
	}
}

func TestCountOverlapsParallel_MoreWorkersThanRows(t *testing.T) {
	data := []float64{5, 5, 5}
	tree := NewKDTree(data, 3, 1, 1)
	ids := []int{0, 0, 0}

	// Three copies of the root: every pair overlaps.
	if got := countOverlapsParallel(tree, ids, 16); got != 3 {
		t.Errorf("got %d overlaps, want 3", got)
	}
}

func TestCountOverlapsParallel_Trivial(t *testing.T) {
	tree := NewKDTree([]float64{1}, 1, 1, 1)
	if got := countOverlapsParallel(tree, nil, 4); got != 0 {
		t.Errorf("no nodes: got %d, want 0", got)
	}
	if got := countOverlapsParallel(tree, []int{0}, 4); got != 0 {
		t.Errorf("one node: got %d, want 0", got)
	}
}
