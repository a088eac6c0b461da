package treestats

import (
	"math"
	"testing"
)

// --- Construction tests ---

func TestKDTree_Construction_BasicProperties(t *testing.T) {
	// 6 points in 2D
	data := []float64{
		0, 0,
		1, 0,
		2, 0,
		0, 3,
		1, 3,
		2, 3,
	}
	n, dims := 6, 2
	tree := NewKDTree(data, n, dims, 2)

	if tree.NumPoints() != n {
		t.Errorf("NumPoints() = %d, want %d", tree.NumPoints(), n)
	}
	if tree.NumFeatures() != dims {
		t.Errorf("NumFeatures() = %d, want %d", tree.NumFeatures(), dims)
	}
	if tree.LeafSize() != 2 {
		t.Errorf("LeafSize() = %d, want 2", tree.LeafSize())
	}
	checkPermutation(t, tree.IdxArray(), n)
}

func TestKDTree_Construction_LeafSize1(t *testing.T) {
	data := []float64{0, 0, 1, 1, 2, 2, 3, 3}
	tree := NewKDTree(data, 4, 2, 1)

	// 4 points, leafSize 1: complete tree of 7 nodes, every leaf holds 1 point.
	if tree.NumNodes() != 7 {
		t.Errorf("NumNodes() = %d, want 7", tree.NumNodes())
	}
	forEachNode(tree, func(id int, nd NodeData) {
		if nd.IsLeaf && nd.Size() != 1 {
			t.Errorf("leaf %d has %d points, want 1", id, nd.Size())
		}
	})
}

func TestKDTree_Construction_LeafSizeLargerThanN(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	tree := NewKDTree(data, 2, 2, 100)

	if tree.NumNodes() != 1 {
		t.Errorf("expected 1 node for leafSize > n, got %d", tree.NumNodes())
	}
	if !tree.Node(0).IsLeaf {
		t.Error("root should be a leaf when leafSize > n")
	}
}

func TestKDTree_Construction_NonPositiveLeafSize(t *testing.T) {
	tree := NewKDTree([]float64{0, 1, 2}, 3, 1, 0)
	if tree.LeafSize() != 1 {
		t.Errorf("LeafSize() = %d, want 1", tree.LeafSize())
	}
}

func TestKDTree_EmptyData(t *testing.T) {
	tree := NewKDTree(nil, 0, 2, 10)
	if tree.NumPoints() != 0 {
		t.Errorf("NumPoints() = %d, want 0", tree.NumPoints())
	}
	if tree.NumNodes() != 0 {
		t.Errorf("NumNodes() = %d, want 0", tree.NumNodes())
	}
}

func TestKDTree_DoesNotAliasInput(t *testing.T) {
	data := []float64{0, 1, 2, 3}
	tree := NewKDTree(data, 4, 1, 1)
	data[0] = 100

	lo, _ := tree.Bounds(0)
	if lo[0] != 0 {
		t.Errorf("root lower bound = %v after mutating input, want 0", lo[0])
	}
}

// --- Bounds and overlap ---

func TestKDTree_BoundsContainPoints(t *testing.T) {
	n, dims := 60, 3
	data := generateFlatData(n, dims)
	tree := NewKDTree(data, n, dims, 4)

	forEachNode(tree, func(id int, nd NodeData) {
		lo, hi := tree.Bounds(id)
		for i := nd.IdxStart; i < nd.IdxEnd; i++ {
			for d, v := range tree.Point(i) {
				if v < lo[d] || v > hi[d] {
					t.Errorf("node %d: point %d dim %d = %v outside [%v, %v]", id, i, d, v, lo[d], hi[d])
				}
			}
		}
	})
}

func TestKDTree_NodesOverlap(t *testing.T) {
	// Two clusters far apart along x, with a shared y range.
	data := []float64{
		0, 0,
		1, 5,
		10, 0,
		11, 5,
	}
	tree := NewKDTree(data, 4, 2, 2)
	left, right := tree.ChildNodes(0)

	if tree.NodesOverlap(left, right) {
		t.Error("children split along x should not overlap")
	}
	if !tree.NodesOverlap(0, left) || !tree.NodesOverlap(right, 0) {
		t.Error("a node should overlap its parent")
	}
	if !tree.NodesOverlap(left, left) {
		t.Error("a node should overlap itself")
	}
}

func TestKDTree_NodesOverlap_TouchingBoxes(t *testing.T) {
	// Median split puts both copies of 1 on different sides: [0,1] and [1,2].
	data := []float64{0, 1, 1, 2}
	tree := NewKDTree(data, 4, 1, 2)
	left, right := tree.ChildNodes(0)

	if !tree.NodesOverlap(left, right) {
		t.Error("boxes sharing a face should count as overlapping")
	}
}

func TestKDTree_ChildNodes(t *testing.T) {
	tree := NewKDTree([]float64{0, 1, 2, 3}, 4, 1, 1)
	for _, node := range []int{0, 1, 2} {
		left, right := tree.ChildNodes(node)
		if left != 2*node+1 || right != 2*node+2 {
			t.Errorf("ChildNodes(%d) = (%d, %d), want (%d, %d)", node, left, right, 2*node+1, 2*node+2)
		}
	}
}

func TestKDTree_LeafPointsCoverAll(t *testing.T) {
	data := make([]float64, 20*3)
	for i := range data {
		data[i] = float64(i)
	}
	n, dims := 20, 3
	tree := NewKDTree(data, n, dims, 4)
	checkLeavesCoverAll(t, tree, tree.IdxArray(), n)
}

func TestKDTree_NoNaNInfBounds(t *testing.T) {
	data := []float64{0, 0, 1, 0, 0, 1, 1, 1, 0.5, 0.5}
	tree := NewKDTree(data, 5, 2, 2)

	forEachNode(tree, func(id int, _ NodeData) {
		lo, hi := tree.Bounds(id)
		for d := range lo {
			if math.IsNaN(lo[d]) || math.IsInf(lo[d], 0) || math.IsNaN(hi[d]) || math.IsInf(hi[d], 0) {
				t.Errorf("node %d dim %d: bounds [%v, %v]", id, d, lo[d], hi[d])
			}
		}
	})
}

// --- helpers shared with the ball tree tests ---

// forEachNode visits every node reachable from the root.
func forEachNode(tree SpatialTree, fn func(id int, nd NodeData)) {
	for _, ids := range levelNodes(tree) {
		for _, id := range ids {
			fn(id, tree.Node(id))
		}
	}
}

func checkPermutation(t *testing.T, idx []int, n int) {
	t.Helper()
	if len(idx) != n {
		t.Fatalf("IdxArray length = %d, want %d", len(idx), n)
	}
	seen := make(map[int]bool)
	for _, v := range idx {
		if v < 0 || v >= n {
			t.Errorf("IdxArray contains out-of-range index %d", v)
		}
		if seen[v] {
			t.Errorf("IdxArray contains duplicate index %d", v)
		}
		seen[v] = true
	}
}

func checkLeavesCoverAll(t *testing.T, tree SpatialTree, idxArray []int, n int) {
	t.Helper()
	covered := make([]bool, n)
	forEachNode(tree, func(_ int, nd NodeData) {
		if !nd.IsLeaf {
			return
		}
		for i := nd.IdxStart; i < nd.IdxEnd; i++ {
			origIdx := idxArray[i]
			if covered[origIdx] {
				t.Errorf("point %d appears in multiple leaves", origIdx)
			}
			covered[origIdx] = true
		}
	})
	for i, c := range covered {
		if !c {
			t.Errorf("point %d not covered by any leaf", i)
		}
	}
}
