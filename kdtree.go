package treestats

import "math"

// KDTree is a KD-tree spatial index. Points are stored in a flat row-major
// array and reordered internally via an index permutation array. Each node
// region is the axis-aligned bounding box of its points.
//
// The tree is stored as a complete binary tree in array form:
//   - node i has children at 2*i+1 and 2*i+2
//   - node bounds are stored as min/max per dimension per node
type KDTree struct {
	arrayTree
	// nodeBoundsMin[node*dims + j] = min value of feature j in node
	nodeBoundsMin []float64
	// nodeBoundsMax[node*dims + j] = max value of feature j in node
	nodeBoundsMax []float64
}

// NewKDTree builds a KD-tree from flat row-major data with n points of
// dimensionality dims. leafSize controls the max points per leaf node.
func NewKDTree(data []float64, n, dims, leafSize int) *KDTree {
	t := &KDTree{arrayTree: newArrayTree(data, n, dims, leafSize)}
	t.nodeBoundsMin = make([]float64, len(t.nodes)*dims)
	t.nodeBoundsMax = make([]float64, len(t.nodes)*dims)

	if n > 0 {
		t.buildNode(0, 0, n)
	}
	return t
}

// buildNode recursively builds the tree for points in idxArray[start:end].
func (t *KDTree) buildNode(nodeID, start, end int) {
	// Grow arrays if needed (shouldn't happen with good upper bound).
	if nodeID >= len(t.nodes) {
		t.growTo(nodeID)
		t.nodeBoundsMin = append(t.nodeBoundsMin, make([]float64, len(t.nodes)*t.dims-len(t.nodeBoundsMin))...)
		t.nodeBoundsMax = append(t.nodeBoundsMax, make([]float64, len(t.nodes)*t.dims-len(t.nodeBoundsMax))...)
	}

	t.computeNodeBounds(nodeID, start, end)

	count := end - start
	if count <= t.leafSize {
		t.nodes[nodeID] = NodeData{IdxStart: start, IdxEnd: end, IsLeaf: true}
		return
	}

	// Split at the median of the widest dimension.
	splitDim := 0
	maxSpread := -1.0
	for d := 0; d < t.dims; d++ {
		spread := t.nodeBoundsMax[nodeID*t.dims+d] - t.nodeBoundsMin[nodeID*t.dims+d]
		if spread > maxSpread {
			maxSpread = spread
			splitDim = d
		}
	}
	t.sortByDim(start, end, splitDim)
	mid := start + count/2

	t.nodes[nodeID] = NodeData{IdxStart: start, IdxEnd: end, IsLeaf: false}

	left, right := t.ChildNodes(nodeID)
	t.buildNode(left, start, mid)
	t.buildNode(right, mid, end)
}

// computeNodeBounds computes min/max per dimension for points idxArray[start:end].
func (t *KDTree) computeNodeBounds(nodeID, start, end int) {
	base := nodeID * t.dims
	for d := 0; d < t.dims; d++ {
		t.nodeBoundsMin[base+d] = math.Inf(1)
		t.nodeBoundsMax[base+d] = math.Inf(-1)
	}
	for i := start; i < end; i++ {
		pt := t.Point(i)
		for d, v := range pt {
			t.nodeBoundsMin[base+d] = min(t.nodeBoundsMin[base+d], v)
			t.nodeBoundsMax[base+d] = max(t.nodeBoundsMax[base+d], v)
		}
	}
}

// Bounds returns the bounding box of a node.
func (t *KDTree) Bounds(id int) (lo, hi []float64) {
	base := id * t.dims
	return t.nodeBoundsMin[base : base+t.dims], t.nodeBoundsMax[base : base+t.dims]
}

// NodesOverlap reports whether the closed bounding boxes of two nodes
// intersect. Boxes that only touch on a face count as overlapping.
func (t *KDTree) NodesOverlap(a, b int) bool {
	loA, hiA := t.Bounds(a)
	loB, hiB := t.Bounds(b)
	for d := 0; d < t.dims; d++ {
		if loA[d] > hiB[d] || loB[d] > hiA[d] {
			return false
		}
	}
	return true
}
