package treestats

import (
	"math"
	"sort"
)

// NodeData describes a single node in a spatial tree.
type NodeData struct {
	IdxStart, IdxEnd int
	IsLeaf           bool
	Radius           float64 // ball tree radius; 0 for KD-tree
}

// Size returns the number of points stored under the node.
func (nd NodeData) Size() int { return nd.IdxEnd - nd.IdxStart }

// SpatialTree is the read interface Measure walks to fill a
// TreeQualityReport. Node 0 is the root.
type SpatialTree interface {
	// NumPoints returns the number of points in the tree.
	NumPoints() int

	// NumFeatures returns the dimensionality of each point.
	NumFeatures() int

	// LeafSize returns the maximum number of points per leaf.
	LeafSize() int

	// Node returns the metadata of the given node.
	Node(id int) NodeData

	// ChildNodes returns the left and right child node indices.
	// Behavior is undefined for leaf nodes.
	ChildNodes(id int) (left, right int)

	// Point returns the point stored at tree-order position pos.
	Point(pos int) []float64

	// NodesOverlap reports whether the regions of two nodes intersect.
	NodesOverlap(a, b int) bool
}

// arrayTree is the array-form binary layout shared by KDTree and BallTree:
// node i has children at 2*i+1 and 2*i+2.
type arrayTree struct {
	data     []float64 // flat row-major point data (n * dims)
	n        int       // number of points
	dims     int       // dimensionality
	leafSize int
	idxArray []int      // permutation: tree-order position → original index
	nodes    []NodeData // one entry per node slot
}

func newArrayTree(data []float64, n, dims, leafSize int) arrayTree {
	if leafSize < 1 {
		leafSize = 1
	}
	dataCopy := make([]float64, len(data))
	copy(dataCopy, data)
	idxArray := make([]int, n)
	for i := range idxArray {
		idxArray[i] = i
	}
	return arrayTree{
		data:     dataCopy,
		n:        n,
		dims:     dims,
		leafSize: leafSize,
		idxArray: idxArray,
		nodes:    make([]NodeData, maxNodes(n, leafSize)),
	}
}

func (t *arrayTree) NumPoints() int       { return t.n }
func (t *arrayTree) NumFeatures() int     { return t.dims }
func (t *arrayTree) LeafSize() int        { return t.leafSize }
func (t *arrayTree) Node(id int) NodeData { return t.nodes[id] }
func (t *arrayTree) IdxArray() []int      { return t.idxArray }

func (t *arrayTree) ChildNodes(id int) (left, right int) {
	return 2*id + 1, 2*id + 2
}

// Point returns the point at tree-order position pos.
func (t *arrayTree) Point(pos int) []float64 {
	ptIdx := t.idxArray[pos]
	return t.data[ptIdx*t.dims : (ptIdx+1)*t.dims]
}

// NumNodes counts the nodes reachable from the root.
func (t *arrayTree) NumNodes() int {
	if t.n == 0 {
		return 0
	}
	return t.countNodes(0)
}

func (t *arrayTree) countNodes(id int) int {
	count := 1
	if !t.nodes[id].IsLeaf {
		left, right := t.ChildNodes(id)
		count += t.countNodes(left) + t.countNodes(right)
	}
	return count
}

// growTo makes sure node slot id exists.
func (t *arrayTree) growTo(id int) {
	for id >= len(t.nodes) {
		t.nodes = append(t.nodes, NodeData{})
	}
}

// maxNodes returns an upper bound on the number of node slots needed for a
// binary tree with n points and the given leaf size.
func maxNodes(n, leafSize int) int {
	if n == 0 {
		return 1
	}
	// Depth of tree: ceil(log2(ceil(n/leafSize))) + 1.
	// Number of nodes in a complete binary tree of depth d = 2^(d+1) - 1.
	leaves := (n + leafSize - 1) / leafSize
	depth := 0
	v := 1
	for v < leaves {
		v *= 2
		depth++
	}
	return (1 << (depth + 1)) - 1 + 2 // +2 for safety margin
}

// widestDim returns the dimension with the greatest spread among points in
// idxArray[start:end].
func (t *arrayTree) widestDim(start, end int) int {
	bestDim := 0
	bestSpread := -1.0
	for d := 0; d < t.dims; d++ {
		minVal := math.Inf(1)
		maxVal := math.Inf(-1)
		for i := start; i < end; i++ {
			v := t.data[t.idxArray[i]*t.dims+d]
			minVal = min(minVal, v)
			maxVal = max(maxVal, v)
		}
		if spread := maxVal - minVal; spread > bestSpread {
			bestSpread = spread
			bestDim = d
		}
	}
	return bestDim
}

// sortByDim sorts idxArray[start:end] by the given dimension.
func (t *arrayTree) sortByDim(start, end, dim int) {
	sub := t.idxArray[start:end]
	dims := t.dims
	data := t.data
	sort.Slice(sub, func(i, j int) bool {
		return data[sub[i]*dims+dim] < data[sub[j]*dims+dim]
	})
}
