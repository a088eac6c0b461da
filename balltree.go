package treestats

import "gonum.org/v1/gonum/floats"

// BallTree is a ball tree spatial index. Each node stores a centroid and
// radius defining the smallest centroid-based ball enclosing its points.
//
// The tree is stored as a complete binary tree in array form:
// node i has children at 2*i+1 and 2*i+2.
type BallTree struct {
	arrayTree
	metric DistanceMetric
	// centroids[node*dims .. (node+1)*dims) = centroid of node
	centroids []float64
}

// NewBallTree builds a ball tree from flat row-major data with n points
// of dimensionality dims. leafSize controls the max points per leaf node.
// A nil metric defaults to EuclideanMetric.
func NewBallTree(data []float64, n, dims int, metric DistanceMetric, leafSize int) *BallTree {
	if metric == nil {
		metric = EuclideanMetric{}
	}
	t := &BallTree{
		arrayTree: newArrayTree(data, n, dims, leafSize),
		metric:    metric,
	}
	t.centroids = make([]float64, len(t.nodes)*dims)

	if n > 0 {
		t.buildNode(0, 0, n)
	}
	return t
}

// buildNode recursively builds the ball tree for points in idxArray[start:end].
func (t *BallTree) buildNode(nodeID, start, end int) {
	if nodeID >= len(t.nodes) {
		t.growTo(nodeID)
		t.centroids = append(t.centroids, make([]float64, len(t.nodes)*t.dims-len(t.centroids))...)
	}

	centroid := t.computeCentroid(nodeID, start, end)

	// Radius: max distance from centroid to any point in this node.
	var radius float64
	for i := start; i < end; i++ {
		radius = max(radius, t.metric.Distance(centroid, t.Point(i)))
	}

	count := end - start
	if count <= t.leafSize {
		t.nodes[nodeID] = NodeData{IdxStart: start, IdxEnd: end, IsLeaf: true, Radius: radius}
		return
	}

	t.nodes[nodeID] = NodeData{IdxStart: start, IdxEnd: end, IsLeaf: false, Radius: radius}

	// Split at the median of the dimension with greatest spread.
	t.sortByDim(start, end, t.widestDim(start, end))
	mid := start + count/2

	left, right := t.ChildNodes(nodeID)
	t.buildNode(left, start, mid)
	t.buildNode(right, mid, end)
}

// computeCentroid stores the mean of points idxArray[start:end] as the
// node centroid and returns it.
func (t *BallTree) computeCentroid(nodeID, start, end int) []float64 {
	centroid := t.Centroid(nodeID)
	for d := range centroid {
		centroid[d] = 0
	}
	for i := start; i < end; i++ {
		floats.Add(centroid, t.Point(i))
	}
	floats.Scale(1/float64(end-start), centroid)
	return centroid
}

// Centroid returns the centroid of a node.
func (t *BallTree) Centroid(id int) []float64 {
	return t.centroids[id*t.dims : (id+1)*t.dims]
}

// NodesOverlap reports whether the closed balls of two nodes intersect.
func (t *BallTree) NodesOverlap(a, b int) bool {
	d := t.metric.Distance(t.Centroid(a), t.Centroid(b))
	return d <= t.nodes[a].Radius+t.nodes[b].Radius
}
