package treestats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceMetric measures the distance between two points of equal
// dimensionality. Ball trees use it to compute node radii and to decide
// whether two node balls overlap.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	return floats.Distance(a, b, m.P)
}

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0). Cosine distance violates
// the triangle inequality, so ball overlap under it is only a heuristic.
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	return 1.0 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
}
