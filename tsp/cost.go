package tsp

import (
	"fmt"
	"math"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// validateDist checks that dist is a non-empty square matrix with a zero
// diagonal and no negative or NaN entries. +Inf marks a missing path and is
// accepted off the diagonal. It returns n.
//
// Complexity: O(n²).
func validateDist(dist [][]float64) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty matrix", ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, fmt.Errorf("%w: row %d length %d, want %d", ErrNonSquare, i, len(dist[i]), n)
		}
		for j, w := range dist[i] {
			switch {
			case math.IsNaN(w):
				return 0, fmt.Errorf("%w: dist[%d][%d] is NaN", ErrDimensionMismatch, i, j)
			case w < 0:
				return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNegativeWeight, i, j, w)
			case i == j && w != 0:
				return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNonZeroDiagonal, i, j, w)
			}
		}
	}

	return n, nil
}

// TourCost sums dist along the closed index tour tour[0]→…→tour[len-1].
//
// Contract:
//   - tour must have at least two entries, all within [0..n-1].
//   - dist must be square.
//   - Returns ErrNonSquare, ErrDimensionMismatch, ErrIncompleteGraph (an
//     infinite step) or ErrNegativeWeight.
//
// Complexity: O(len(tour)).
func TourCost(dist [][]float64, tour []int) (float64, error) {
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	n := len(dist)
	if n == 0 {
		return 0, ErrNonSquare
	}
	for i := range dist {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}

	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w := dist[u][v]
		switch {
		case math.IsNaN(w):
			return 0, ErrDimensionMismatch
		case math.IsInf(w, 0):
			return 0, ErrIncompleteGraph
		case w < 0:
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
