package tsp

import (
	"fmt"
	"math"
)

// TSPExact solves the closed-tour problem exactly on a distance matrix using
// the Held–Karp dynamic-programming algorithm.
//
// The input is an n×n matrix dist, where dist[i][j] is the cost to go from
// node i to j. math.Inf(1) represents "no path". The diagonal must be zero.
// A positive maxNodes bounds n further; the solver never accepts more than
// MaxObjectivesLimit+1 nodes.
//
// It returns a TSResult whose Tour has length n+1, starts and ends at 0 and
// visits every other node exactly once. ErrIncompleteGraph is returned when
// no such cycle exists, including n == 1.
//
// dp[mask][j] is the minimum cost to start at 0, visit exactly the nodes in
// mask, and end at j. Node 0 is implicit in every mask, so only bits 1…n−1
// are stored, halving the table. States are expanded forward in ascending
// mask order; an update requires a strict improvement and candidates are
// tried in ascending node order, so on equal cost the lowest index wins.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func TSPExact(dist [][]float64, maxNodes int) (TSResult, error) {
	n, err := validateDist(dist)
	if err != nil {
		return TSResult{}, err
	}
	if n > MaxObjectivesLimit+1 || (maxNodes > 0 && n > maxNodes) {
		return TSResult{}, fmt.Errorf("%w: %d", ErrTooManyNodes, n)
	}
	if n == 1 {
		return TSResult{}, ErrIncompleteGraph
	}

	// bit(j) is the stored mask bit of node j ≥ 1.
	bit := func(j int) int { return 1 << (j - 1) }
	allMask := (1 << (n - 1)) - 1

	// --- 1. Allocate DP and parent tables, flat [mask*n + j] ---
	size := (allMask + 1) * n
	dp := make([]float64, size)
	parent := make([]int8, size)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	// Base case: only node 0 visited, standing on it.
	dp[0] = 0

	// --- 2. Forward transitions ---
	for mask := 0; mask <= allMask; mask++ {
		row := mask * n
		for last := 0; last < n; last++ {
			// Node 0 is only a valid endpoint of the empty mask.
			if (last == 0) != (mask == 0) {
				continue
			}
			if last > 0 && mask&bit(last) == 0 {
				continue
			}
			cur := dp[row+last]
			if math.IsInf(cur, 1) {
				continue
			}
			for next := 1; next < n; next++ {
				if mask&bit(next) != 0 {
					continue
				}
				c := dist[last][next]
				if math.IsInf(c, 1) {
					continue // no path last→next
				}
				at := (mask|bit(next))*n + next
				if cand := cur + c; cand < dp[at] {
					dp[at] = cand
					parent[at] = int8(last)
				}
			}
		}
	}

	// --- 3. Close the tour by returning to 0 ---
	bestCost := math.Inf(1)
	last := -1
	full := allMask * n
	for j := 1; j < n; j++ {
		c := dist[j][0]
		if math.IsInf(c, 1) || math.IsInf(dp[full+j], 1) {
			continue
		}
		if total := dp[full+j] + c; total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 {
		return TSResult{}, ErrIncompleteGraph
	}

	// --- 4. Reconstruct tour from parent table ---
	tour := make([]int, n+1)
	mask := allMask
	j := last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := int(parent[mask*n+j])
		mask ^= bit(j)
		j = p
	}

	return TSResult{Tour: tour, Cost: round1e9(bestCost)}, nil
}
