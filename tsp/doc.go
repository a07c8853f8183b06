// Package tsp sequences objective cells into a minimum-cost closed tour that
// starts and ends at a fixed origin.
//
// The Planner drives the whole pipeline on top of a dijkstra.Engine:
//
//  1. Reachability filter: objectives the engine cannot reach from the origin
//     are dropped and reported in Tour.Unreachable.
//  2. Distance matrix: node 0 is the origin, nodes 1…N−1 are the reachable
//     objectives. dist[i][j] is the shortest-path cost i→j, or math.Inf(1)
//     when no path exists. The path behind every finite entry is cached.
//  3. TSPExact: Held–Karp subset dynamic programming over dp[mask][last].
//  4. Reconstruction: the index tour is expanded into one continuous cell
//     sequence by concatenating cached segments, de-duplicating the shared
//     junction cell.
//
// An empty Tour is the uniform "no feasible tour" signal: no objectives, none
// reachable, or no way back to the origin. It is never an error.
//
// InOrder is the simpler sequential run: objectives are visited in input
// order, each leg starting from the last reached objective.
//
// Complexity:
//
//   - Distance matrix: N single-source runs, O(N·(V + E) log V).
//   - TSPExact: O(N²·2ᴺ) time, O(N·2ᴺ) memory, allocated per call.
//
// The objective count is bounded (WithMaxObjectives, at most
// MaxObjectivesLimit) and checked before any search starts.
package tsp
