// Package dijkstra implements the single-pair shortest-path engine over a
// gridgraph.Network.
//
// Dijkstra computes the minimum-cost path between two cells of a grid whose
// directional movement costs come from an external cost table. Costs are
// non-negative reals and may be asymmetric or missing in either direction.
// Cells are processed in non-decreasing order of best-known cost using a
// min-heap with a lazy decrease-key, relaxing the precomputed permitted arcs.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = grid cells, E ≤ 4V permitted moves.
//   - Space: O(V + E) for labels, predecessors and the heap.
//
// Determinism:
//
//   - Frontier entries are totally ordered by (cost, row-major index), so
//     equal-cost alternatives always resolve the same way.
//   - Relaxation only accepts strict improvements; once a cell is settled its
//     predecessor never changes. Early termination at the goal and a full
//     drain therefore yield identical paths.
//
// Results:
//
//   - An unreachable goal yields an empty, non-nil Path. It is data, not an
//     error; the only errors are boundary validation failures.
//   - PathCost returns gridgraph.NoEdge (−1) when a consecutive pair is
//     missing from the cost table, so missing data is never free passage.
//
// An Engine only reads its Network; concurrent calls are safe.
package dijkstra
