// Package gridgraph treats a rectangular terrain grid as a weighted, directed
// movement graph for pathfinding and tour planning.
//
// What:
//
//   - GridGraph holds Width×Height cells in row-major order, each with a Terrain
//     class (Grass, Sand, Impassable) and a symmetric 4-neighbour adjacency list.
//   - CostTable is a read-only lookup of directional movement costs keyed by an
//     ordered (From, To) coordinate pair. A missing key means "no direct move",
//     which is different from a zero-cost move.
//   - Network binds a GridGraph to a CostTable and precomputes, per cell index,
//     the outgoing arcs that obey the traversal rule.
//
// Traversal rule:
//
//	A move A→B is permitted iff B is an orthogonal neighbour of A, B is not
//	Impassable, and the cost table holds a non-negative entry for (A,B).
//	The traversal cost is exactly that entry; terrain never alters it.
//
// Complexity:
//
//   - NewGridGraph:   O(W×H), Memory: O(W×H).
//   - NewNetwork:     O(W×H×4 + C) where C = number of cost records.
//   - Reachable:      O(W×H×4), Memory: O(W×H).
//   - Components:     O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       width or height is not positive.
//   - ErrNonRectangular:  rows of differing lengths (FromRows).
//   - ErrOutOfBounds:     a coordinate lies outside the grid.
//   - ErrDuplicateCell:   a cell was supplied twice.
//   - ErrMissingCell:     an in-bounds cell was never supplied.
//   - ErrUnknownTerrain:  a terrain code outside {0,1,2}.
//   - ErrNegativeCost, ErrInvalidCost: unusable cost record.
//
// Every structure in this package is immutable after construction and may be
// shared between goroutines without synchronization.
package gridgraph
