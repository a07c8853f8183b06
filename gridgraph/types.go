// Package gridgraph defines core types and constants for the grid movement graph.
package gridgraph

import "fmt"

// NoEdge is the cost reported for an ordered cell pair that has no entry in
// the cost table. It is negative so that no summation can mistake a missing
// move for free passage.
const NoEdge = -1.0

// Terrain classifies a cell. Only Impassable affects movement; the cost of a
// move is always taken from the CostTable.
type Terrain int

const (
	// Grass is passable-normal terrain.
	Grass Terrain = iota
	// Sand is passable-alternate terrain.
	Sand
	// Impassable cells can never be entered.
	Impassable
)

// Valid reports whether t is one of the known terrain classes.
func (t Terrain) Valid() bool {
	return t >= Grass && t <= Impassable
}

// String returns the lower-case terrain name.
func (t Terrain) String() string {
	switch t {
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case Impassable:
		return "impassable"
	default:
		return fmt.Sprintf("terrain(%d)", int(t))
	}
}

// Coord identifies a cell by its column (X) and row (Y).
// Two cells are the same cell iff their coordinates are equal.
type Coord struct {
	X, Y int
}

// String formats c as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Cell is a grid position with its terrain class.
type Cell struct {
	Coord
	Terrain Terrain
}

// Edge is an ordered pair of cells used as the cost table key.
type Edge struct {
	From, To Coord
}

// CostRecord is one externally supplied movement cost.
type CostRecord struct {
	From, To Coord
	Cost     float64
}

// Path is an ordered cell sequence from a start to a destination where every
// consecutive pair is a permitted move. An empty Path means "unreachable".
type Path []Coord

// Empty reports whether p carries no cells.
func (p Path) Empty() bool { return len(p) == 0 }

// Start returns the first cell of p. It panics on an empty path.
func (p Path) Start() Coord { return p[0] }

// End returns the last cell of p. It panics on an empty path.
func (p Path) End() Coord { return p[len(p)-1] }

// Arc is a precomputed permitted move from a cell to the neighbour at index To.
type Arc struct {
	To   int
	Cost float64
}

// offsets4 lists orthogonal neighbour offsets in a fixed order: N, E, S, W.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GridGraph is an immutable Width×Height terrain grid.
// terrain[idx] and adj[idx] are addressed by row-major index y*Width + x.
type GridGraph struct {
	Width, Height int
	terrain       []Terrain
	adj           [][]int
}
