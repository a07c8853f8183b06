package gridgraph

import "fmt"

// MaxCells bounds Width×Height of any grid.
const MaxCells = 1 << 24

// CheckSize reports whether a width×height grid can be built.
// Returns ErrEmptyGrid for non-positive dimensions and ErrGridTooLarge when
// the cell count exceeds MaxCells. The check never overflows.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrEmptyGrid
	}
	if width > MaxCells/height {
		return fmt.Errorf("%w: %dx%d, limit %d cells", ErrGridTooLarge, width, height, MaxCells)
	}

	return nil
}

// NewGridGraph constructs a GridGraph of the given dimensions from a complete
// list of cells. Every in-bounds coordinate must be described exactly once.
//
// Returns ErrEmptyGrid for non-positive dimensions, ErrGridTooLarge above
// MaxCells, and ErrOutOfBounds,
// ErrDuplicateCell, ErrUnknownTerrain or ErrMissingCell wrapped with the
// offending coordinate.
// Complexity: O(W×H) time and memory.
func NewGridGraph(width, height int, cells []Cell) (*GridGraph, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	n := width * height
	terrain := make([]Terrain, n)
	seen := make([]bool, n)

	var c Cell
	for _, c = range cells {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			return nil, fmt.Errorf("%w: cell %v in %dx%d grid", ErrOutOfBounds, c.Coord, width, height)
		}
		if !c.Terrain.Valid() {
			return nil, fmt.Errorf("%w: %d at %v", ErrUnknownTerrain, int(c.Terrain), c.Coord)
		}
		idx := c.Y*width + c.X
		if seen[idx] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateCell, c.Coord)
		}
		seen[idx] = true
		terrain[idx] = c.Terrain
	}
	for idx, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingCell, Coord{X: idx % width, Y: idx / width})
		}
	}

	return build(width, height, terrain), nil
}

// FromRows builds a GridGraph from rows[y][x] terrain values.
// Convenient for synthetic grids in tests and examples.
func FromRows(rows [][]Terrain) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	if err := CheckSize(w, h); err != nil {
		return nil, err
	}
	terrain := make([]Terrain, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w: %d at %v", ErrUnknownTerrain, int(t), Coord{X: x, Y: y})
			}
			terrain = append(terrain, t)
		}
	}

	return build(w, h, terrain), nil
}

// build wires the orthogonal adjacency lists. Adjacency ignores terrain:
// impassability is a property of the traversal rule, not of the grid shape.
func build(w, h int, terrain []Terrain) *GridGraph {
	gg := &GridGraph{
		Width:   w,
		Height:  h,
		terrain: terrain,
		adj:     make([][]int, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := gg.index(x, y)
			nbrs := make([]int, 0, 4)
			for _, d := range offsets4 {
				nx, ny := x+d[0], y+d[1]
				if !gg.inBounds(nx, ny) {
					continue
				}
				nbrs = append(nbrs, gg.index(nx, ny))
			}
			gg.adj[u] = nbrs
		}
	}

	return gg
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Coord) bool {
	return gg.inBounds(c.X, c.Y)
}

func (gg *GridGraph) inBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Len returns the number of cells.
func (gg *GridGraph) Len() int { return gg.Width * gg.Height }

// Index maps c to its row-major index y*Width + x.
// The caller must ensure InBounds(c).
// Complexity: O(1).
func (gg *GridGraph) Index(c Coord) int {
	return gg.index(c.X, c.Y)
}

func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Coord {
	return Coord{X: idx % gg.Width, Y: idx / gg.Width}
}

// Check returns ErrOutOfBounds wrapped with c when c lies outside the grid.
func (gg *GridGraph) Check(c Coord) error {
	if !gg.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, gg.Width, gg.Height)
	}

	return nil
}

// Terrain returns the terrain class of c.
// The caller must ensure InBounds(c).
func (gg *GridGraph) Terrain(c Coord) Terrain {
	return gg.terrain[gg.Index(c)]
}

// Cell returns the cell at c, or ErrOutOfBounds.
func (gg *GridGraph) Cell(c Coord) (Cell, error) {
	if err := gg.Check(c); err != nil {
		return Cell{}, err
	}

	return Cell{Coord: c, Terrain: gg.Terrain(c)}, nil
}

// Passable reports whether c is inside the grid and can be entered.
func (gg *GridGraph) Passable(c Coord) bool {
	return gg.InBounds(c) && gg.Terrain(c) != Impassable
}

// Neighbors returns the orthogonal neighbours of c in N, E, S, W order,
// regardless of terrain. It returns nil for out-of-bounds coordinates.
func (gg *GridGraph) Neighbors(c Coord) []Coord {
	if !gg.InBounds(c) {
		return nil
	}
	nbrs := gg.adj[gg.Index(c)]
	out := make([]Coord, len(nbrs))
	for i, v := range nbrs {
		out[i] = gg.Coordinate(v)
	}

	return out
}

// Cells returns all cells in row-major order.
func (gg *GridGraph) Cells() []Cell {
	out := make([]Cell, len(gg.terrain))
	for idx, t := range gg.terrain {
		out[idx] = Cell{Coord: gg.Coordinate(idx), Terrain: t}
	}

	return out
}
