package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridtour/gridgraph"
	"github.com/katalvlaran/gridtour/tsp"
)

var (
	// ErrNilGrid indicates that Render received no grid.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrCellSize indicates a cell size below MinCellSize.
	ErrCellSize = errors.New("render: cell size too small")
)

// MinCellSize is the smallest accepted cell edge in pixels.
const MinCellSize = 4

// Terrain colours.
var (
	GrassColor      = color.RGBA{R: 106, G: 168, B: 79, A: 255}
	SandColor       = color.RGBA{R: 230, G: 205, B: 140, A: 255}
	ImpassableColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	GridLineColor   = color.RGBA{R: 0, G: 0, B: 0, A: 60}
	ObjectiveColor  = color.RGBA{R: 255, G: 196, B: 0, A: 255}
	OriginColor     = color.RGBA{R: 200, G: 30, B: 45, A: 255}
	PathColor       = color.RGBA{R: 20, G: 20, B: 20, A: 200}
)

// Palette tints leg marks; leg i uses Palette[i%len(Palette)].
var Palette = []color.RGBA{
	{R: 66, G: 133, B: 244, A: 255},
	{R: 171, G: 71, B: 188, A: 255},
	{R: 0, G: 172, B: 193, A: 255},
	{R: 255, G: 112, B: 67, A: 255},
	{R: 124, G: 179, B: 66, A: 255},
	{R: 236, G: 64, B: 122, A: 255},
	{R: 92, G: 107, B: 192, A: 255},
	{R: 255, G: 167, B: 38, A: 255},
}

// Options controls image geometry.
type Options struct {
	CellSize  int  // pixels per cell edge
	GridLines bool // draw cell borders
}

// DefaultOptions returns 32-pixel cells with grid lines.
func DefaultOptions() Options {
	return Options{CellSize: 32, GridLines: true}
}

// Overlay is everything drawn on top of the terrain. All fields are optional.
type Overlay struct {
	Origin     *gridgraph.Coord
	Objectives []gridgraph.Coord
	// Collected hides objectives by input index; it may be shorter than
	// Objectives.
	Collected []bool
	// Marks tints visited cells with the palette colour of a leg index.
	Marks map[gridgraph.Coord]int
	// Path is drawn as a polyline through cell centres.
	Path gridgraph.Path
}

// canvas maps grid coordinates to pixels.
type canvas struct {
	dc   *gg.Context
	cell float64
	h    int
}

// topLeft returns the pixel corner of c, with y = 0 at the bottom.
func (cv canvas) topLeft(c gridgraph.Coord) (float64, float64) {
	return float64(c.X) * cv.cell, float64(cv.h-1-c.Y) * cv.cell
}

func (cv canvas) center(c gridgraph.Coord) (float64, float64) {
	x, y := cv.topLeft(c)
	return x + cv.cell/2, y + cv.cell/2
}

// Render draws g with ov on top.
//
// Returns ErrNilGrid, ErrCellSize, or gridgraph.ErrOutOfBounds for an overlay
// coordinate outside the grid.
func Render(g *gridgraph.GridGraph, opts Options, ov Overlay) (image.Image, error) {
	dc, err := draw(g, opts, ov)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// SavePNG renders and writes the image to path.
func SavePNG(path string, g *gridgraph.GridGraph, opts Options, ov Overlay) error {
	dc, err := draw(g, opts, ov)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func draw(g *gridgraph.GridGraph, opts Options, ov Overlay) (*gg.Context, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if opts.CellSize < MinCellSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrCellSize, opts.CellSize, MinCellSize)
	}
	if err := checkOverlay(g, ov); err != nil {
		return nil, err
	}

	cv := canvas{
		dc:   gg.NewContext(g.Width*opts.CellSize, g.Height*opts.CellSize),
		cell: float64(opts.CellSize),
		h:    g.Height,
	}
	dc := cv.dc
	dc.SetColor(color.White)
	dc.Clear()

	// Terrain.
	for _, cell := range g.Cells() {
		x, y := cv.topLeft(cell.Coord)
		dc.SetColor(terrainColor(cell.Terrain))
		dc.DrawRectangle(x, y, cv.cell, cv.cell)
		dc.Fill()
	}

	// Leg marks, inset so the terrain stays visible.
	inset := cv.cell / 4
	for _, cell := range g.Cells() {
		leg, ok := ov.Marks[cell.Coord]
		if !ok {
			continue
		}
		x, y := cv.topLeft(cell.Coord)
		dc.SetColor(PaletteColor(leg))
		dc.DrawRectangle(x+inset, y+inset, cv.cell-2*inset, cv.cell-2*inset)
		dc.Fill()
	}

	if opts.GridLines {
		dc.SetColor(GridLineColor)
		dc.SetLineWidth(1)
		for x := 0; x <= g.Width; x++ {
			px := float64(x) * cv.cell
			dc.DrawLine(px, 0, px, float64(g.Height)*cv.cell)
		}
		for y := 0; y <= g.Height; y++ {
			py := float64(y) * cv.cell
			dc.DrawLine(0, py, float64(g.Width)*cv.cell, py)
		}
		dc.Stroke()
	}

	if len(ov.Path) > 1 {
		dc.SetColor(PathColor)
		dc.SetLineWidth(cv.cell / 8)
		dc.MoveTo(cv.center(ov.Path[0]))
		for _, p := range ov.Path[1:] {
			dc.LineTo(cv.center(p))
		}
		dc.Stroke()
	}

	for i, o := range ov.Objectives {
		if i < len(ov.Collected) && ov.Collected[i] {
			continue
		}
		x, y := cv.center(o)
		dc.SetColor(ObjectiveColor)
		dc.DrawCircle(x, y, cv.cell*0.3)
		dc.Fill()
	}

	if ov.Origin != nil {
		x, y := cv.center(*ov.Origin)
		dc.SetColor(OriginColor)
		dc.DrawRegularPolygon(4, x, y, cv.cell*0.35, 0)
		dc.Fill()
	}

	return dc, nil
}

func checkOverlay(g *gridgraph.GridGraph, ov Overlay) error {
	if ov.Origin != nil {
		if err := g.Check(*ov.Origin); err != nil {
			return fmt.Errorf("render: origin: %w", err)
		}
	}
	for _, o := range ov.Objectives {
		if err := g.Check(o); err != nil {
			return fmt.Errorf("render: objective: %w", err)
		}
	}
	for _, p := range ov.Path {
		if err := g.Check(p); err != nil {
			return fmt.Errorf("render: path: %w", err)
		}
	}
	for c := range ov.Marks {
		if err := g.Check(c); err != nil {
			return fmt.Errorf("render: mark: %w", err)
		}
	}

	return nil
}

func terrainColor(t gridgraph.Terrain) color.RGBA {
	switch t {
	case gridgraph.Sand:
		return SandColor
	case gridgraph.Impassable:
		return ImpassableColor
	default:
		return GrassColor
	}
}

// PaletteColor returns the colour of leg index i. Indices wrap around the
// palette in both directions.
func PaletteColor(i int) color.RGBA {
	n := len(Palette)

	return Palette[(i%n+n)%n]
}

// MarksForTour assigns every cell the tour departs from to a leg. The leg
// index starts at 0 and advances each time the tour arrives on an objective
// it has not collected yet, so the tint changes at every collection. A cell
// passed on several legs keeps the last one.
func MarksForTour(tour tsp.Tour, objectives []gridgraph.Coord) map[gridgraph.Coord]int {
	marks := make(map[gridgraph.Coord]int, len(tour.Cells))
	pending := make(map[gridgraph.Coord]bool, len(objectives))
	for _, o := range objectives {
		pending[o] = true
	}
	leg := 0
	for i := 0; i+1 < len(tour.Cells); i++ {
		marks[tour.Cells[i]] = leg
		if next := tour.Cells[i+1]; pending[next] {
			delete(pending, next)
			leg++
		}
	}

	return marks
}

// MarksForWalk assigns every cell a reached leg departs from to that leg's
// position among the reached legs.
func MarksForWalk(walk tsp.Walk) map[gridgraph.Coord]int {
	marks := make(map[gridgraph.Coord]int)
	leg := 0
	for _, l := range walk.Legs {
		if !l.Reached {
			continue
		}
		for i := 0; i+1 < len(l.Path); i++ {
			marks[l.Path[i]] = leg
		}
		leg++
	}

	return marks
}
