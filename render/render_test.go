package render_test

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtour/gridgraph"
	"github.com/katalvlaran/gridtour/render"
	"github.com/katalvlaran/gridtour/tsp"
)

func c(x, y int) gridgraph.Coord { return gridgraph.Coord{X: x, Y: y} }

// grid2x2 has grass at (0,0) and (1,1), impassable at (1,0), sand at (0,1).
func grid2x2(t *testing.T) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.FromRows([][]gridgraph.Terrain{
		{gridgraph.Grass, gridgraph.Impassable},
		{gridgraph.Sand, gridgraph.Grass},
	})
	require.NoError(t, err)

	return g
}

func TestRender_TerrainBottomUp(t *testing.T) {
	img, err := render.Render(grid2x2(t), render.Options{CellSize: 10}, render.Overlay{})
	require.NoError(t, err)
	require.Equal(t, 20, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())

	// Row y = 0 occupies the lower half of the image.
	require.Equal(t, render.GrassColor, img.At(1, 11))
	require.Equal(t, render.ImpassableColor, img.At(11, 11))
	require.Equal(t, render.SandColor, img.At(1, 1))
	require.Equal(t, render.GrassColor, img.At(11, 1))
}

func TestRender_Overlay(t *testing.T) {
	origin := c(1, 1)
	img, err := render.Render(grid2x2(t), render.Options{CellSize: 10}, render.Overlay{
		Origin:     &origin,
		Objectives: []gridgraph.Coord{c(0, 0), c(0, 1)},
		Collected:  []bool{false, true},
		Marks:      map[gridgraph.Coord]int{c(1, 0): 2},
	})
	require.NoError(t, err)

	require.Equal(t, render.ObjectiveColor, img.At(5, 15))
	require.Equal(t, render.SandColor, img.At(5, 5), "collected objectives are hidden")
	require.Equal(t, render.OriginColor, img.At(15, 5))
	require.Equal(t, render.PaletteColor(2), img.At(15, 15))
	require.Equal(t, render.ImpassableColor, img.At(11, 11), "marks leave a terrain border")
}

func TestRender_Errors(t *testing.T) {
	_, err := render.Render(nil, render.DefaultOptions(), render.Overlay{})
	require.ErrorIs(t, err, render.ErrNilGrid)
	_, err = render.Render(grid2x2(t), render.Options{CellSize: 2}, render.Overlay{})
	require.ErrorIs(t, err, render.ErrCellSize)

	bad := c(2, 0)
	_, err = render.Render(grid2x2(t), render.DefaultOptions(), render.Overlay{Origin: &bad})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = render.Render(grid2x2(t), render.DefaultOptions(), render.Overlay{Path: gridgraph.Path{c(0, 0), c(0, 2)}})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = render.Render(grid2x2(t), render.DefaultOptions(), render.Overlay{Marks: map[gridgraph.Coord]int{c(-1, 0): 0}})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.png")
	err := render.SavePNG(path, grid2x2(t), render.DefaultOptions(), render.Overlay{
		Path: gridgraph.Path{c(0, 0), c(0, 1), c(1, 1)},
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())
}

func TestMarksForTour(t *testing.T) {
	tour := tsp.Tour{Cells: gridgraph.Path{c(0, 0), c(1, 0), c(2, 0), c(1, 0), c(0, 0)}}
	marks := render.MarksForTour(tour, []gridgraph.Coord{c(2, 0)})
	require.Equal(t, map[gridgraph.Coord]int{c(0, 0): 0, c(1, 0): 1, c(2, 0): 1}, marks)

	require.Empty(t, render.MarksForTour(tsp.Tour{}, nil))
}

func TestMarksForWalk(t *testing.T) {
	walk := tsp.Walk{Legs: []tsp.Leg{
		{Path: gridgraph.Path{c(0, 0), c(1, 0)}, Reached: true},
		{Reached: false},
		{Path: gridgraph.Path{c(1, 0), c(1, 1), c(2, 1)}, Reached: true},
	}}
	marks := render.MarksForWalk(walk)
	require.Equal(t, map[gridgraph.Coord]int{c(0, 0): 0, c(1, 0): 1, c(1, 1): 1}, marks)
}

func TestPaletteColor_Wraps(t *testing.T) {
	n := len(render.Palette)
	require.Equal(t, render.Palette[0], render.PaletteColor(n))
	require.Equal(t, render.Palette[n-1], render.PaletteColor(-1))
	require.Equal(t, render.Palette[0], render.PaletteColor(-n))
	require.Equal(t, render.Palette[math.MaxInt%n], render.PaletteColor(math.MaxInt))
	require.Equal(t, render.Palette[(math.MinInt%n+n)%n], render.PaletteColor(math.MinInt))
}
