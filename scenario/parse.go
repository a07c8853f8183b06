package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridtour/gridgraph"
)

// tokenizer yields whitespace-separated tokens together with their line.
type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
	line   int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	return &tokenizer{sc: sc}
}

// next returns the next token, or io.EOF after the last one.
func (t *tokenizer) next() (string, error) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]

	return tok, nil
}

// group reads exactly n tokens. It returns io.EOF when the input ends before
// the first one and ErrSyntax when it ends inside the group.
func (t *tokenizer) group(n int, what string) ([]string, error) {
	out := make([]string, 0, n)
	for len(out) < n {
		tok, err := t.next()
		if err == io.EOF && len(out) > 0 {
			return nil, fmt.Errorf("%w: line %d: incomplete %s, got %d of %d values", ErrSyntax, t.line, what, len(out), n)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}

	return out, nil
}

func (t *tokenizer) atoi(tok, what string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrSyntax, t.line, what, tok)
	}

	return v, nil
}

// ReadMap parses a map: "width height" then one "x y terrain" triple per cell.
//
// Returns ErrSyntax for malformed tokens and the gridgraph construction
// errors (ErrEmptyGrid, ErrGridTooLarge, ErrOutOfBounds, ErrDuplicateCell,
// ErrMissingCell, ErrUnknownTerrain) for structurally invalid maps. The
// header is checked against gridgraph.MaxCells before any cell is read.
func ReadMap(r io.Reader) (*gridgraph.GridGraph, error) {
	t := newTokenizer(r)
	head, err := t.group(2, "map header")
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty map", ErrSyntax)
	}
	if err != nil {
		return nil, err
	}
	w, err := t.atoi(head[0], "width")
	if err != nil {
		return nil, err
	}
	h, err := t.atoi(head[1], "height")
	if err != nil {
		return nil, err
	}

	if err := gridgraph.CheckSize(w, h); err != nil {
		return nil, fmt.Errorf("line %d: %w", t.line, err)
	}

	cells := make([]gridgraph.Cell, 0, w*h)
	for {
		f, err := t.group(3, "cell")
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		var v [3]int
		for i, name := range []string{"x", "y", "terrain"} {
			if v[i], err = t.atoi(f[i], name); err != nil {
				return nil, err
			}
		}
		cells = append(cells, gridgraph.Cell{
			Coord:   gridgraph.Coord{X: v[0], Y: v[1]},
			Terrain: gridgraph.Terrain(v[2]),
		})
	}

	return gridgraph.NewGridGraph(w, h, cells)
}

// ReadCosts parses "x1 y1 x2 y2 cost" records.
func ReadCosts(r io.Reader) ([]gridgraph.CostRecord, error) {
	t := newTokenizer(r)
	var recs []gridgraph.CostRecord
	for {
		f, err := t.group(5, "cost record")
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		var v [4]int
		for i, name := range []string{"x1", "y1", "x2", "y2"} {
			if v[i], err = t.atoi(f[i], name); err != nil {
				return nil, err
			}
		}
		cost, err := strconv.ParseFloat(f[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: cost %q is not a number", ErrSyntax, t.line, f[4])
		}
		recs = append(recs, gridgraph.CostRecord{
			From: gridgraph.Coord{X: v[0], Y: v[1]},
			To:   gridgraph.Coord{X: v[2], Y: v[3]},
			Cost: cost,
		})
	}
}

// ReadObjectives parses the origin pair followed by objective pairs.
// Returns ErrNoOrigin for empty input.
func ReadObjectives(r io.Reader) (gridgraph.Coord, []gridgraph.Coord, error) {
	t := newTokenizer(r)
	var pts []gridgraph.Coord
	for {
		f, err := t.group(2, "coordinate pair")
		if err == io.EOF {
			break
		}
		if err != nil {
			return gridgraph.Coord{}, nil, err
		}
		x, err := t.atoi(f[0], "x")
		if err != nil {
			return gridgraph.Coord{}, nil, err
		}
		y, err := t.atoi(f[1], "y")
		if err != nil {
			return gridgraph.Coord{}, nil, err
		}
		pts = append(pts, gridgraph.Coord{X: x, Y: y})
	}
	if len(pts) == 0 {
		return gridgraph.Coord{}, nil, ErrNoOrigin
	}

	return pts[0], pts[1:], nil
}
