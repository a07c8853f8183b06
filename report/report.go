package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gridtour/gridgraph"
	"github.com/katalvlaran/gridtour/tsp"
)

// ErrStepMismatch indicates a route whose step costs do not pair up with its
// moves. Nothing is written in that case.
var ErrStepMismatch = errors.New("report: step costs do not match path")

// checkSteps requires one step cost per move of path.
func checkSteps(path gridgraph.Path, steps []float64) error {
	moves := 0
	if len(path) > 0 {
		moves = len(path) - 1
	}
	if len(steps) != moves {
		return fmt.Errorf("%w: %d cells, %d step costs", ErrStepMismatch, len(path), len(steps))
	}

	return nil
}

// lineWriter formats lines onto an io.Writer and keeps the first error.
// Later writes become no-ops once an error is recorded.
type lineWriter struct {
	w     io.Writer
	bytes int
	err   error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	n, err := fmt.Fprintf(lw.w, format, args...)
	lw.bytes += n
	lw.err = err
}

func (lw *lineWriter) step(count int, to gridgraph.Coord, cost float64) {
	lw.printf("Step Count: %d, move to (%d, %d). Total Cost: %.2f.\n", count, to.X, to.Y, cost)
}

func (lw *lineWriter) total(steps int, cost float64) {
	lw.printf("Total Step: %d, Total Cost: %.2f\n", steps, cost)
}

// Summary is what a report printed.
type Summary struct {
	Steps     int
	Cost      float64
	Collected int
	Bytes     int
}

// WriteTour writes the log of an optimal tour. Step counts and costs run
// over the whole tour. The first time a move lands on an objective not yet
// collected, that objective is reported, the lowest input index first;
// objectives only become collected by arriving on them, so an objective on
// the origin is reported on the closing move.
//
// Returns ErrStepMismatch unless len(StepCosts) == len(Cells)-1.
func WriteTour(w io.Writer, tour tsp.Tour, objectives []gridgraph.Coord) (Summary, error) {
	if err := checkSteps(tour.Cells, tour.StepCosts); err != nil {
		return Summary{}, err
	}
	lw := &lineWriter{w: w}
	collected := make([]bool, len(objectives))
	var sum Summary

	for i := 1; i < len(tour.Cells); i++ {
		at := tour.Cells[i]
		sum.Steps++
		sum.Cost += tour.StepCosts[i-1]
		lw.step(sum.Steps, at, sum.Cost)
		for j, o := range objectives {
			if !collected[j] && o == at {
				collected[j] = true
				sum.Collected++
				lw.printf("Objective %d reached!\n", j+1)
				break
			}
		}
	}
	lw.total(sum.Steps, sum.Cost)
	sum.Bytes = lw.bytes

	return sum, lw.err
}

// WriteWalk writes the log of an in-order walk. Each reached leg prints its
// starting position, then its moves with a per-leg step count and running
// leg cost; unreachable legs print a single line. The closing total covers
// every leg. A reached leg needs one step cost per move, else ErrStepMismatch.
func WriteWalk(w io.Writer, walk tsp.Walk) (Summary, error) {
	for _, leg := range walk.Legs {
		if !leg.Reached {
			continue
		}
		if err := checkSteps(leg.Path, leg.StepCosts); err != nil {
			return Summary{}, fmt.Errorf("objective %d: %w", leg.Objective+1, err)
		}
	}
	lw := &lineWriter{w: w}
	var sum Summary

	for _, leg := range walk.Legs {
		if !leg.Reached {
			lw.printf("Objective %d cannot be reached!\n", leg.Objective+1)
			continue
		}
		var legCost float64
		for j := 1; j < len(leg.Path); j++ {
			if j == 1 {
				lw.printf("Starting position: (%d, %d)\n", leg.Path[0].X, leg.Path[0].Y)
			}
			legCost += leg.StepCosts[j-1]
			lw.step(j, leg.Path[j], legCost)
		}
		sum.Steps += len(leg.Path) - 1
		sum.Cost += legCost
		sum.Collected++
		lw.printf("Objective %d reached!\n", leg.Objective+1)
	}
	lw.total(sum.Steps, sum.Cost)
	sum.Bytes = lw.bytes

	return sum, lw.err
}
