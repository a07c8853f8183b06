package tsp

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/gridtour/gridgraph"
)

// Sentinel errors returned by the solver and the planner.
var (
	// ErrIncompleteGraph is returned when the distance matrix does not
	// admit any closed tour through every node.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNonSquare indicates a distance matrix with ragged or missing rows.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNonZeroDiagonal indicates dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: self-distance must be 0")

	// ErrNegativeWeight indicates a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrDimensionMismatch indicates an empty matrix, a NaN entry or a tour
	// index outside the matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrTooManyNodes indicates a matrix larger than the exact solver accepts.
	ErrTooManyNodes = errors.New("tsp: too many nodes for exact search")

	// ErrTooManyObjectives indicates more objectives than the planner bound.
	ErrTooManyObjectives = errors.New("tsp: too many objectives")

	// ErrDuplicateObjective indicates the same objective cell listed twice.
	ErrDuplicateObjective = errors.New("tsp: duplicate objective")

	// ErrBrokenSegment indicates a tour step with no cached path. It means the
	// distance matrix and the segment cache disagree.
	ErrBrokenSegment = errors.New("tsp: missing path segment")

	// ErrNilEngine indicates that NewPlanner received a nil engine.
	ErrNilEngine = errors.New("tsp: engine is nil")

	// ErrInvalidOption indicates an out-of-range option value.
	ErrInvalidOption = errors.New("tsp: invalid option")
)

// MaxObjectivesLimit is the hard ceiling on objectives per tour.
// The DP table for N = MaxObjectivesLimit+1 nodes holds N·2ᴺ⁻¹ states.
const MaxObjectivesLimit = 20

// DefaultMaxObjectives is the planner bound when WithMaxObjectives is not set.
const DefaultMaxObjectives = 16

// TSResult holds the outcome of TSPExact.
type TSResult struct {
	// Tour is the sequence of node indices, starting and ending at 0.
	// For n nodes, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}

// Tour is a closed route from the origin through every reachable objective.
type Tour struct {
	// Cells begins and ends at the origin; empty when no tour exists.
	Cells gridgraph.Path

	// Stops lists the reachable objectives in visiting order.
	Stops []gridgraph.Coord

	// StepCosts[i] is the cost of Cells[i] → Cells[i+1].
	StepCosts []float64

	// Cost is the sum of StepCosts.
	Cost float64

	// Unreachable lists objectives the origin cannot reach, in input order.
	Unreachable []gridgraph.Coord
}

// Empty reports whether the tour has no cells.
func (t Tour) Empty() bool { return len(t.Cells) == 0 }

// Steps returns the number of moves along the tour.
func (t Tour) Steps() int { return len(t.StepCosts) }

// Leg is one objective visit of an in-order walk.
type Leg struct {
	Objective int             // zero-based input index
	Target    gridgraph.Coord // objective cell
	Path      gridgraph.Path  // empty when Reached is false
	StepCosts []float64
	Cost      float64
	Reached   bool
}

// Walk is the result of InOrder.
type Walk struct {
	Origin gridgraph.Coord
	Legs   []Leg
	Cost   float64
	Steps  int
}

// Options configures a Planner.
//
// MaxObjectives – upper bound on objectives per call, 1…MaxObjectivesLimit.
// Logger        – receives debug records for each pipeline stage.
type Options struct {
	MaxObjectives int
	Logger        *slog.Logger
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// WithMaxObjectives sets the per-call objective bound.
func WithMaxObjectives(n int) Option {
	return func(o *Options) {
		o.MaxObjectives = n
	}
}

// WithLogger routes planner debug output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the planner defaults.
func DefaultOptions() Options {
	return Options{
		MaxObjectives: DefaultMaxObjectives,
		Logger:        slog.New(slog.DiscardHandler),
	}
}
