package dijkstra

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrNilNetwork indicates that NewEngine received a nil network.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrMissingEdge indicates a consecutive path pair with no cost-table entry.
	ErrMissingEdge = errors.New("dijkstra: no cost entry for move")
)

// Options configures the behavior of the engine.
//
// FullDrain – process the whole frontier instead of stopping once the goal
// is settled. Results are identical; the option exists to verify that.
type Options struct {
	FullDrain bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithFullDrain disables early termination at the goal.
func WithFullDrain() Option {
	return func(o *Options) {
		o.FullDrain = true
	}
}

// DefaultOptions returns the engine defaults: early termination enabled.
func DefaultOptions() Options {
	return Options{FullDrain: false}
}
