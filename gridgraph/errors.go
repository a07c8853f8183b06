package gridgraph

import "errors"

// Sentinel errors for gridgraph construction and lookups.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrGridTooLarge indicates dimensions whose cell count exceeds MaxCells.
	ErrGridTooLarge = errors.New("gridgraph: grid too large")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrDuplicateCell indicates the same coordinate was supplied more than once.
	ErrDuplicateCell = errors.New("gridgraph: duplicate cell")
	// ErrMissingCell indicates an in-bounds coordinate without a cell description.
	ErrMissingCell = errors.New("gridgraph: missing cell")
	// ErrUnknownTerrain indicates a terrain code outside the known classes.
	ErrUnknownTerrain = errors.New("gridgraph: unknown terrain")
	// ErrNegativeCost indicates a cost record below zero.
	ErrNegativeCost = errors.New("gridgraph: negative movement cost")
	// ErrInvalidCost indicates a NaN or infinite cost record.
	ErrInvalidCost = errors.New("gridgraph: movement cost must be finite")
	// ErrNilInput indicates a nil grid or cost table was passed to NewNetwork.
	ErrNilInput = errors.New("gridgraph: nil grid or cost table")
)
