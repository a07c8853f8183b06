package scenario

import "errors"

var (
	// ErrSyntax indicates malformed text input.
	ErrSyntax = errors.New("scenario: syntax error")

	// ErrNoOrigin indicates an objectives file without an origin pair.
	ErrNoOrigin = errors.New("scenario: missing origin")

	// ErrNotFound indicates an unknown scenario name.
	ErrNotFound = errors.New("scenario: not found")

	// ErrInvalidName indicates an empty scenario name.
	ErrInvalidName = errors.New("scenario: invalid name")

	// ErrIncomplete indicates a Scenario without a grid or cost table.
	ErrIncomplete = errors.New("scenario: grid and costs are required")
)
