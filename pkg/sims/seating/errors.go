package seating

import "errors"

var (
	// ErrEmptyLayout indicates the input held no rows.
	ErrEmptyLayout = errors.New("seating: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("seating: all rows must have the same length")
	// ErrInvalidCell indicates a character other than 'L' or '.'.
	ErrInvalidCell = errors.New("seating: unrecognized cell character")
	// ErrThreshold indicates an occupancy threshold outside 1..8.
	ErrThreshold = errors.New("seating: threshold must be between 1 and 8")
	// ErrUnknownPolicy indicates an unrecognized neighbor policy name.
	ErrUnknownPolicy = errors.New("seating: unknown neighbor policy")
	// ErrUnknownEngine indicates an unrecognized engine name.
	ErrUnknownEngine = errors.New("seating: unknown engine")
)
