package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)
