package maze

import "errors"

var (
	// ErrInvalidMaze is wrapped by every grid validation error.
	ErrInvalidMaze = errors.New("maze: invalid maze")
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownTag indicates a cell outside the O/D/S/X vocabulary.
	ErrUnknownTag = errors.New("maze: unknown cell tag")
	// ErrMissingEndpoint indicates the grid has no Source or no Destination.
	ErrMissingEndpoint = errors.New("maze: missing source or destination")
	// ErrDuplicateEndpoint indicates more than one Source or Destination.
	ErrDuplicateEndpoint = errors.New("maze: duplicate source or destination")
)
