package charge

import "errors"

// Domain errors for distribution operations.
var (
	// ErrDuplicateLabel indicates an added particle's label is already in use.
	ErrDuplicateLabel = errors.New("charge: particle label already in use")

	// ErrLabelNotFound indicates a lookup for a label no particle carries.
	ErrLabelNotFound = errors.New("charge: particle label not found")
)
