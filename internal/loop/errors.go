package loop

import "errors"

var (
	ErrInvalidBounds     = errors.New("invalid quantifier bounds")
	ErrBoundaryViolation = errors.New("string does not contain expected prefix")
	ErrNotCommitted      = errors.New("quantifier has no committed path")
	ErrAlreadyCommitted  = errors.New("quantifier path already committed")
)
