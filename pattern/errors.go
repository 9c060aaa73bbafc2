package pattern

import "errors"

// Sentinel errors for pattern construction.
var (
	// ErrZeroSize indicates a find/replace array with zero width or height.
	ErrZeroSize = errors.New("pattern: find and replace must be at least 1x1")
	// ErrShapeMismatch indicates find and replace have different dimensions.
	ErrShapeMismatch = errors.New("pattern: find and replace must share the same shape")
	// ErrRaggedRows indicates a 2D array whose rows differ in length.
	ErrRaggedRows = errors.New("pattern: all rows must have the same length")
)
