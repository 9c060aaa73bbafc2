package dsl

import "errors"

// ErrMalformedRule is returned when a rule clause cannot be split into
// find/replace rows: missing ">", an empty find/replace, or an empty row.
// Shape errors from pattern.New (ragged rows, find/replace shapes that
// differ) are returned unchanged as the pattern package's sentinels.
var ErrMalformedRule = errors.New("dsl: malformed rule clause")

// ErrUnknownSymmetryLetter is returned when a symmetry prefix names a
// letter other than X, Y or Z.
var ErrUnknownSymmetryLetter = errors.New("dsl: unknown symmetry letter")

// ErrEmptyBundle is returned when a comma-separated rule list parses to
// zero rules.
var ErrEmptyBundle = errors.New("dsl: rule bundle is empty")
