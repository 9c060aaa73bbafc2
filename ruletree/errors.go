package ruletree

import "errors"

// ErrEmptyChildren is not returned by any constructor in this package: a
// node with zero children is legal and its Step returns false at once.
// The sentinel is available to call sites that choose to reject an empty
// child list explicitly (the dsl package uses its own ErrEmptyBundle for
// a bundle that parses to nothing).
var ErrEmptyChildren = errors.New("ruletree: node requires at least one child")
