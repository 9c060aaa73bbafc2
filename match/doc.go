// Package match enumerates grid positions and rotations where a pattern's
// find shape fits, under a rule's chosen symmetry set.
//
// FindMatches is a pure function: it never mutates the grid or the
// pattern passed to it, and every Match it returns owns its own rotated
// Pattern value. Order is row-major by position (outer y, inner x), with
// rotations tried inner-most in the order Symmetry.Rotations() lists
// them. Rotations whose find shape is identical to the original pattern's
// find shape are skipped at non-identity orientations. Rotations are not
// compared with each other: two non-identity rotations whose find shapes
// equal one another (but not the original) are both reported.
package match
