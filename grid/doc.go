// Package grid provides the 2D symbol-array abstraction that rewrite
// rules are matched against and written into.
//
// Grid owns a fixed-size, alphabet-backed array of symbols. Its two
// primitive operations, Fits and Write, tolerate out-of-bounds positions
// by returning false or becoming partial no-ops rather than panicking or
// erroring: a rule whose pattern is larger than the grid, or whose
// placement runs off an edge, simply yields no match. Construction
// (New, NewAlphabet) is the only place invalid input is rejected.
package grid
