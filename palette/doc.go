// Package palette maps alphabet symbols to RGBA colors for rendering.
//
// What: a fixed symbol-to-color lookup table, independent of grid/pattern/
// ruletree — visualize consumes it, but nothing in the core depends on it.
//
// Why: reproduces the standard symbol palette the original implementation
// shipped (its markov.rs standard_alphabet / lib.rs alphabet_color
// tables), so rule sources authored against that palette render with the
// same colors here.
package palette
