// Package rng provides the seedable uniform generator that ruletree.Node
// implementations consume. It is an explicit parameter of Step rather than
// state owned by the grid, so a driver can replay a run deterministically
// by re-seeding.
package rng
