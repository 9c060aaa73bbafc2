// Package markovgrid is a generative rewrite engine over fixed-size
// character grids.
//
// 🔁 What is markovgrid?
//
//	A small, dependency-free core that composes local find/replace rules
//	into a rule tree and drives it one Step at a time:
//
//	  • grid/pattern/rule — the data model: a Grid of symbols, a rotatable
//	    find/replace Pattern, a Rule pairing a Pattern with a Symmetry.
//	  • match — enumerates every place a rule's rotations fit the grid.
//	  • ruletree — composes rules into Rule/One/All/Markov/Sequence/Steps
//	    nodes, each a resumable Step(grid, rng) bool.
//
// ✨ Why choose it?
//
//   - Deterministic  — same seed, same rule tree, same grid ⇒ same run.
//   - Pure core      — grid/pattern/rule/match/ruletree/rng/symmetry carry
//     no I/O, no logging, no third-party dependency.
//   - Composable     — dsl, palette, visualize and cmd/markovgrid sit on
//     top of the core as optional collaborators, never the reverse.
//
// Under the hood:
//
//	grid/ pattern/ symmetry/ rule/ match/ ruletree/ rng/  — the core
//	dsl/                                                   — text notation
//	palette/ visualize/                                    — rendering
//	cmd/markovgrid/                                        — CLI driver
//
// See DESIGN.md for how each package grounds in its source material.
package markovgrid
