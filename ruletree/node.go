package ruletree

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/rng"
)

// Node is one step of the rule-tree interpreter. Step performs at most one
// atomic unit of progress and reports whether it should be called again.
type Node interface {
	Step(g *grid.Grid, rg rng.Source) bool
}

// RunToExhaustion repeatedly steps root until it returns false, and
// reports how many productive steps occurred.
func RunToExhaustion(root Node, g *grid.Grid, rg rng.Source) int {
	steps := 0
	for root.Step(g, rg) {
		steps++
	}
	return steps
}
