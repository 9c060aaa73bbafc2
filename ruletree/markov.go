package ruletree

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/rng"
)

// MarkovNode tries its children in declaration order each step and
// delegates to the first one whose Step fires, yielding priority
// rewriting: later children are only ever visited when every earlier
// child currently has nothing to do.
type MarkovNode struct {
	Children []Node
}

// NewMarkov wraps children as a Markov node.
func NewMarkov(children ...Node) *MarkovNode {
	return &MarkovNode{Children: children}
}

// Step is deterministic in which child it attempts first; only that
// child's own Step may consume randomness.
func (n *MarkovNode) Step(g *grid.Grid, rg rng.Source) bool {
	for _, c := range n.Children {
		if c.Step(g, rg) {
			return true
		}
	}
	return false
}
