package ruletree

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/rng"
	"github.com/katalvlaran/markovgrid/rule"
)

// RuleNode is the Node leaf: one rewrite rule. Each Step enumerates
// matches fresh and applies at most one.
type RuleNode struct {
	Rule *rule.Rule
}

// NewRule wraps r as a leaf Node.
func NewRule(r *rule.Rule) *RuleNode {
	return &RuleNode{Rule: r}
}

// Step seeds any pending origin, enumerates r's matches against the
// resulting grid, and applies one uniformly at random, returning whether
// an application occurred.
func (n *RuleNode) Step(g *grid.Grid, rg rng.Source) bool {
	n.Rule.SeedOrigin(g)
	matches := n.Rule.Matches(g)
	return n.Rule.Apply(g, rg, matches)
}
