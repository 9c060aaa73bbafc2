package ruletree

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/rng"
	"github.com/katalvlaran/markovgrid/rule"
)

// ScatterNode is an additive leaf beyond spec.md's Node variant list,
// supplemented from the original implementation's ReplaceRateRule: it
// enumerates a rule's matches once and applies every one of them
// independently at a fixed probability, rather than draining the list one
// pick at a time like Rule or All. It never issues waves: one Step is one
// enumeration-and-scatter pass.
type ScatterNode struct {
	Rule *rule.Rule
	Rate float64
}

// NewScatter wraps r as a ScatterNode applying each match independently
// with probability rate (0 <= rate <= 1).
func NewScatter(r *rule.Rule, rate float64) *ScatterNode {
	return &ScatterNode{Rule: r, Rate: rate}
}

// Step seeds any pending origin, finds all current matches, and applies
// each independently with probability Rate, re-checking Fits before each
// write since an earlier write in the same pass may invalidate a later
// one. Returns whether any write occurred.
func (n *ScatterNode) Step(g *grid.Grid, rg rng.Source) bool {
	n.Rule.SeedOrigin(g)
	matches := n.Rule.Matches(g)
	fired := false
	for _, m := range matches {
		if rg.Float64() >= n.Rate {
			continue
		}
		if !g.Fits(m.Pos, m.Pattern) {
			continue
		}
		g.Write(m.Pos, m.Pattern)
		fired = true
	}
	return fired
}
