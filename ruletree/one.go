package ruletree

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/match"
	"github.com/katalvlaran/markovgrid/rng"
	"github.com/katalvlaran/markovgrid/rule"
)

// OneNode gathers matches across every child rule's rotated placements in
// a single step and applies one, chosen uniformly over the flattened
// (child, rotation, position) set — so a child with more matches is
// proportionally more likely to be picked, not each child equally likely.
type OneNode struct {
	Children []*rule.Rule
}

// NewOne wraps children as a One node.
func NewOne(children ...*rule.Rule) *OneNode {
	return &OneNode{Children: children}
}

type oneCandidate struct {
	childIdx int
	match    match.Match
}

// Step seeds any pending origins, gathers every child's matches, and
// applies one candidate picked uniformly at random from the flattened
// set. Returns false once no child has any match.
func (n *OneNode) Step(g *grid.Grid, rg rng.Source) bool {
	var flat []oneCandidate
	for idx, r := range n.Children {
		r.SeedOrigin(g)
		for _, m := range r.Matches(g) {
			flat = append(flat, oneCandidate{childIdx: idx, match: m})
		}
	}
	if len(flat) == 0 {
		return false
	}
	i := rg.Intn(len(flat))
	chosen := flat[i]
	if !g.Fits(chosen.match.Pos, chosen.match.Pattern) {
		return false
	}
	g.Write(chosen.match.Pos, chosen.match.Pattern)
	return true
}
