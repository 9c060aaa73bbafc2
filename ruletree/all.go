package ruletree

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/rng"
	"github.com/katalvlaran/markovgrid/rule"
)

// AllNode applies every currently matching placement of every child rule,
// in child order, in one wave, independently randomized within each
// child, and repeats waves until a wave produces zero applications.
// cursor and count are explicit resumable state, surviving across Step
// calls.
type AllNode struct {
	Children []*rule.Rule
	cursor   int
	count    int
}

// NewAll wraps children as an All node, starting at cursor 0.
func NewAll(children ...*rule.Rule) *AllNode {
	return &AllNode{Children: children}
}

// Step processes the child at the current cursor: seeds its origin if
// pending, gathers its matches, drains them (re-validating each with Fits
// before writing), then advances the cursor. When the cursor wraps past
// the last child, the wave is judged by whether any application occurred
// in it: a fired wave resets cursor and count and asks to be called
// again; a dry wave (nothing applied) terminates the node.
func (n *AllNode) Step(g *grid.Grid, rg rng.Source) bool {
	if len(n.Children) == 0 {
		return false
	}
	r := n.Children[n.cursor]
	r.SeedOrigin(g)
	matches := r.Matches(g)
	if len(matches) > 0 {
		n.count += len(matches)
		for len(matches) > 0 {
			i := rg.Intn(len(matches))
			m := matches[i]
			matches = append(matches[:i], matches[i+1:]...)
			if g.Fits(m.Pos, m.Pattern) {
				g.Write(m.Pos, m.Pattern)
			}
		}
	}
	n.cursor++
	if n.cursor == len(n.Children) {
		fired := n.count > 0
		n.cursor, n.count = 0, 0
		return fired
	}
	return true
}
