package ruletree

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/rng"
)

// SequenceNode steps the child at cursor. While that child keeps firing,
// the node stays on it; once the child is exhausted, cursor advances.
// The node terminates once cursor passes the last child — cursor never
// decreases and reaches len(Children) exactly once per run.
type SequenceNode struct {
	Children []Node
	cursor   int
}

// NewSequence wraps children as a Sequence node, starting at cursor 0.
func NewSequence(children ...Node) *SequenceNode {
	return &SequenceNode{Children: children}
}

// Step advances through Children in order, never revisiting an exhausted
// child.
func (n *SequenceNode) Step(g *grid.Grid, rg rng.Source) bool {
	if n.cursor >= len(n.Children) {
		return false
	}
	if n.Children[n.cursor].Step(g, rg) {
		return true
	}
	n.cursor++
	return n.cursor < len(n.Children)
}

// Cursor reports the current child index, for tests that assert
// monotonicity.
func (n *SequenceNode) Cursor() int { return n.cursor }
