package ruletree

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/rng"
)

// StepsNode caps how many consecutive productive steps its child may
// perform before deferring to its parent. The child's failure resets the
// budget (so an enclosing Sequence or Markov can re-enter this node
// later), matching spec.md's majority reset-on-failure semantics.
type StepsNode struct {
	Child     Node
	budget    int
	remaining int
}

// NewSteps wraps child in a budget-of-budget StepsNode.
func NewSteps(budget int, child Node) *StepsNode {
	return &StepsNode{Child: child, budget: budget, remaining: budget}
}

// Step calls Child.Step at most budget consecutive times returning true
// before itself returning false. A false from the child, or the budget
// being exhausted, both reset remaining to budget.
func (n *StepsNode) Step(g *grid.Grid, rg rng.Source) bool {
	if n.remaining == 0 {
		n.remaining = n.budget
		return false
	}
	if n.Child.Step(g, rg) {
		n.remaining--
		return true
	}
	n.remaining = n.budget
	return false
}

// Remaining reports the budget left this wave, for tests.
func (n *StepsNode) Remaining() int { return n.remaining }
