package rule

import (
	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/match"
	"github.com/katalvlaran/markovgrid/pattern"
	"github.com/katalvlaran/markovgrid/rng"
	"github.com/katalvlaran/markovgrid/symmetry"
)

// Symbol aliases the grid's symbol type for convenience.
type Symbol = grid.Symbol

// Rule is a pattern plus an optional one-shot center-seed symbol and a
// symmetry selector.
type Rule struct {
	Pattern  *pattern.Pattern
	Origin   *Symbol
	Symmetry symmetry.Symmetry
}

// New builds a Rule. origin may be nil to mean "no pending seed".
func New(p *pattern.Pattern, origin *Symbol, sym symmetry.Symmetry) *Rule {
	return &Rule{Pattern: p, Origin: origin, Symmetry: sym}
}

// Matches runs the matcher for this rule's pattern and symmetry against g.
func (r *Rule) Matches(g *grid.Grid) []match.Match {
	return match.FindMatches(g, r.Pattern, r.Symmetry)
}

// Apply seeds the origin if pending, then picks one match uniformly at
// random from matches, re-checks that it still fits (other writes may
// have invalidated it since matches was computed), and applies it.
// Returns whether a write occurred.
func (r *Rule) Apply(g *grid.Grid, rg rng.Source, matches []match.Match) bool {
	if r.Origin != nil {
		g.SetOrigin(*r.Origin)
		r.Origin = nil
	}
	if len(matches) == 0 {
		return false
	}
	i := rg.Intn(len(matches))
	m := matches[i]
	if !g.Fits(m.Pos, m.Pattern) {
		return false
	}
	g.Write(m.Pos, m.Pattern)
	return true
}

// SeedOrigin stamps the pending origin symbol at the grid center and
// clears it, if one is pending. Exposed so composite nodes (One, All) can
// seed a child's origin before enumerating its matches, per spec.md's
// "before the first enumeration over a rule whose origin is set" rule.
func (r *Rule) SeedOrigin(g *grid.Grid) {
	if r.Origin != nil {
		g.SetOrigin(*r.Origin)
		r.Origin = nil
	}
}
