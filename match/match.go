package match

import (
	"sort"

	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/pattern"
	"github.com/katalvlaran/markovgrid/symmetry"
)

// Match is one discovered application site: an already-rotated pattern
// together with the top-left position it fits at. A Match is transient —
// owned by the search that produced it and consumed by the next apply
// step.
type Match struct {
	Pattern *pattern.Pattern
	Pos     grid.Pos
}

// FindMatches enumerates every (position, rotation) pair under which p's
// find shape fits g, for the rotations sym selects. Duplicate placements
// under rotations that leave the find shape unchanged are suppressed: a
// rotation r != None whose rotated find equals p's original find is
// skipped entirely, even though its replace shape may differ (see
// SPEC_FULL.md's Open Questions: dedup intentionally compares find only).
func FindMatches(g *grid.Grid, p *pattern.Pattern, sym symmetry.Symmetry) []Match {
	rotations := sym.Rotations()
	var out []Match
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			for _, r := range rotations {
				rotated := p.Rotate(r)
				if r != pattern.None && rotated.FindEqual(p) {
					continue
				}
				pos := grid.Pos{X: x, Y: y}
				if g.Fits(pos, rotated) {
					out = append(out, Match{Pattern: rotated, Pos: pos})
				}
			}
		}
	}
	return out
}

// FindMatchesNear restricts the scan in FindMatches to positions within
// reach of the given dirty cells, an optional fast path for callers that
// track which cells changed since the last search; no ruletree node calls
// it. It returns exactly the subset of FindMatches' result whose top-left
// position lies within max(width, height)-1 cells of some dirty cell on
// both axes, in the same order; FindMatches itself is never
// short-circuited and remains the authoritative full scan.
func FindMatchesNear(g *grid.Grid, p *pattern.Pattern, sym symmetry.Symmetry, dirty []grid.Pos) []Match {
	if len(dirty) == 0 {
		return nil
	}
	reach := p.Width()
	if p.Height() > reach {
		reach = p.Height()
	}
	reach-- // a pattern of size 1 touches only its own cell
	if reach < 0 {
		reach = 0
	}

	seen := make(map[grid.Pos]bool)
	var positions []grid.Pos
	for _, d := range dirty {
		for dy := -reach; dy <= reach; dy++ {
			for dx := -reach; dx <= reach; dx++ {
				cand := grid.Pos{X: d.X + dx, Y: d.Y + dy}
				if g.InBounds(cand.X, cand.Y) && !seen[cand] {
					seen[cand] = true
					positions = append(positions, cand)
				}
			}
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})

	rotations := sym.Rotations()
	var out []Match
	for _, pos := range positions {
		for _, r := range rotations {
			rotated := p.Rotate(r)
			if r != pattern.None && rotated.FindEqual(p) {
				continue
			}
			if g.Fits(pos, rotated) {
				out = append(out, Match{Pattern: rotated, Pos: pos})
			}
		}
	}
	return out
}
