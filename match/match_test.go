package match

import (
	"testing"

	"github.com/katalvlaran/markovgrid/grid"
	"github.com/katalvlaran/markovgrid/pattern"
	"github.com/katalvlaran/markovgrid/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatches_Soundness(t *testing.T) {
	g, err := grid.New(4, 4, "BW")
	require.NoError(t, err)
	require.True(t, g.Set(1, 1, 'W'))
	require.True(t, g.Set(2, 1, 'W'))

	p, err := pattern.New([][]grid.Symbol{{'W', 'W'}}, [][]grid.Symbol{{'B', 'B'}})
	require.NoError(t, err)

	matches := FindMatches(g, p, symmetry.Default())
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.True(t, g.Fits(m.Pos, m.Pattern), "every returned match must still fit immediately after FindMatches returns")
	}
}

func TestFindMatches_RotationDeduplication(t *testing.T) {
	// A uniform 2x2 find shape is identical under all four rotations
	// (same dims, same content), so CW/Mirror/CCW are all deduped
	// against the original and only None contributes matches: one per
	// valid top-left position in the 3x3 grid, not four times as many.
	g, err := grid.New(3, 3, "B")
	require.NoError(t, err)

	p, err := pattern.New([][]grid.Symbol{{'B', 'B'}, {'B', 'B'}}, [][]grid.Symbol{{'W', 'W'}, {'W', 'W'}})
	require.NoError(t, err)

	matches := FindMatches(g, p, symmetry.Default())
	assert.Len(t, matches, 4, "a 2x2 uniform pattern fits at 4 positions in a 3x3 grid, once each, not 16")
}

func TestFindMatches_DedupOnlyAgainstOriginal(t *testing.T) {
	// find = [[A,B],[B,A]] is Mirror-invariant (180-degree rotation
	// reproduces the same array) but NOT invariant under a single
	// quarter turn. Per spec.md's matcher, dedup only ever compares a
	// rotated find against the ORIGINAL pattern's find — never against
	// another rotation — so CW and CCW (which both produce
	// [[B,A],[A,B]] here) are kept as separate matches at the same
	// position, while Mirror alone is suppressed.
	//
	// Grid (4x2):  A B B A
	//              B A A B
	g, err := grid.New(4, 2, "AB")
	require.NoError(t, err)
	require.True(t, g.Set(1, 0, 'B'))
	require.True(t, g.Set(2, 0, 'B'))
	require.True(t, g.Set(0, 1, 'B'))
	require.True(t, g.Set(3, 1, 'B'))

	p, err := pattern.New([][]grid.Symbol{{'A', 'B'}, {'B', 'A'}}, [][]grid.Symbol{{'A', 'B'}, {'B', 'A'}})
	require.NoError(t, err)

	matches := FindMatches(g, p, symmetry.Default())
	// None fits at (0,0); CW and CCW each fit at (2,0); nothing fits at
	// (1,0). Mirror is deduped against the original and contributes nothing.
	assert.Len(t, matches, 3)
}

func TestFindMatches_Completeness(t *testing.T) {
	g, err := grid.New(2, 2, "BW")
	require.NoError(t, err)
	require.True(t, g.Set(0, 0, 'W'))

	p, err := pattern.New([][]grid.Symbol{{'W'}}, [][]grid.Symbol{{'B'}})
	require.NoError(t, err)

	matches := FindMatches(g, p, symmetry.Default())
	require.Len(t, matches, 1)
	assert.Equal(t, grid.Pos{X: 0, Y: 0}, matches[0].Pos)
}

func TestFindMatches_AsymmetricReplace(t *testing.T) {
	// find is symmetric under Mirror (a single row reversed equals
	// itself is not generally true, but here we construct a palindromic
	// find so the Mirror rotation is find-identical while replace
	// differs). The matcher dedups on find equality only: the second
	// (Mirror) placement is suppressed even though its replace differs.
	g, err := grid.New(3, 1, "B")
	require.NoError(t, err)

	p, err := pattern.New([][]grid.Symbol{{'B', 'B', 'B'}}, [][]grid.Symbol{{'W', '*', 'Y'}})
	require.NoError(t, err)

	sym, err := symmetry.FromAxes(symmetry.AxisX)
	require.NoError(t, err)

	matches := FindMatches(g, p, sym)
	require.Len(t, matches, 1, "Mirror's find is identical to None's find for a uniform row, so it is deduped even though replace differs")
}

func TestFindMatches_NoMatchOnEmptyGrid(t *testing.T) {
	g, err := grid.New(1, 1, "B")
	require.NoError(t, err)
	p, err := pattern.New([][]grid.Symbol{{'W'}}, [][]grid.Symbol{{'B'}})
	require.NoError(t, err)
	assert.Empty(t, FindMatches(g, p, symmetry.Default()))
}

func TestFindMatchesNear_EmptyDirtyYieldsNoMatches(t *testing.T) {
	g, err := grid.New(3, 3, "B")
	require.NoError(t, err)
	p, err := pattern.New([][]grid.Symbol{{'B'}}, [][]grid.Symbol{{'W'}})
	require.NoError(t, err)
	assert.Empty(t, FindMatchesNear(g, p, symmetry.Default(), nil))
}

func TestFindMatchesNear_RestrictsToDirtyNeighborhood(t *testing.T) {
	g, err := grid.New(5, 5, "B")
	require.NoError(t, err)

	p, err := pattern.New([][]grid.Symbol{{'B'}}, [][]grid.Symbol{{'W'}})
	require.NoError(t, err)

	near := FindMatchesNear(g, p, symmetry.Default(), []grid.Pos{{X: 2, Y: 2}})
	require.Len(t, near, 1, "a 1x1 pattern's only reach is its own dirty cell")
	assert.Equal(t, grid.Pos{X: 2, Y: 2}, near[0].Pos)

	full := FindMatches(g, p, symmetry.Default())
	assert.Len(t, full, 25, "the full scan still finds every cell, unlike the restricted one")
}
