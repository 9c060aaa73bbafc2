package dsl

import (
	"testing"

	"github.com/katalvlaran/markovgrid/ruletree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule_Simple(t *testing.T) {
	r, err := ParseRule("AB>*C")
	require.NoError(t, err)
	assert.Nil(t, r.Origin)
	assert.True(t, r.Symmetry.IsDefault())
}

func TestParseRule_OriginAndSymmetry(t *testing.T) {
	r, err := ParseRule(`R:X;RBB>RBR`)
	require.NoError(t, err)
	require.NotNil(t, r.Origin)
	assert.Equal(t, byte('R'), *r.Origin)
	assert.False(t, r.Symmetry.IsDefault())
}

func TestParseRule_MultiRowIgnoresWhitespaceAndQuotes(t *testing.T) {
	r1, err := ParseRule(`"AB/CD" > "EF/GH"`)
	require.NoError(t, err)
	r2, err := ParseRule("AB/CD>EF/GH")
	require.NoError(t, err)
	assert.Equal(t, r2.Pattern.Width(), r1.Pattern.Width())
	assert.Equal(t, r2.Pattern.Height(), r1.Pattern.Height())
}

func TestParseRule_MissingArrow(t *testing.T) {
	_, err := ParseRule("ABCD")
	assert.ErrorIs(t, err, ErrMalformedRule)
}

func TestParseRule_UnknownSymmetryLetter(t *testing.T) {
	_, err := ParseRule("Q;A>B")
	assert.ErrorIs(t, err, ErrUnknownSymmetryLetter)
}

func TestParseBundle_OneByDefault(t *testing.T) {
	node, err := ParseBundle("A>B,B>C")
	require.NoError(t, err)
	_, ok := node.(*ruletree.OneNode)
	assert.True(t, ok)
}

func TestParseBundle_AllWhenBraced(t *testing.T) {
	node, err := ParseBundle("{A>B,B>C}")
	require.NoError(t, err)
	_, ok := node.(*ruletree.AllNode)
	assert.True(t, ok)
}

func TestParseBundle_Empty(t *testing.T) {
	_, err := ParseBundle("  ")
	assert.ErrorIs(t, err, ErrEmptyBundle)
}
