package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandard_KnownSymbol(t *testing.T) {
	p := Standard()
	assert.Equal(t, RGBA{0xFF, 0x00, 0x00, 0xFF}, p.Lookup('R'))
}

func TestStandard_UnknownSymbolFallsBackToWhite(t *testing.T) {
	p := Standard()
	assert.Equal(t, RGBA{0xFF, 0xFF, 0xFF, 0xFF}, p.Lookup('Q'))
}

func TestExtended_SupersetsStandard(t *testing.T) {
	std := Standard()
	ext := Extended()
	for sym, rgba := range std {
		assert.Equal(t, rgba, ext[sym])
	}
	assert.Contains(t, ext, byte('C'))
}
