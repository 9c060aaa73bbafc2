package grid

import (
	"strings"

	"github.com/katalvlaran/markovgrid/pattern"
)

// Symbol is a single alphabet character, or the reserved Wildcard.
type Symbol = pattern.Symbol

// Wildcard is never a normal alphabet member: in a find cell it matches
// anything, in a replace cell it preserves the target.
const Wildcard = pattern.Wildcard

// Alphabet is a short ordered set of uppercase single-character symbols.
// The first symbol is the default fill value for a newly created Grid.
type Alphabet struct {
	symbols []Symbol
}

// NewAlphabet uppercases s and validates it as a non-empty set of symbols
// not containing the reserved wildcard.
func NewAlphabet(s string) (*Alphabet, error) {
	upper := strings.ToUpper(s)
	if len(upper) == 0 {
		return nil, ErrEmptyAlphabet
	}
	symbols := make([]Symbol, 0, len(upper))
	for i := 0; i < len(upper); i++ {
		sym := upper[i]
		if sym == Wildcard {
			return nil, ErrWildcardInAlphabet
		}
		symbols = append(symbols, sym)
	}
	return &Alphabet{symbols: symbols}, nil
}

// Default returns the alphabet's first symbol, used to fill a new Grid.
func (a *Alphabet) Default() Symbol { return a.symbols[0] }

// Contains reports whether sym is a member of the alphabet. The wildcard
// is never a member.
func (a *Alphabet) Contains(sym Symbol) bool {
	for _, s := range a.symbols {
		if s == sym {
			return true
		}
	}
	return false
}

// Symbols returns a copy of the alphabet's ordered symbol list.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String renders the alphabet as its uppercase symbol string.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
