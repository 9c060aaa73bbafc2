package palette

import "github.com/katalvlaran/markovgrid/grid"

// RGBA is a 4-byte color, red/green/blue/alpha.
type RGBA [4]byte

// Palette is a symbol-to-color lookup.
type Palette map[grid.Symbol]RGBA

// fallback is returned by Lookup for a symbol the palette has no entry
// for: opaque white, matching the original implementation's default arm.
var fallback = RGBA{0xFF, 0xFF, 0xFF, 0xFF}

// Standard returns the 16-symbol palette from the original markov
// implementation's standard_alphabet table.
func Standard() Palette {
	return Palette{
		'B': {0x00, 0x00, 0x00, 0xFF}, // Black
		'I': {0x4B, 0x00, 0x82, 0xFF}, // Indigo
		'P': {0x80, 0x00, 0x80, 0xFF}, // Purple
		'E': {0x50, 0xC8, 0x78, 0xFF}, // Emerald
		'N': {0xA5, 0x2A, 0x2A, 0xFF}, // browN
		'D': {0x55, 0x55, 0x55, 0xFF}, // Dead
		'A': {0x80, 0x80, 0x80, 0xFF}, // Alive
		'W': {0xFF, 0xFF, 0xFF, 0xFF}, // White
		'R': {0xFF, 0x00, 0x00, 0xFF}, // Red
		'O': {0xFF, 0xA5, 0x00, 0xFF}, // Orange
		'Y': {0xFF, 0xFF, 0x00, 0xFF}, // Yellow
		'G': {0x00, 0x80, 0x00, 0xFF}, // Green
		'U': {0x00, 0x00, 0xFF, 0xFF}, // blUe
		'S': {0x70, 0x80, 0x90, 0xFF}, // Slate
		'K': {0xFF, 0xC0, 0xCB, 0xFF}, // pinK
		'F': {0xE5, 0xAA, 0x70, 0xFF}, // Fawn
	}
}

// Extended returns the 26-symbol palette from the original lib.rs
// alphabet_color table, covering symbols Standard omits.
func Extended() Palette {
	p := Standard()
	for sym, rgb := range map[grid.Symbol][3]byte{
		'C': {0x00, 0xFF, 0xFF}, // Cyan
		'H': {0xE4, 0xBB, 0x40}, // Honey
		'J': {0x4B, 0x69, 0x2F}, // Jungle
		'L': {0x84, 0x7E, 0x87}, // Light
		'M': {0xFF, 0x00, 0xFF}, // Magenta
		'Q': {0x9B, 0xAD, 0xB7}, // aQua
		'T': {0x37, 0x94, 0x6E}, // Teal
		'V': {0x8F, 0x97, 0x4A}, // oliVe
		'X': {0xFF, 0x00, 0x00}, // X
		'Z': {0xFF, 0xFF, 0xFF}, // Z
	} {
		p[sym] = RGBA{rgb[0], rgb[1], rgb[2], 0xFF}
	}
	return p
}

// Lookup returns the color for sym, or opaque white if sym has no entry.
func (p Palette) Lookup(sym grid.Symbol) RGBA {
	if c, ok := p[sym]; ok {
		return c
	}
	return fallback
}
