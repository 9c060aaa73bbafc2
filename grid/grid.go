package grid

import "github.com/katalvlaran/markovgrid/pattern"

// Pos is a grid coordinate. X is the column, Y is the row.
type Pos struct {
	X, Y int
}

// Grid is a fixed-size rectangular array of alphabet symbols.
// Dimensions are fixed for the grid's lifetime. New fills every cell with
// the alphabet's default symbol; Set, Write and SetOrigin store the symbol
// they are given without checking it against the alphabet (Set also
// stores the wildcard if given it; Write never writes it).
type Grid struct {
	width, height int
	alphabet      *Alphabet
	cells         []Symbol
}

// New constructs a width x height grid over the given alphabet string,
// filled with the alphabet's first (default) symbol.
func New(width, height int, alphabetStr string) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	alphabet, err := NewAlphabet(alphabetStr)
	if err != nil {
		return nil, err
	}
	cells := make([]Symbol, width*height)
	fill := alphabet.Default()
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{width: width, height: height, alphabet: alphabet, cells: cells}, nil
}

// Width reports the grid's fixed width.
func (g *Grid) Width() int { return g.width }

// Height reports the grid's fixed height.
func (g *Grid) Height() int { return g.height }

// Alphabet returns the grid's alphabet.
func (g *Grid) Alphabet() *Alphabet { return g.alphabet }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

// Get returns the symbol at (x, y), and false if out of bounds.
func (g *Grid) Get(x, y int) (Symbol, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[g.index(x, y)], true
}

// Set writes sym at (x, y) and reports whether the position was in
// bounds; out-of-bounds writes are silent no-ops.
func (g *Grid) Set(x, y int, sym Symbol) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = sym
	return true
}

// SetOrigin stamps sym at the grid's center cell (W/2, H/2), integer
// division.
func (g *Grid) SetOrigin(sym Symbol) {
	g.Set(g.width/2, g.height/2, sym)
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, sym Symbol)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[g.index(x, y)])
		}
	}
}

// Fits reports whether p's find shape matches the grid at pos. Every find
// cell's target position must lie inside the grid; a '*' find cell always
// matches (but still requires its position be in bounds), and any other
// find cell must equal the grid's symbol there.
func (g *Grid) Fits(pos Pos, p *pattern.Pattern) bool {
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			gx, gy := pos.X+x, pos.Y+y
			if !g.InBounds(gx, gy) {
				return false
			}
			find := p.FindAt(x, y)
			if find == Wildcard {
				continue
			}
			if v, _ := g.Get(gx, gy); v != find {
				return false
			}
		}
	}
	return true
}

// Write applies p's replace shape at pos. A '*' replace cell leaves the
// target cell untouched; every other cell overwrites it. Cells that fall
// outside the grid are silently skipped (partial no-op at the edge).
func (g *Grid) Write(pos Pos, p *pattern.Pattern) {
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			r := p.ReplaceAt(x, y)
			if r == Wildcard {
				continue
			}
			g.Set(pos.X+x, pos.Y+y, r)
		}
	}
}
