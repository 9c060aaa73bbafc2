package pattern

// Symbol is a single alphabet character, or the reserved Wildcard.
type Symbol = byte

// Wildcard matches any symbol in a find cell and leaves the target cell
// untouched in a replace cell. It is never a valid alphabet member.
const Wildcard Symbol = '*'

// Pattern pairs a find shape with a replace shape of identical dimensions,
// carrying the orientation its stored arrays currently reflect.
type Pattern struct {
	width, height int
	find          []Symbol
	replace       []Symbol
	current       Rotation
}

// New builds a Pattern from two equal-shaped, non-empty 2D symbol arrays.
// Both arrays are copied; the returned Pattern starts at orientation None.
func New(find, replace [][]Symbol) (*Pattern, error) {
	h := len(find)
	if h == 0 || len(find[0]) == 0 {
		return nil, ErrZeroSize
	}
	w := len(find[0])
	flatFind, err := flatten(find, w, h)
	if err != nil {
		return nil, err
	}
	if len(replace) != h || (h > 0 && len(replace[0]) != w) {
		return nil, ErrShapeMismatch
	}
	flatReplace, err := flatten(replace, w, h)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		width:   w,
		height:  h,
		find:    flatFind,
		replace: flatReplace,
		current: None,
	}, nil
}

func flatten(rows [][]Symbol, w, h int) ([]Symbol, error) {
	out := make([]Symbol, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedRows
		}
		copy(out[y*w:(y+1)*w], row)
	}
	return out, nil
}

// Width reports the pattern's current width (post-rotation).
func (p *Pattern) Width() int { return p.width }

// Height reports the pattern's current height (post-rotation).
func (p *Pattern) Height() int { return p.height }

// Current reports the orientation the stored arrays presently reflect.
func (p *Pattern) Current() Rotation { return p.current }

// FindAt returns the find-cell symbol at local coordinates (x, y).
func (p *Pattern) FindAt(x, y int) Symbol { return p.find[y*p.width+x] }

// ReplaceAt returns the replace-cell symbol at local coordinates (x, y).
func (p *Pattern) ReplaceAt(x, y int) Symbol { return p.replace[y*p.width+x] }

// Clone returns an independent copy of p at its current orientation.
func (p *Pattern) Clone() *Pattern {
	find := make([]Symbol, len(p.find))
	replace := make([]Symbol, len(p.replace))
	copy(find, p.find)
	copy(replace, p.replace)
	return &Pattern{width: p.width, height: p.height, find: find, replace: replace, current: p.current}
}

// Rotate returns a new Pattern whose stored arrays reflect the requested
// absolute orientation. The receiver is left unchanged: rotation never
// mutates a shared Pattern value. Rotating to the orientation the pattern
// already holds is a no-op delta (idempotence).
func (p *Pattern) Rotate(requested Rotation) *Pattern {
	delta := deltaTable[p.current][requested]
	find, w, h := rotateCells(p.find, p.width, p.height, delta)
	replace, _, _ := rotateCells(p.replace, p.width, p.height, delta)
	return &Pattern{width: w, height: h, find: find, replace: replace, current: requested}
}

// FindEqual reports whether p and other have identical shape and find
// contents, ignoring replace contents and current orientation. This is the
// equality the matcher uses to dedupe placements that are symmetric under
// a given rotation (spec note: duplicate placements may still differ in
// replace under a rotation that fixes find; FindEqual intentionally does
// not look at replace).
func (p *Pattern) FindEqual(other *Pattern) bool {
	if p.width != other.width || p.height != other.height {
		return false
	}
	for i := range p.find {
		if p.find[i] != other.find[i] {
			return false
		}
	}
	return true
}

// ArraysEqual reports whether p and other have identical shape and
// identical find AND replace contents, regardless of current orientation.
// Used by rotation property tests; not used by the matcher (see FindEqual).
func (p *Pattern) ArraysEqual(other *Pattern) bool {
	if !p.FindEqual(other) {
		return false
	}
	for i := range p.replace {
		if p.replace[i] != other.replace[i] {
			return false
		}
	}
	return true
}
