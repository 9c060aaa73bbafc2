package pattern

// Rotation is one of the four orientations a Pattern's stored arrays may
// be viewed under. The four values form the rotation group of the square
// (quarter turns only, no reflections; Mirror is the 180-degree turn).
type Rotation int

const (
	// None is the identity orientation: the pattern as originally given.
	None Rotation = iota
	// CW is a 90-degree turn.
	CW
	// Mirror is a 180-degree turn.
	Mirror
	// CCW is a 270-degree turn (90 the other way).
	CCW
)

// String renders the rotation name for logging and test failure messages.
func (r Rotation) String() string {
	switch r {
	case None:
		return "None"
	case CW:
		return "CW"
	case Mirror:
		return "Mirror"
	case CCW:
		return "CCW"
	default:
		return "Rotation(?)"
	}
}

// deltaTable[current][requested] names the delta rotation to apply to a
// pattern's stored arrays in order to move it from current to requested.
// Each row/column is indexed by Rotation's own ordering (None, CW, Mirror, CCW).
var deltaTable = [4][4]Rotation{
	{None, CW, Mirror, CCW},
	{CCW, None, CW, Mirror},
	{Mirror, CCW, None, CW},
	{CW, Mirror, CCW, None},
}

// rotateCells applies delta to a row-major w x h array and returns the
// resulting array along with its (possibly swapped) dimensions. CW and CCW
// swap width and height; Mirror and None preserve them.
func rotateCells(cells []Symbol, w, h int, delta Rotation) ([]Symbol, int, int) {
	switch delta {
	case None:
		out := make([]Symbol, len(cells))
		copy(out, cells)
		return out, w, h
	case CW:
		newW, newH := h, w
		out := make([]Symbol, w*h)
		for ny := 0; ny < newH; ny++ {
			for nx := 0; nx < newW; nx++ {
				out[ny*newW+nx] = cells[(h-1-nx)*w+ny]
			}
		}
		return out, newW, newH
	case CCW:
		newW, newH := h, w
		out := make([]Symbol, w*h)
		for ny := 0; ny < newH; ny++ {
			for nx := 0; nx < newW; nx++ {
				out[ny*newW+nx] = cells[nx*w+(w-1-ny)]
			}
		}
		return out, newW, newH
	case Mirror:
		out := make([]Symbol, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out[y*w+x] = cells[(h-1-y)*w+(w-1-x)]
			}
		}
		return out, w, h
	default:
		out := make([]Symbol, len(cells))
		copy(out, cells)
		return out, w, h
	}
}
