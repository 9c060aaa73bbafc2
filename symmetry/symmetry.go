package symmetry

import "github.com/katalvlaran/markovgrid/pattern"

// Axis names one of the directions a rule's symmetry set may include.
type Axis int

const (
	// AxisX selects the {None, Mirror} rotation pair.
	AxisX Axis = iota
	// AxisY selects the {CW, CCW} rotation pair.
	AxisY
	// AxisZ is reserved for 3D grids and is always rejected by FromAxes.
	AxisZ
)

// Symmetry selects which rotations a matcher enumerates a rule's pattern
// under. The zero value is NOT valid; use Default() or FromAxes.
type Symmetry struct {
	isDefault bool
	axes      map[Axis]bool
}

// Default selects all four rotations (None, CW, Mirror, CCW). It is the
// symmetry a rule gets when no explicit axis set is given.
func Default() Symmetry {
	return Symmetry{isDefault: true}
}

// FromAxes builds an explicit axis set. An empty set of axes is valid and
// means {None} only. AxisZ is rejected with ErrUnsupportedAxis.
func FromAxes(axes ...Axis) (Symmetry, error) {
	set := make(map[Axis]bool, len(axes))
	for _, a := range axes {
		if a == AxisZ {
			return Symmetry{}, ErrUnsupportedAxis
		}
		set[a] = true
	}
	return Symmetry{axes: set}, nil
}

// IsDefault reports whether s is the Default (all-four-rotations) symmetry.
func (s Symmetry) IsDefault() bool { return s.isDefault }

// Rotations expands s into the concrete rotation list the matcher should
// enumerate, in the order spec.md's matcher requires: for Default, all
// four; otherwise X's pair first (if present), then Y's pair, falling
// back to {None} if neither axis was set.
func (s Symmetry) Rotations() []pattern.Rotation {
	if s.isDefault {
		return []pattern.Rotation{pattern.None, pattern.CW, pattern.Mirror, pattern.CCW}
	}
	var out []pattern.Rotation
	if s.axes[AxisX] {
		out = append(out, pattern.None, pattern.Mirror)
	}
	if s.axes[AxisY] {
		out = append(out, pattern.CW, pattern.CCW)
	}
	if len(out) == 0 {
		out = []pattern.Rotation{pattern.None}
	}
	return out
}
