// Package symmetry selects which pattern rotations a rule is enumerated
// under. It replaces the source bitmask (DEFAULT | X | Y | Z) with an
// explicit variant: Default, which expands to all four rotations, or an
// Axes set built from AxisX/AxisY. AxisZ is accepted by the constructor
// only to be rejected immediately with ErrUnsupportedAxis — it names a
// reserved 3D symmetry bit that has no grid to act on yet.
package symmetry
