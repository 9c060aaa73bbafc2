// Package pattern defines the (find, replace) rewrite-rule shape and the
// four-element rotation group (None, CW, Mirror, CCW) it can be viewed
// under.
//
// A Pattern is a value type: Rotate never mutates the receiver, it returns
// a freshly rotated Pattern with its own Current() orientation. This keeps
// find_matches a pure function over (grid, pattern, rotation) and avoids
// the aliasing hazards of storing rotation state inside a shared pattern.
//
// Rotation composition is table-driven: the delta applied to the stored
// arrays is a function of (current, requested), not of requested alone,
// so re-rotating an already-rotated pattern to the same target orientation
// is a no-op (rotation idempotence).
package pattern
