package symmetry

import "errors"

// ErrUnsupportedAxis is returned when AxisZ is requested. The Z axis is
// reserved for 3D grids, which this module does not implement.
var ErrUnsupportedAxis = errors.New("symmetry: axis Z is reserved for unimplemented 3D grids")
