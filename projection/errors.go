package projection

import "errors"

// ErrBipolarUnsupported is returned when a Lambert conformal grid sets
// its bipolar flag; this projection variant is not implemented.
var ErrBipolarUnsupported = errors.New("projection: bipolar lambert conformal grids are not supported")
