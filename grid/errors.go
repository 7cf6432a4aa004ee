package grid

import "errors"

// ErrUnknownRepresentation is returned when a grid description's
// representation byte does not match any of the five supported layouts.
var ErrUnknownRepresentation = errors.New("grid: unknown representation code")

// ErrUnsupportedGridFeature is returned for a recognized but unsupported
// combination: a bipolar Lambert conformal grid. Normalise handles every
// scan-mode combination and never returns it.
var ErrUnsupportedGridFeature = errors.New("grid: unsupported grid feature")

// ErrUnknownPredefinedGrid is returned when a predefined-grid catalogue
// number matches neither the lat/lon nor the polar stereographic table.
var ErrUnknownPredefinedGrid = errors.New("grid: unknown predefined grid catalogue number")
