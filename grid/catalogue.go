package grid

import (
	"fmt"

	"golang.org/x/exp/maps"
)

// Catalogue holds predefined grid descriptions keyed by the product
// definition block's grid_catalogue number, consulted when a message
// has no grid description section of its own.
type Catalogue struct {
	latLon      map[int]*LatLonGrid
	polarStereo map[int]*PolarStereoGrid
}

// NewCatalogue builds a Catalogue from the two predefined tables: grid
// numbers that resolve to a lat/lon grid, and grid numbers that resolve
// to a polar stereographic grid. A grid number may not appear in both.
func NewCatalogue(latLon map[int]*LatLonGrid, polarStereo map[int]*PolarStereoGrid) *Catalogue {
	return &Catalogue{latLon: latLon, polarStereo: polarStereo}
}

// Lookup resolves a predefined grid number to a fully populated
// Description. Returns ErrUnknownPredefinedGrid, naming the known
// catalogue numbers, when gridNumber matches neither table.
func (c *Catalogue) Lookup(gridNumber int) (*Description, error) {
	if g, ok := c.latLon[gridNumber]; ok {
		return &Description{Representation: RepresentationLatLon, LatLon: g}, nil
	}
	if g, ok := c.polarStereo[gridNumber]; ok {
		return &Description{Representation: RepresentationPolarStereographic, PolarStereo: g}, nil
	}
	return nil, fmt.Errorf("%w: %d (known: lat/lon %v, polar stereo %v)",
		ErrUnknownPredefinedGrid, gridNumber, maps.Keys(c.latLon), maps.Keys(c.polarStereo))
}
