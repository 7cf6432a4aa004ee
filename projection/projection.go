// Package projection builds a normalised MapProjection from a decoded
// grid description: the projection family and its parameters, the map
// definition (origin, reference longitude, extent), and the grid
// definition (point counts and spacing). A MapProjection is round-
// tripped through its own textual formatter immediately after
// construction, so that two independently decoded fields sharing the
// same underlying grid always compare bit-identical.
package projection

import "fmt"

// Kind identifies a projection family.
type Kind int

const (
	KindLatLon Kind = iota
	KindPolarStereographic
	KindLambertConformal
	KindRotatedLatLon
)

func (k Kind) String() string {
	switch k {
	case KindLatLon:
		return "latlon"
	case KindPolarStereographic:
		return "stereo"
	case KindLambertConformal:
		return "lambert"
	case KindRotatedLatLon:
		return "rotated"
	default:
		return "unknown"
	}
}

// MapDefinition fixes a projection plane to the earth: the origin in
// latitude/longitude, a reference longitude (meaningless for plain
// lat/lon), and the plane extent and origin offset in projection units.
type MapDefinition struct {
	OLat, OLon float64
	LRef       float64
	XLen, YLen float64
	XOrg, YOrg float64
	Units      string
}

// GridDefinition fixes the sampling of a MapDefinition's plane: point
// counts and spacing. GridLen is 0 whenever XGrid/YGrid hold
// independent spacings, which is always the case for GRIB Edition 0.
type GridDefinition struct {
	Nx, Ny       int
	XGrid, YGrid float64
	GridLen      float64
	Units        string
}

// RotationParams carries the rotated-pole parameters for
// KindRotatedLatLon; zero for every other Kind.
type RotationParams struct {
	LaP, LoP, AngR float64
}

// ConformalParams carries the true-latitude parameters for
// KindLambertConformal; zero for every other Kind.
type ConformalParams struct {
	Latin1, Latin2 float64
}

// MapProjection is a fully resolved projection: its family, the
// parameters specific to that family, a MapDefinition anchoring it to
// the earth, and a GridDefinition describing the sample grid.
type MapProjection struct {
	Kind         Kind
	Pole         string // "north" or "south"; "none" for families without one
	TrueLatitude float64
	Rotation     RotationParams
	Conformal    ConformalParams
	Map          MapDefinition
	Grid         GridDefinition
}

// Format renders p as the canonical textual form described by
// Parse. Two MapProjection values built from the same wire fields
// always format identically, which is the round-trip guarantee the
// builders in build.go rely on.
func (p *MapProjection) Format() string {
	return fmt.Sprintf(
		"kind=%s pole=%s truelat=%.6f rotation={%.6f %.6f %.6f} conformal={%.6f %.6f} "+
			"map={units=%s olat=%.6f olon=%.6f lref=%.6f xlen=%.6f ylen=%.6f xorg=%.6f yorg=%.6f} "+
			"grid={units=%s nx=%d ny=%d xgrid=%.6f ygrid=%.6f gridlen=%.6f}",
		p.Kind, p.Pole, p.TrueLatitude,
		p.Rotation.LaP, p.Rotation.LoP, p.Rotation.AngR,
		p.Conformal.Latin1, p.Conformal.Latin2,
		p.Map.Units, p.Map.OLat, p.Map.OLon, p.Map.LRef, p.Map.XLen, p.Map.YLen, p.Map.XOrg, p.Map.YOrg,
		p.Grid.Units, p.Grid.Nx, p.Grid.Ny, p.Grid.XGrid, p.Grid.YGrid, p.Grid.GridLen,
	)
}

// Parse reconstructs a MapProjection from the textual form produced by
// Format. It exists so the round-trip guarantee can be stated and
// tested directly: build(...).Format() fed back through Parse produces
// a value whose own Format() is identical to the first.
func Parse(s string) (*MapProjection, error) {
	p := &MapProjection{}
	var kind string
	n, err := fmt.Sscanf(s,
		"kind=%s pole=%s truelat=%f rotation={%f %f %f} conformal={%f %f} "+
			"map={units=%s olat=%f olon=%f lref=%f xlen=%f ylen=%f xorg=%f yorg=%f} "+
			"grid={units=%s nx=%d ny=%d xgrid=%f ygrid=%f gridlen=%f}",
		&kind, &p.Pole, &p.TrueLatitude,
		&p.Rotation.LaP, &p.Rotation.LoP, &p.Rotation.AngR,
		&p.Conformal.Latin1, &p.Conformal.Latin2,
		&p.Map.Units, &p.Map.OLat, &p.Map.OLon, &p.Map.LRef, &p.Map.XLen, &p.Map.YLen, &p.Map.XOrg, &p.Map.YOrg,
		&p.Grid.Units, &p.Grid.Nx, &p.Grid.Ny, &p.Grid.XGrid, &p.Grid.YGrid, &p.Grid.GridLen,
	)
	if err != nil {
		return nil, fmt.Errorf("projection: parse: %w", err)
	}
	if n != 22 {
		return nil, fmt.Errorf("projection: parse: expected 22 fields, got %d", n)
	}

	switch kind {
	case "latlon":
		p.Kind = KindLatLon
	case "stereo":
		p.Kind = KindPolarStereographic
	case "lambert":
		p.Kind = KindLambertConformal
	case "rotated":
		p.Kind = KindRotatedLatLon
	default:
		return nil, fmt.Errorf("projection: parse: unknown kind %q", kind)
	}

	return p, nil
}
