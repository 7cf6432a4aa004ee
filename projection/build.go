package projection

import (
	"fmt"
	"math"

	"github.com/wx-ingest/grib0/grid"
)

const (
	degreesUnits = "degrees"
	metersUnits  = "meters"

	// earthRadius is the spherical earth radius (metres) used for the
	// polar stereographic forward/inverse projection, matching the
	// historical GCTP spherical-earth convention.
	earthRadius = 6371229.0

	// polarStereoTrueLatitude is Edition 0's hard-coded true latitude
	// for the polar stereographic projection: 60 degrees, nearest the
	// projection's pole. This is a wire-format convention, not a field
	// on the grid description.
	polarStereoTrueLatitude = 60.0

	maxLatitudeMillideg  = 90_000
	maxLongitudeMillideg = 360_000
)

func millidegToDeg(v int32) float64 { return float64(v) / 1000.0 }

// BuildLatLon builds the MapProjection for a lat/lon grid: the origin
// is the first grid point as given, and there is no reference
// longitude or true-latitude parameter.
func BuildLatLon(g *grid.LatLonGrid, left, bottom bool) *MapProjection {
	ni, nj := g.Ni, g.Nj
	xgrid := math.Abs(millidegToDeg(g.Di))
	ygrid := math.Abs(millidegToDeg(g.Dj))
	xlen := xgrid * float64(ni-1)
	ylen := ygrid * float64(nj-1)

	p := &MapProjection{
		Kind: KindLatLon,
		Pole: "none",
		Map: MapDefinition{
			OLat: millidegToDeg(g.La1), OLon: millidegToDeg(g.Lo1),
			XLen: xlen, YLen: ylen,
			XOrg: originOffset(left, xlen), YOrg: originOffset(bottom, ylen),
			Units: degreesUnits,
		},
		Grid: GridDefinition{Nx: ni, Ny: nj, XGrid: xgrid, YGrid: ygrid, Units: degreesUnits},
	}
	p.roundTrip()
	return p
}

// BuildRotatedLatLon builds the MapProjection for a rotated lat/lon
// grid: identical to BuildLatLon except for the pole-of-rotation and
// rotation-angle parameters.
func BuildRotatedLatLon(g *grid.RotatedLatLonGrid, left, bottom bool) *MapProjection {
	p := BuildLatLon(&g.LatLonGrid, left, bottom)
	p.Kind = KindRotatedLatLon
	p.Rotation = RotationParams{
		LaP:  millidegToDeg(g.LaP),
		LoP:  millidegToDeg(g.LoP),
		AngR: millidegToDeg(g.AngR),
	}
	p.roundTrip()
	return p
}

// BuildLambertConformal builds the MapProjection for a Lambert
// conformal grid. Bipolar grids are not supported and fail with
// ErrBipolarUnsupported, per the wire format's own warning flag.
func BuildLambertConformal(g *grid.LambertConformalGrid, left, bottom bool) (*MapProjection, error) {
	if g.Bipolar {
		return nil, ErrBipolarUnsupported
	}

	xgrid := float64(g.Dx)
	ygrid := float64(g.Dy)
	xlen := xgrid * float64(g.Nx-1)
	ylen := ygrid * float64(g.Ny-1)

	p := &MapProjection{
		Kind: KindLambertConformal,
		Pole: poleName(g.Pole),
		Conformal: ConformalParams{
			Latin1: millidegToDeg(g.Latin1),
			Latin2: millidegToDeg(g.Latin2),
		},
		Map: MapDefinition{
			OLat: millidegToDeg(g.La1), OLon: millidegToDeg(g.Lo1),
			LRef: millidegToDeg(g.LoV),
			XLen: xlen, YLen: ylen,
			XOrg: originOffset(left, xlen), YOrg: originOffset(bottom, ylen),
			Units: metersUnits,
		},
		Grid: GridDefinition{Nx: g.Nx, Ny: g.Ny, XGrid: xgrid, YGrid: ygrid, Units: metersUnits},
	}
	p.roundTrip()
	return p, nil
}

// BuildPolarStereo builds the MapProjection for a polar stereographic
// grid. When the grid carries a pole offset (HasPoleOffset, the
// predefined-catalogue case), or La1/Lo1 fall outside normal
// latitude/longitude ranges, the origin is recovered by building a
// provisional, pole-centred MapProjection and inverting it at the
// (pole_i, pole_j) offset; La1/Lo1 are then ignored even if in range.
// Otherwise La1/Lo1 are used directly as the origin.
func BuildPolarStereo(g *grid.PolarStereoGrid, left, bottom bool) *MapProjection {
	xgrid := float64(g.Dx)
	ygrid := float64(g.Dy)
	xlen := xgrid * float64(g.Nx-1)
	ylen := ygrid * float64(g.Ny-1)
	pole := poleName(g.Pole)
	lref := millidegToDeg(g.LoV)

	olat, olon := millidegToDeg(g.La1), millidegToDeg(g.Lo1)
	if g.HasPoleOffset || math.Abs(float64(g.La1)) > maxLatitudeMillideg || math.Abs(float64(g.Lo1)) > maxLongitudeMillideg {
		poleLat := 90.0
		if g.Pole == grid.PoleSouth {
			poleLat = -90.0
		}
		provisional := &MapProjection{
			Kind:         KindPolarStereographic,
			Pole:         pole,
			TrueLatitude: polarStereoTrueLatitude,
			Map: MapDefinition{
				OLat: poleLat, OLon: 0,
				LRef: lref,
				XLen: xlen, YLen: ylen,
				XOrg: originOffset(left, xlen), YOrg: originOffset(bottom, ylen),
				Units: metersUnits,
			},
			Grid: GridDefinition{Nx: g.Nx, Ny: g.Ny, XGrid: xgrid, YGrid: ygrid, Units: metersUnits},
		}
		olat, olon = PositionToLatLon(provisional, -float64(g.PoleI)*xgrid, -float64(g.PoleJ)*ygrid)
	}

	p := &MapProjection{
		Kind:         KindPolarStereographic,
		Pole:         pole,
		TrueLatitude: polarStereoTrueLatitude,
		Map: MapDefinition{
			OLat: olat, OLon: olon,
			LRef: lref,
			XLen: xlen, YLen: ylen,
			XOrg: originOffset(left, xlen), YOrg: originOffset(bottom, ylen),
			Units: metersUnits,
		},
		Grid: GridDefinition{Nx: g.Nx, Ny: g.Ny, XGrid: xgrid, YGrid: ygrid, Units: metersUnits},
	}
	p.roundTrip()
	return p
}

// PositionToLatLon returns the latitude/longitude of the point offset
// (dx, dy) projection units from p's map origin. Only
// KindPolarStereographic is implemented; the other families never need
// inverse projection since their origin is always given directly on
// the wire.
func PositionToLatLon(p *MapProjection, dx, dy float64) (lat, lon float64) {
	if p.Kind != KindPolarStereographic {
		return p.Map.OLat, p.Map.OLon
	}
	ox, oy := stereoForward(p.Pole, p.TrueLatitude, p.Map.LRef, p.Map.OLat, p.Map.OLon)
	return stereoInverse(p.Pole, p.TrueLatitude, p.Map.LRef, ox+dx, oy+dy)
}

// roundTrip formats p and reparses it, replacing p's fields with the
// reparsed values. Two MapProjection values built from identical wire
// fields take identical paths through Format/Parse and so end up with
// bit-identical field values, which is the guarantee downstream
// comparisons rely on.
func (p *MapProjection) roundTrip() {
	reparsed, err := Parse(p.Format())
	if err != nil {
		// Format always produces Parse's own grammar; a failure here
		// means the two fell out of sync, which is a programming error.
		panic(fmt.Sprintf("projection: round trip failed: %v", err))
	}
	*p = *reparsed
}

func originOffset(atStart bool, length float64) float64 {
	if atStart {
		return 0
	}
	return length
}

func poleName(pole grid.Pole) string {
	if pole == grid.PoleSouth {
		return "south"
	}
	return "north"
}

func stereoForward(pole string, trueLatDeg, lrefDeg, latDeg, lonDeg float64) (x, y float64) {
	const deg2rad = math.Pi / 180.0
	latRad := latDeg * deg2rad
	lonRad := lonDeg * deg2rad
	trueLatRad := trueLatDeg * deg2rad
	lrefRad := lrefDeg * deg2rad

	mcs := math.Cos(math.Abs(trueLatRad))
	tcs := math.Tan((math.Pi/2.0 - math.Abs(trueLatRad)) / 2.0)
	theta := lonRad - lrefRad

	if pole == "north" {
		t := math.Tan((math.Pi/2.0 - latRad) / 2.0)
		rho := earthRadius * mcs * t / tcs
		return rho * math.Sin(theta), -rho * math.Cos(theta)
	}
	t := math.Tan((math.Pi/2.0 + latRad) / 2.0)
	rho := earthRadius * mcs * t / tcs
	return rho * math.Sin(theta), rho * math.Cos(theta)
}

func stereoInverse(pole string, trueLatDeg, lrefDeg, x, y float64) (lat, lon float64) {
	const deg2rad = math.Pi / 180.0
	const rad2deg = 180.0 / math.Pi
	trueLatRad := trueLatDeg * deg2rad
	lrefRad := lrefDeg * deg2rad

	mcs := math.Cos(math.Abs(trueLatRad))
	tcs := math.Tan((math.Pi/2.0 - math.Abs(trueLatRad)) / 2.0)
	rho := math.Sqrt(x*x + y*y)

	if pole == "north" {
		if rho == 0 {
			return 90.0, 0.0
		}
		ts := rho * tcs / (earthRadius * mcs)
		latRad := math.Pi/2.0 - 2.0*math.Atan(ts)
		lonRad := lrefRad + math.Atan2(x, -y)
		return latRad * rad2deg, normaliseLongitude(lonRad * rad2deg)
	}
	if rho == 0 {
		return -90.0, 0.0
	}
	ts := rho * tcs / (earthRadius * mcs)
	latRad := -math.Pi/2.0 + 2.0*math.Atan(ts)
	lonRad := lrefRad + math.Atan2(x, y)
	return latRad * rad2deg, normaliseLongitude(lonRad * rad2deg)
}

func normaliseLongitude(lon float64) float64 {
	for lon < 0 {
		lon += 360
	}
	for lon >= 360 {
		lon -= 360
	}
	return lon
}
