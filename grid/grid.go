// Package grid decodes GRIB Edition 0's grid description block: the five
// supported data representations, the predefined-grid catalogue fallback
// used when a message carries no grid description of its own, scan-mode
// permutation, and pole-row synthesis.
package grid

import (
	"fmt"

	"github.com/wx-ingest/grib0/internal/bitio"
)

// Representation identifies which of the wire's grid layouts a
// GridDescription carries.
type Representation uint8

const (
	RepresentationLatLon             Representation = 0
	RepresentationLambertConformal   Representation = 3
	RepresentationGaussian           Representation = 4
	RepresentationPolarStereographic Representation = 5
	RepresentationRotatedLatLon      Representation = 10
)

// ScanMode carries the three orientation bits read from a grid
// description's scanning-mode octet.
type ScanMode struct {
	West         bool // true: i decreases west to east (points scan east to west)
	North        bool // true: j increases south to north
	JSweepsFirst bool // true: j varies fastest in the wire's sample order
}

func readScanMode(octet uint8) ScanMode {
	return ScanMode{
		West:         octet&0x80 != 0,
		North:        octet&0x40 != 0,
		JSweepsFirst: octet&0x20 != 0,
	}
}

// LatLonGrid is data representation 0: a regular latitude/longitude grid.
type LatLonGrid struct {
	Ni, Nj          int
	La1, Lo1        int32 // millidegrees
	ResolutionFlags uint8
	La2, Lo2        int32
	Di, Dj          int32 // millidegrees, signed
	Scan            ScanMode
	PoleExtra       int8 // -1, 0, +1
}

// GaussianGrid is data representation 4.
type GaussianGrid struct {
	Ni, Nj   int
	La1, Lo1 int32
	La2, Lo2 int32
	Di       int32
	N        int // number of parallels between pole and equator
	Scan     ScanMode
}

// Pole identifies which pole a polar stereographic projection is centred
// on.
type Pole int

const (
	PoleNorth Pole = iota
	PoleSouth
)

// PolarStereoGrid is data representation 5.
type PolarStereoGrid struct {
	Nx, Ny        int
	La1, Lo1      int32
	ComponentFlag uint8
	LoV           int32 // orientation longitude, millidegrees
	Dx, Dy        int32 // metres
	Pole          Pole
	Scan          ScanMode
	PoleI, PoleJ  int32 // only set by the predefined catalogue
	HasPoleOffset bool
}

// LambertConformalGrid is data representation 3.
type LambertConformalGrid struct {
	Nx, Ny         int
	La1, Lo1       int32
	ComponentFlag  uint8
	LoV            int32
	Dx, Dy         int32
	Pole           Pole
	Scan           ScanMode
	Latin1, Latin2 int32 // millidegrees
	Bipolar        bool
}

// RotatedLatLonGrid is data representation 10: a LatLonGrid plus the pole
// of rotation and rotation angle.
type RotatedLatLonGrid struct {
	LatLonGrid
	LaP, LoP int32 // pole of rotation, millidegrees
	AngR     int32 // rotation angle, millidegrees, signed
}

// Description holds exactly one populated grid variant, discriminated by
// Representation.
type Description struct {
	Representation Representation

	LatLon      *LatLonGrid
	Gaussian    *GaussianGrid
	PolarStereo *PolarStereoGrid
	Lambert     *LambertConformalGrid
	Rotated     *RotatedLatLonGrid
}

// Dimensions returns the grid's (Ni, Nj) point counts regardless of which
// variant is populated.
func (d *Description) Dimensions() (ni, nj int) {
	switch d.Representation {
	case RepresentationLatLon:
		return d.LatLon.Ni, d.LatLon.Nj
	case RepresentationGaussian:
		return d.Gaussian.Ni, d.Gaussian.Nj
	case RepresentationPolarStereographic:
		return d.PolarStereo.Nx, d.PolarStereo.Ny
	case RepresentationLambertConformal:
		return d.Lambert.Nx, d.Lambert.Ny
	case RepresentationRotatedLatLon:
		return d.Rotated.Ni, d.Rotated.Nj
	default:
		return 0, 0
	}
}

// ScanMode returns the scanning-mode flags regardless of which variant is
// populated.
func (d *Description) ScanMode() ScanMode {
	switch d.Representation {
	case RepresentationLatLon:
		return d.LatLon.Scan
	case RepresentationGaussian:
		return d.Gaussian.Scan
	case RepresentationPolarStereographic:
		return d.PolarStereo.Scan
	case RepresentationLambertConformal:
		return d.Lambert.Scan
	case RepresentationRotatedLatLon:
		return d.Rotated.Scan
	default:
		return ScanMode{}
	}
}

// PoleExtra returns the implicit-pole-row flag. Only lat/lon grids (and
// rotated lat/lon, which embeds one) carry this; all other
// representations return 0.
func (d *Description) PoleExtra() int8 {
	switch d.Representation {
	case RepresentationLatLon:
		return d.LatLon.PoleExtra
	case RepresentationRotatedLatLon:
		return d.Rotated.PoleExtra
	default:
		return 0
	}
}

// ComponentFlag reports whether this grid's vector components are
// earth-relative (0) or grid-relative (1), read from bit 3 of the
// component-flag octet. Lat/lon and Gaussian grids carry no such octet
// on the wire and always return 0 (earth-relative).
func (d *Description) ComponentFlag() uint8 {
	const bit3 = 0x08
	switch d.Representation {
	case RepresentationPolarStereographic:
		if d.PolarStereo.ComponentFlag&bit3 != 0 {
			return 1
		}
	case RepresentationLambertConformal:
		if d.Lambert.ComponentFlag&bit3 != 0 {
			return 1
		}
	}
	return 0
}

// Deltas returns the signed grid-spacing pair ScanModeNormaliser and
// MapProjectionBuilder use to determine which edge of the grid the
// wire's leading index starts from. Gaussian grids carry no explicit Dj
// (rows are spaced by Gaussian quadrature, named by parallel count N
// instead); a Gaussian row march is always north-positive, so Dj is
// reported as a nominal +1 purely to fix the sign ScanDirection needs.
func (d *Description) Deltas() (di, dj int32) {
	switch d.Representation {
	case RepresentationLatLon:
		return d.LatLon.Di, d.LatLon.Dj
	case RepresentationGaussian:
		return d.Gaussian.Di, 1
	case RepresentationPolarStereographic:
		return d.PolarStereo.Dx, d.PolarStereo.Dy
	case RepresentationLambertConformal:
		return d.Lambert.Dx, d.Lambert.Dy
	case RepresentationRotatedLatLon:
		return d.Rotated.Di, d.Rotated.Dj
	default:
		return 0, 0
	}
}

func signMagnitude24(v int32) int32 {
	const signBit = 1 << 23
	if v >= signBit {
		return signBit - v
	}
	return v
}

// ParseDescription reads the grid description block body (after the
// length[3], nv[1], pv_or_pl[1] header has already been consumed) and
// dispatches on the representation byte.
func ParseDescription(r *bitio.Reader) (*Description, error) {
	repByte, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("grid: reading representation byte: %w", err)
	}
	rep := Representation(repByte)

	switch rep {
	case RepresentationLatLon:
		g, err := parseLatLon(r)
		if err != nil {
			return nil, err
		}
		return &Description{Representation: rep, LatLon: g}, nil
	case RepresentationGaussian:
		g, err := parseGaussian(r)
		if err != nil {
			return nil, err
		}
		return &Description{Representation: rep, Gaussian: g}, nil
	case RepresentationPolarStereographic:
		g, err := parsePolarStereo(r)
		if err != nil {
			return nil, err
		}
		return &Description{Representation: rep, PolarStereo: g}, nil
	case RepresentationLambertConformal:
		g, err := parseLambertConformal(r)
		if err != nil {
			return nil, err
		}
		if g.Bipolar {
			return nil, fmt.Errorf("%w: bipolar lambert conformal", ErrUnsupportedGridFeature)
		}
		return &Description{Representation: rep, Lambert: g}, nil
	case RepresentationRotatedLatLon:
		g, err := parseRotatedLatLon(r)
		if err != nil {
			return nil, err
		}
		return &Description{Representation: rep, Rotated: g}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownRepresentation, rep)
	}
}

func parseLambertConformal(r *bitio.Reader) (*LambertConformalGrid, error) {
	nx, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	ny, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	rawLa1, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	rawLo1, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	componentFlag, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	rawLoV, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	rawDx, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	rawDy, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	projCentre, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	scanOctet, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	rawLatin1, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}
	rawLatin2, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: lambert: %w", err)
	}

	pole := PoleNorth
	if projCentre&0x80 != 0 {
		pole = PoleSouth
	}
	bipolar := projCentre&0x40 != 0

	return &LambertConformalGrid{
		Nx: int(nx), Ny: int(ny),
		La1: signMagnitude24(int32(rawLa1)), Lo1: signMagnitude24(int32(rawLo1)),
		ComponentFlag: componentFlag,
		LoV:           signMagnitude24(int32(rawLoV)),
		Dx:            int32(rawDx), Dy: int32(rawDy),
		Pole:    pole,
		Scan:    readScanMode(scanOctet),
		Latin1:  signMagnitude24(int32(rawLatin1)),
		Latin2:  signMagnitude24(int32(rawLatin2)),
		Bipolar: bipolar,
	}, nil
}

func parseRotatedLatLon(r *bitio.Reader) (*RotatedLatLonGrid, error) {
	ni, nj, la1, lo1, resFlags, la2, lo2, di, dj, scan, err := parseLatLonFields(r)
	if err != nil {
		return nil, fmt.Errorf("grid: rotated lat/lon: %w", err)
	}
	rawLaP, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: rotated lat/lon: %w", err)
	}
	rawLoP, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: rotated lat/lon: %w", err)
	}
	rawAngR, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: rotated lat/lon: %w", err)
	}

	return &RotatedLatLonGrid{
		LatLonGrid: LatLonGrid{
			Ni: ni, Nj: nj,
			La1: la1, Lo1: lo1,
			ResolutionFlags: resFlags,
			La2:             la2, Lo2: lo2,
			Di: di, Dj: dj,
			Scan:      scan,
			PoleExtra: 0,
		},
		LaP:  signMagnitude24(int32(rawLaP)),
		LoP:  signMagnitude24(int32(rawLoP)),
		AngR: signMagnitude24(int32(rawAngR)),
	}, nil
}

func parseLatLonFields(r *bitio.Reader) (ni, nj int, la1, lo1 int32, resFlags uint8, la2, lo2 int32, di, dj int32, scan ScanMode, err error) {
	n1, err := r.Uint16()
	if err != nil {
		return
	}
	n2, err := r.Uint16()
	if err != nil {
		return
	}
	rawLa1, err := r.Uint24()
	if err != nil {
		return
	}
	rawLo1, err := r.Uint24()
	if err != nil {
		return
	}
	rf, err := r.Uint8()
	if err != nil {
		return
	}
	rawLa2, err := r.Uint24()
	if err != nil {
		return
	}
	rawLo2, err := r.Uint24()
	if err != nil {
		return
	}
	rawDi, err := r.SignMagnitude16()
	if err != nil {
		return
	}
	rawDj, err := r.SignMagnitude16()
	if err != nil {
		return
	}
	scanOctet, err := r.Uint8()
	if err != nil {
		return
	}

	ni, nj = int(n1), int(n2)
	la1 = signMagnitude24(int32(rawLa1))
	lo1 = signMagnitude24(int32(rawLo1))
	resFlags = rf
	la2 = signMagnitude24(int32(rawLa2))
	lo2 = signMagnitude24(int32(rawLo2))
	di = int32(rawDi)
	dj = int32(rawDj)
	scan = readScanMode(scanOctet)
	return
}

func parseLatLon(r *bitio.Reader) (*LatLonGrid, error) {
	ni, nj, la1, lo1, resFlags, la2, lo2, di, dj, scan, err := parseLatLonFields(r)
	if err != nil {
		return nil, fmt.Errorf("grid: lat/lon: %w", err)
	}
	return &LatLonGrid{
		Ni: ni, Nj: nj,
		La1: la1, Lo1: lo1,
		ResolutionFlags: resFlags,
		La2:             la2, Lo2: lo2,
		Di: di, Dj: dj,
		Scan:      scan,
		PoleExtra: 0,
	}, nil
}

func parseGaussian(r *bitio.Reader) (*GaussianGrid, error) {
	n1, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	n2, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	rawLa1, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	rawLo1, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	if _, err := r.Uint8(); err != nil { // resolution byte, unused here
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	rawLa2, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	rawLo2, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	rawDi, err := r.SignMagnitude16()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	n, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}
	scanOctet, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("grid: gaussian: %w", err)
	}

	return &GaussianGrid{
		Ni: int(n1), Nj: int(n2),
		La1: signMagnitude24(int32(rawLa1)), Lo1: signMagnitude24(int32(rawLo1)),
		La2: signMagnitude24(int32(rawLa2)), Lo2: signMagnitude24(int32(rawLo2)),
		Di:   int32(rawDi),
		N:    int(n),
		Scan: readScanMode(scanOctet),
	}, nil
}

func parsePolarStereo(r *bitio.Reader) (*PolarStereoGrid, error) {
	nx, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	ny, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	rawLa1, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	rawLo1, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	componentFlag, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	rawLoV, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	rawDx, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	rawDy, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	projCentre, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}
	scanOctet, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("grid: polar stereo: %w", err)
	}

	pole := PoleNorth
	if projCentre&0x80 != 0 {
		pole = PoleSouth
	}

	return &PolarStereoGrid{
		Nx: int(nx), Ny: int(ny),
		La1: signMagnitude24(int32(rawLa1)), Lo1: signMagnitude24(int32(rawLo1)),
		ComponentFlag: componentFlag,
		LoV:           signMagnitude24(int32(rawLoV)),
		Dx:            int32(rawDx), Dy: int32(rawDy),
		Pole: pole,
		Scan: readScanMode(scanOctet),
	}, nil
}

// ApplyCMCSwap implements the documented CMC (centre_id 54) encoder quirk
// for lat/lon grids: Di and Dj arrive transposed on the wire.
func (g *LatLonGrid) ApplyCMCSwap() {
	g.Di, g.Dj = g.Dj, g.Di
}

// ApplyCMCSwap swaps Di/Dj on the embedded LatLonGrid.
func (g *RotatedLatLonGrid) ApplyCMCSwap() {
	g.LatLonGrid.ApplyCMCSwap()
}
