package grib0

import (
	"github.com/wx-ingest/grib0/projection"
	"github.com/wx-ingest/grib0/section"
)

// DecodedField is one fully resolved GRIB Edition 0 message: the
// textual model/element/level labels, the run and valid-time pair, the
// resolved MapProjection, and the data samples in canonical (row-major,
// south-to-north, west-to-east) order. It is immutable and
// caller-owned: no field borrows storage the Pipeline will reuse for
// the next message.
type DecodedField struct {
	Model string
	Run   string // "YYYY:JJJ:HH:MM"

	ValidBegin string
	ValidEnd   string

	Element string
	Units   string
	Level   string

	MapProjection *projection.MapProjection

	// Ni, Nj are the canonical grid's point counts, post pole-row
	// synthesis; Ni is always the wire's Ni, and Nj exceeds the wire's
	// Nj by one row when PoleExtra was nonzero.
	Ni, Nj int
	Data   []float64

	// Bitmap is the optional section 3 mask, decoded but otherwise
	// opaque: nothing in this package consumes it, and whether a
	// downstream reader does is its own concern.
	Bitmap *section.BitmapSection

	// ComponentFlag is 0 when vector components are earth-relative, 1
	// when grid-relative. Lat/lon and Gaussian grids are always 0.
	ComponentFlag uint8
}
