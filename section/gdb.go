package section

import (
	"fmt"

	"github.com/wx-ingest/grib0/grid"
	"github.com/wx-ingest/grib0/internal/bitio"
)

const (
	minGridDescriptionLength = 32
	maxGridDescriptionLength = 8192
)

// ParseGridDescription decodes the grid description block's outer,
// length-prefixed header (length[3], nv[1], pv_or_pl[1]) and then
// dispatches to grid.ParseDescription for the representation-specific
// body, leaving c positioned just past the section, including any
// trailing padding the declared length reserves beyond what the
// representation's fields consume.
func ParseGridDescription(c *Cursor) (*grid.Description, error) {
	start := c.Pos()
	r := bitio.NewReader(c.Remaining())

	length, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("section: grid description: %w", err)
	}
	if int(length) < minGridDescriptionLength || int(length) > maxGridDescriptionLength {
		return nil, &SectionLengthOutOfRangeError{
			Section: "grid description", Length: int(length),
			Min: minGridDescriptionLength, Max: maxGridDescriptionLength,
		}
	}

	if _, err := r.Uint8(); err != nil { // nv: count of vertical coordinate parameters, unused here
		return nil, fmt.Errorf("section: grid description: %w", err)
	}
	if _, err := r.Uint8(); err != nil { // pv_or_pl: vertical coordinate list pointer, unused here
		return nil, fmt.Errorf("section: grid description: %w", err)
	}

	desc, err := grid.ParseDescription(r)
	if err != nil {
		return nil, fmt.Errorf("section: grid description: %w", err)
	}

	c.SeekTo(start + int(length))
	return desc, nil
}
