package section

import (
	"fmt"

	"github.com/wx-ingest/grib0/internal/bitio"
)

const (
	minProductDefinitionLength = 24
	maxProductDefinitionLength = 256
)

// ReferenceTime is the PDB's uninterpreted reference-time fields: a
// 2-digit year-of-century plus month/day/hour/minute. Century
// resolution happens downstream, in TimestampResolver.
type ReferenceTime struct {
	Year, Month, Day, Hour, Minute int
}

// Level is the PDB's level type and its one or two encoded values. Which
// of Top/Bottom is meaningful, and how, depends on Type; see
// IdentifierResolver.
type Level struct {
	Type, Top, Bottom int
}

// ProductDefinition is GRIB Edition 0's section 1: centre/model/grid
// catalogue identity, the has-grid-description and has-bitmap flags,
// the parameter and level codes, the reference time, the forecast
// horizon fields, and the decimal scale factor applied to every decoded
// sample.
type ProductDefinition struct {
	Length             int
	Edition            uint8
	CentreID           int
	ModelID            int
	GridCatalogue      int
	HasGridDescription bool
	HasBitmap          bool
	Parameter          int
	Level              Level
	Reference          ReferenceTime
	ForecastUnit       int
	T1, T2             int
	RangeType          int
	NAveraged          int
	NMissing           int
	DecimalScale       int16

	// LevelTypeCorrected is set when the isobaric-level-zero encoder
	// quirk was detected and level_type was rewritten from 100 to 1.
	// The caller is responsible for routing this to a diagnostic sink.
	LevelTypeCorrected bool
}

// ParseProductDefinition decodes section 1 starting at c's current
// position and leaves c positioned just past the section (including any
// padding bytes beyond the fields this parser reads).
func ParseProductDefinition(c *Cursor) (*ProductDefinition, error) {
	start := c.Pos()
	r := bitio.NewReader(c.Remaining())

	length, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	if int(length) < minProductDefinitionLength || int(length) > maxProductDefinitionLength {
		return nil, &SectionLengthOutOfRangeError{
			Section: "product definition", Length: int(length),
			Min: minProductDefinitionLength, Max: maxProductDefinitionLength,
		}
	}

	edition, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	centreID, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	modelID, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	gridCatalogue, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	flags, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	parameter, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	levelType, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	levelTop, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	levelBottom, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	year, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	month, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	day, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	hour, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	minute, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	forecastUnit, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	t1, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	t2, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	rangeType, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	nAveraged, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}
	nMissing, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: product definition: %w", err)
	}

	var decimalScale int16
	if length >= minProductDefinitionLength+2 {
		ds, err := r.SignMagnitude16()
		if err != nil {
			return nil, fmt.Errorf("section: product definition: %w", err)
		}
		decimalScale = ds
	}

	pdb := &ProductDefinition{
		Length:             int(length),
		Edition:            edition,
		CentreID:           int(centreID),
		ModelID:            int(modelID),
		GridCatalogue:      int(gridCatalogue),
		HasGridDescription: flags&0x80 != 0,
		HasBitmap:          flags&0x40 != 0,
		Parameter:          int(parameter),
		Level:              Level{Type: int(levelType), Top: int(levelTop), Bottom: int(levelBottom)},
		Reference:          ReferenceTime{Year: int(year), Month: int(month), Day: int(day), Hour: int(hour), Minute: int(minute)},
		ForecastUnit:       int(forecastUnit),
		T1:                 int(t1),
		T2:                 int(t2),
		RangeType:          int(rangeType),
		NAveraged:          int(nAveraged),
		NMissing:           int(nMissing),
		DecimalScale:       decimalScale,
	}

	if pdb.Level.Type == 100 && (pdb.Level.Top<<8|pdb.Level.Bottom) == 0 {
		pdb.Level.Type = 1
		pdb.LevelTypeCorrected = true
	}

	c.SeekTo(start + int(length))
	return pdb, nil
}
