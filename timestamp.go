package grib0

import (
	"fmt"
	"time"

	"github.com/wx-ingest/grib0/section"
)

// TimeRangeError is returned for a forecast unit or time-range
// indicator combination the decoder does not recognize: anything other
// than forecast_unit=1 (hours) with range_type in {0,1,2,3,4,5}, and
// range_type 1 with a nonzero T1. An unrecognized time range is not a
// value to guess at.
type TimeRangeError struct {
	RangeType int
	Unit      int
}

func (e *TimeRangeError) Error() string {
	return fmt.Sprintf("grib0: unsupported time range: range_type=%d unit=%d", e.RangeType, e.Unit)
}

// resolveTimestamps computes the run timestamp and the (begin, end)
// valid-time pair from a product definition's reference date and
// forecast fields. centuryAnchor fixes the 100-year sliding window
// used to expand a 2-digit reference year into a full year (see
// WithCenturyAnchor).
//
// No timestamp comparator is used here: begin and end are built
// directly from T1 and T2 as the wire gives them, and no check is made
// that begin precedes or equals end (for range types 2-5 a T2 smaller
// than T1 yields an end before the begin).
func resolveTimestamps(pdb *section.ProductDefinition, centuryAnchor time.Time) (run, validBegin, validEnd string, err error) {
	if pdb.ForecastUnit != 1 {
		return "", "", "", &TimeRangeError{RangeType: pdb.RangeType, Unit: pdb.ForecastUnit}
	}

	year := expandYear(pdb.Reference.Year, centuryAnchor)
	ref := time.Date(year, time.Month(pdb.Reference.Month), pdb.Reference.Day,
		pdb.Reference.Hour, pdb.Reference.Minute, 0, 0, time.UTC)
	run = formatTimestamp(ref)

	switch pdb.RangeType {
	case 0:
		vb := ref.Add(time.Duration(pdb.T1) * time.Hour)
		validBegin, validEnd = formatTimestamp(vb), formatTimestamp(vb)

	case 1:
		if pdb.T1 != 0 {
			return "", "", "", &TimeRangeError{RangeType: pdb.RangeType, Unit: pdb.ForecastUnit}
		}
		validBegin, validEnd = run, run

	case 2, 3, 4, 5:
		vb := ref.Add(time.Duration(pdb.T1) * time.Hour)
		ve := ref.Add(time.Duration(pdb.T2) * time.Hour)
		validBegin, validEnd = formatTimestamp(vb), formatTimestamp(ve)

	default:
		return "", "", "", &TimeRangeError{RangeType: pdb.RangeType, Unit: pdb.ForecastUnit}
	}

	return run, validBegin, validEnd, nil
}

// formatTimestamp renders t as the canonical "YYYY:JJJ:HH:MM" form,
// where JJJ is the day of year. time.Time's own leap-year handling
// (proleptic Gregorian throughout) covers every year GRIB Edition 0
// data is ever dated in; the 11-day 1752 Julian/Gregorian adjustment
// has no bearing on any date this decoder will actually see.
func formatTimestamp(t time.Time) string {
	return fmt.Sprintf("%04d:%03d:%02d:%02d", t.Year(), t.YearDay(), t.Hour(), t.Minute())
}

// expandYear resolves a PDB's 1-byte reference year into a full
// calendar year. The wire value is taken as a 2-digit year-of-century
// (mod 100) and expanded via a 100-year window [anchor-49, anchor+50],
// with the anchor fixed explicitly so results do not drift with the
// wall clock.
func expandYear(yearOfCentury int, anchor time.Time) int {
	yoc := yearOfCentury % 100
	low := anchor.Year() - 49
	base := low - (((low % 100) + 100) % 100)
	candidate := base + yoc
	if candidate < low {
		candidate += 100
	}
	return candidate
}
