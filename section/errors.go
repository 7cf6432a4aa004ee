package section

import "fmt"

// SentinelNotFoundError is returned when a partial match of the "GRIB"
// sentinel is abandoned by end-of-stream, as opposed to a clean
// end-of-stream before any match was attempted (which is io.EOF, not an
// error at all).
type SentinelNotFoundError struct {
	Offset int // stream offset where the partial match began
}

func (e *SentinelNotFoundError) Error() string {
	return fmt.Sprintf("section: sentinel match abandoned at offset %d: unexpected end of stream", e.Offset)
}

// SectionLengthOutOfRangeError is returned when a section's declared
// 3-byte length falls outside that section's valid [min, max] range.
type SectionLengthOutOfRangeError struct {
	Section string
	Length  int
	Min     int
	Max     int
}

func (e *SectionLengthOutOfRangeError) Error() string {
	return fmt.Sprintf("section: %s length %d out of range [%d, %d]", e.Section, e.Length, e.Min, e.Max)
}

// TrailerMismatchError is returned when the four bytes following the
// binary data section do not read "7777".
type TrailerMismatchError struct {
	Got [4]byte
}

func (e *TrailerMismatchError) Error() string {
	return fmt.Sprintf("section: trailer mismatch: got %q, want \"7777\"", e.Got[:])
}

// DataSizeMismatchError is returned when the binary data section does
// not carry enough packed samples for the grid it claims to describe.
type DataSizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *DataSizeMismatchError) Error() string {
	return fmt.Sprintf("section: data size mismatch: expected %d samples, got %d", e.Expected, e.Actual)
}
