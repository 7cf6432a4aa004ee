// Package grib0 decodes a concatenated stream of WMO GRIB Edition 0
// messages into self-describing, projection-aware fields. It composes
// the section, grid, ibmfloat, projection, and tables subpackages behind
// a single pull-based Pipeline (see pipeline.go).
package grib0

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// MessageError wraps a per-message decode failure with the stream
// offset at which the failing message's "GRIB" sentinel was matched —
// its recovery point. Unwrap exposes the underlying taxonomy
// (*section.SectionLengthOutOfRangeError, *section.TrailerMismatchError,
// grid.ErrUnknownRepresentation, *TimeRangeError, and so on) to
// errors.As/errors.Is, so callers can dispatch on the specific failure
// without needing to know Pipeline wrapped it.
//
// Stream-level failures (raw I/O errors reading the input) are not
// wrapped this way: they are not associated with any one message and
// are fatal, terminating iteration outright.
type MessageError struct {
	Offset int
	Stage  string
	Err    error
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("grib0: message at offset %d: %s: %v", e.Offset, e.Stage, e.Err)
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

// wrapMessage attaches the stack-trace-carrying pkg/errors.Wrap to err
// and anchors it to the message's recovery-point offset, so a caller of
// Next can print the error with %+v to see the trace. The DiagnosticSink
// receives only the error's message text.
func wrapMessage(offset int, stage string, err error) error {
	return &MessageError{Offset: offset, Stage: stage, Err: pkgerrors.Wrap(err, stage)}
}
