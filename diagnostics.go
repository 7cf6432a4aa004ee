package grib0

import "github.com/golang/glog"

// DiagnosticSink receives events the decoder would otherwise lose:
// soft model/element lookup misses, quirk workarounds (the CMC Di/Dj
// swap, the level-type-100 encoder bug), and message-recovery events.
// None of these fail the decode; the sink exists so a caller can
// surface them instead of the decoder writing to stderr directly.
type DiagnosticSink interface {
	// Warning reports a soft miss or workaround a caller should see
	// regardless of verbosity: an unrecognized model/element code, the
	// CMC swap, the isobaric level-zero quirk, or a message recovered
	// from after a parse failure.
	Warning(msg string)
	// Verbose reports trace-level detail a caller opts into via -v.
	Verbose(msg string)
}

// defaultDiagnosticSink routes Warning to glog.Warning and Verbose to
// glog.V(1).Info.
type defaultDiagnosticSink struct{}

func (defaultDiagnosticSink) Warning(msg string) {
	glog.Warning(msg)
}

func (defaultDiagnosticSink) Verbose(msg string) {
	glog.V(1).Info(msg)
}
