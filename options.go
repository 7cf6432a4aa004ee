package grib0

import (
	"time"

	"github.com/wx-ingest/grib0/grid"
	"github.com/wx-ingest/grib0/tables"
)

// PipelineOption configures a Pipeline at construction time. The
// decoder takes no env or CLI input; every tunable — lookup tables,
// the predefined-grid catalogue, the century-expansion anchor, and the
// diagnostic sink — is supplied through options. Decoding is a
// single-threaded, pull-based iterator, so there is no worker or
// context option to configure.
type PipelineOption func(*pipelineConfig)

type pipelineConfig struct {
	catalogue     *grid.Catalogue
	identifiers   *tables.IdentifierResolver
	centuryAnchor time.Time
	sink          DiagnosticSink
}

func defaultPipelineConfig() pipelineConfig {
	return pipelineConfig{
		catalogue:     grid.NewCatalogue(nil, nil),
		identifiers:   &tables.IdentifierResolver{},
		centuryAnchor: time.Now().UTC(),
		sink:          defaultDiagnosticSink{},
	}
}

// WithCatalogue supplies the predefined lat/lon and polar stereographic
// grid tables consulted when a message carries no grid description
// section of its own. The table contents come from the caller's own
// configuration; none ship with this package.
func WithCatalogue(c *grid.Catalogue) PipelineOption {
	return func(cfg *pipelineConfig) { cfg.catalogue = c }
}

// WithIdentifierTables supplies the model/element/level lookup tables
// consulted by IdentifierResolver. Any of the resolver's three tables
// may be left nil; a nil table always misses (soft for model/element,
// fatal for level).
func WithIdentifierTables(r *tables.IdentifierResolver) PipelineOption {
	return func(cfg *pipelineConfig) { cfg.identifiers = r }
}

// WithCenturyAnchor fixes the anchor for the 100-year sliding window
// used to expand a 2-digit reference year into a full year. Anchoring
// on the wall clock makes decode results drift across runs; this
// option makes the anchor an explicit, reproducible construction-time
// input. If unset, the anchor defaults to the moment NewPipeline is
// called.
func WithCenturyAnchor(t time.Time) PipelineOption {
	return func(cfg *pipelineConfig) { cfg.centuryAnchor = t }
}

// WithDiagnosticSink overrides the default glog-backed DiagnosticSink
// with a caller-supplied sink, e.g. to route soft lookup misses and
// quirk workarounds into a structured logger instead.
func WithDiagnosticSink(sink DiagnosticSink) PipelineOption {
	return func(cfg *pipelineConfig) { cfg.sink = sink }
}
