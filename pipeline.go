package grib0

import (
	"errors"
	"fmt"
	"io"

	"github.com/wx-ingest/grib0/grid"
	"github.com/wx-ingest/grib0/projection"
	"github.com/wx-ingest/grib0/section"
)

// Pipeline decodes a concatenated stream of GRIB Edition 0 messages,
// exposing a pull-based iterator over the decoded fields. It is
// single-threaded and fully synchronous: there are no internal
// goroutines, no cancellation points other than end of input, and no
// hidden state outside the Pipeline value itself. Every read and
// emission routes through it.
type Pipeline struct {
	cursor *section.Cursor
	cfg    pipelineConfig

	// reportedMisses records the synthetic model/element labels already
	// warned about, so a stream full of the same unrecognized code pair
	// produces one diagnostic, not one per message.
	reportedMisses map[string]bool
}

// NewPipeline constructs a Pipeline over data, a byte slice holding one
// or more concatenated GRIB Edition 0 messages. data is not copied: the
// Pipeline reads from it on every call to Next, so the caller must not
// modify it while the Pipeline is in use. Each DecodedField holds its
// own copies of what it carries. Opening and closing the underlying file
// is the caller's concern.
func NewPipeline(data []byte, opts ...PipelineOption) *Pipeline {
	cfg := defaultPipelineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pipeline{
		cursor:         section.NewCursor(data),
		cfg:            cfg,
		reportedMisses: make(map[string]bool),
	}
}

// Next decodes and returns the next message in the stream.
//
// Three outcomes:
//   - (field, nil): a message decoded successfully.
//   - (nil, nil): the stream is exhausted. Clean end of input is the
//     end of iteration, not a failure.
//   - (nil, err): the message starting at the most recent sentinel
//     match failed to decode. The Pipeline has already recovered —
//     seeked past the failed message's recovery point and is ready to
//     resume the sentinel search — so the next call to Next continues
//     with the following message.
func (p *Pipeline) Next() (*DecodedField, error) {
	if p.cursor.AtEnd() {
		return nil, nil
	}

	field, err := p.decodeOne()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		p.cfg.sink.Warning(err.Error())
		return nil, err
	}
	return field, nil
}

func (p *Pipeline) decodeOne() (*DecodedField, error) {
	indicator, err := section.ScanSentinel(p.cursor)
	if err != nil {
		// io.EOF (clean end of stream) and *section.SentinelNotFoundError
		// (EOF mid-match) both propagate as-is: neither has a recovery
		// point to seek back to, since no sentinel was ever matched.
		return nil, err
	}

	field, err := p.decodeMessageBody(indicator)
	if err != nil {
		p.cursor.SeekTo(indicator.RecoveryPoint + 1)
		return nil, err
	}
	return field, nil
}

func (p *Pipeline) decodeMessageBody(indicator *section.IndicatorBlock) (*DecodedField, error) {
	offset := indicator.RecoveryPoint

	pdb, err := section.ParseProductDefinition(p.cursor)
	if err != nil {
		return nil, wrapMessage(offset, "product definition", err)
	}
	if pdb.LevelTypeCorrected {
		p.cfg.sink.Warning("grib0: isobaric level with zero top/bottom rewritten to surface (level_type 100 -> 1)")
	}

	desc, err := p.resolveGridDescription(pdb)
	if err != nil {
		return nil, wrapMessage(offset, "grid description", err)
	}

	var bitmap *section.BitmapSection
	if pdb.HasBitmap {
		bitmap, err = section.ParseBitmap(p.cursor)
		if err != nil {
			return nil, wrapMessage(offset, "bitmap", err)
		}
	}

	ni, nj := desc.Dimensions()
	poleExtra := desc.PoleExtra()
	nExpected := ni*nj + absInt8(poleExtra)

	values, _, err := section.UnpackBinaryData(p.cursor, nExpected, pdb.DecimalScale)
	if err != nil {
		return nil, wrapMessage(offset, "binary data", err)
	}

	raw, poleDatum := splitPoleDatum(values, poleExtra)

	scanMode := desc.ScanMode()
	di, dj := desc.Deltas()
	normalised := grid.Normalise(raw, ni, nj, di, dj, scanMode)
	data, outNj := grid.SynthesisePole(normalised, ni, nj, poleExtra, poleDatum)

	left, bottom := grid.ScanDirection(scanMode, di, dj)
	mapProjection, err := buildMapProjection(desc, left, bottom)
	if err != nil {
		return nil, wrapMessage(offset, "map projection", err)
	}

	run, validBegin, validEnd, err := resolveTimestamps(pdb, p.cfg.centuryAnchor)
	if err != nil {
		return nil, wrapMessage(offset, "timestamp", err)
	}

	ids, err := p.cfg.identifiers.ResolveAll(
		pdb.CentreID, pdb.ModelID, int(pdb.Edition), pdb.Parameter,
		pdb.Level.Type, pdb.Level.Top, pdb.Level.Bottom,
	)
	if err != nil {
		return nil, wrapMessage(offset, "identifier", err)
	}

	if ids.ModelMissed && !p.reportedMisses[ids.Model] {
		p.reportedMisses[ids.Model] = true
		p.cfg.sink.Warning(fmt.Sprintf(
			"grib0: unrecognized centre %d / model %d, using %s", pdb.CentreID, pdb.ModelID, ids.Model))
	}
	if ids.ElementMissed && !p.reportedMisses[ids.Element] {
		p.reportedMisses[ids.Element] = true
		p.cfg.sink.Warning(fmt.Sprintf(
			"grib0: unrecognized parameter %d, using %s", pdb.Parameter, ids.Element))
	}

	return &DecodedField{
		Model:         ids.Model,
		Run:           run,
		ValidBegin:    validBegin,
		ValidEnd:      validEnd,
		Element:       ids.Element,
		Units:         ids.Units,
		Level:         ids.Level,
		MapProjection: mapProjection,
		Ni:            ni,
		Nj:            outNj,
		Data:          data,
		Bitmap:        bitmap,
		ComponentFlag: desc.ComponentFlag(),
	}, nil
}

// resolveGridDescription reads section 2 when the PDB says it is
// present, applying the CMC Di/Dj-swap quirk; otherwise it falls back
// to the injected predefined-grid catalogue.
func (p *Pipeline) resolveGridDescription(pdb *section.ProductDefinition) (*grid.Description, error) {
	if !pdb.HasGridDescription {
		return p.cfg.catalogue.Lookup(pdb.GridCatalogue)
	}

	desc, err := section.ParseGridDescription(p.cursor)
	if err != nil {
		return nil, err
	}

	if pdb.CentreID == 54 {
		switch desc.Representation {
		case grid.RepresentationLatLon:
			desc.LatLon.ApplyCMCSwap()
			p.cfg.sink.Warning("grib0: CMC centre 54 lat/lon grid: Di/Dj swapped per encoder quirk")
		case grid.RepresentationRotatedLatLon:
			desc.Rotated.ApplyCMCSwap()
			p.cfg.sink.Warning("grib0: CMC centre 54 rotated lat/lon grid: Di/Dj swapped per encoder quirk")
		}
	}

	return desc, nil
}

// splitPoleDatum separates the harvested pole sample (if any) from the
// Ni*Nj grid samples: the pole datum is packed before the grid when
// poleExtra is -1, after when +1.
func splitPoleDatum(values []float64, poleExtra int8) (raw []float64, poleDatum float64) {
	switch {
	case poleExtra < 0:
		return values[1:], values[0]
	case poleExtra > 0:
		return values[:len(values)-1], values[len(values)-1]
	default:
		return values, 0
	}
}

func absInt8(v int8) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}

// buildMapProjection dispatches to the projection package's per-variant
// builder.
func buildMapProjection(desc *grid.Description, left, bottom bool) (*projection.MapProjection, error) {
	switch desc.Representation {
	case grid.RepresentationLatLon:
		return projection.BuildLatLon(desc.LatLon, left, bottom), nil
	case grid.RepresentationGaussian:
		return projection.BuildLatLon(&grid.LatLonGrid{
			Ni: desc.Gaussian.Ni, Nj: desc.Gaussian.Nj,
			La1: desc.Gaussian.La1, Lo1: desc.Gaussian.Lo1,
			Di: desc.Gaussian.Di, Dj: 1,
		}, left, bottom), nil
	case grid.RepresentationPolarStereographic:
		return projection.BuildPolarStereo(desc.PolarStereo, left, bottom), nil
	case grid.RepresentationLambertConformal:
		return projection.BuildLambertConformal(desc.Lambert, left, bottom)
	case grid.RepresentationRotatedLatLon:
		return projection.BuildRotatedLatLon(desc.Rotated, left, bottom), nil
	default:
		return nil, grid.ErrUnknownRepresentation
	}
}
