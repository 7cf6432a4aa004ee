package tables

import (
	"errors"
	"fmt"
)

// ErrLevelLookupMiss is returned by ResolveLevel when level_type matches
// none of the built-in formats and the injected LevelTable (if any) also
// misses. Unlike model/element resolution, a level miss is fatal: there
// is no synthetic fallback label for levels.
var ErrLevelLookupMiss = errors.New("tables: level lookup miss")

// ModelKey identifies an originating centre and its model/generating
// process id.
type ModelKey struct {
	CentreID int
	ModelID  int
}

// ModelEntry is a resolved model source label.
type ModelEntry struct {
	Label string
}

// ElementKey identifies a decoded parameter, scoped by the model source
// label so a centre can override another's element table.
type ElementKey struct {
	Source    string
	Edition   int
	Parameter int
}

// ElementEntry is a resolved element label and its unit string.
type ElementEntry struct {
	Label string
	Units string
}

// LevelKey identifies a level by its type code and its two level octets
// exactly as read from the product definition. A level type whose single
// value spans both octets has it split across Top (high byte) and Bottom
// (low byte).
type LevelKey struct {
	LevelType int
	Top       int
	Bottom    int
}

// LevelEntry is a resolved level label.
type LevelEntry struct {
	Label string
}

// ModelTable resolves (centre, model) pairs. A nil ModelTable is valid and
// always misses.
type ModelTable = Table[ModelKey, *ModelEntry]

// ElementTable resolves (source, edition, parameter) triples.
type ElementTable = Table[ElementKey, *ElementEntry]

// LevelTable resolves level types the builtin formatting in
// identifier.go does not already special-case.
type LevelTable = Table[LevelKey, *LevelEntry]

// ResolveModel looks up a model label, falling back to the synthetic
// "gribmodel:<centre>:<model>" label on miss. The miss is soft: it never
// fails the decode, only the returned bool flags it for diagnostics.
func ResolveModel(table ModelTable, centreID, modelID int) (label string, missed bool) {
	if table != nil {
		if e, ok := table.Lookup(ModelKey{CentreID: centreID, ModelID: modelID}); ok {
			return e.Label, false
		}
	}
	return fmt.Sprintf("gribmodel:%d:%d", centreID, modelID), true
}

// ResolveElement looks up an element label and units, falling back to the
// synthetic "gribelement:<parameter>" label with empty units on miss. Also
// soft: never fails the decode.
func ResolveElement(table ElementTable, source string, edition, parameter int) (label, units string, missed bool) {
	if table != nil {
		if e, ok := table.Lookup(ElementKey{Source: source, Edition: edition, Parameter: parameter}); ok {
			return e.Label, e.Units, false
		}
	}
	return fmt.Sprintf("gribelement:%d", parameter), "", true
}

// ResolveLevel formats a level label. Level types 100, 101, 102, 107,
// and 108 are formatted directly from the encoded top/bottom values
// with no table lookup at all; every other type is looked up in table,
// which is an injected, open-ended extension point for levels this
// decoder does not hard-code. An unresolved level type (no built-in
// format, table nil or missing the key) is a hard error; there is no
// synthetic fallback label for levels the way there is for models and
// elements.
func ResolveLevel(table LevelTable, levelType, top, bottom int) (string, error) {
	switch levelType {
	case 100: // isobaric, single value in hPa
		return fmt.Sprintf("%dmb", top<<8|bottom), nil
	case 101: // layer between two isobaric surfaces, values in tens of hPa
		return fmt.Sprintf("%d-%dmb", top*10, bottom*10), nil
	case 102: // mean sea level
		return "msl", nil
	case 107: // sigma level, encoded in ten-thousandths; label carries sigma*100
		return fmt.Sprintf("%dsigma", (top<<8|bottom)/100), nil
	case 108: // layer between two sigma levels
		return fmt.Sprintf("%d-%dsigma", top, bottom), nil
	}

	if table != nil {
		if e, ok := table.Lookup(LevelKey{LevelType: levelType, Top: top, Bottom: bottom}); ok {
			return e.Label, nil
		}
	}
	return "", fmt.Errorf("%w: level_type %d (top=%d, bottom=%d)", ErrLevelLookupMiss, levelType, top, bottom)
}

// Identifiers is the batch of textual labels ResolveAll produces for one
// field: model, element+units, and level, plus the soft-miss flags for
// the two lookups that degrade gracefully instead of failing.
type Identifiers struct {
	Model       string
	ModelMissed bool

	Element       string
	Units         string
	ElementMissed bool

	Level string
}

// IdentifierResolver bundles the three lookup tables behind a single
// ResolveAll call: one batch translation step after a field decodes,
// rather than a sequence of calls the caller must remember to run in
// order.
type IdentifierResolver struct {
	Model   ModelTable
	Element ElementTable
	Level   LevelTable
}

// ResolveAll translates a product definition's coded fields into
// textual labels. Model and element misses are soft (a synthetic label
// is substituted and the corresponding Missed flag is set); a level
// miss is hard and fails the whole call, since there is no fallback
// label for an unresolved level.
func (r *IdentifierResolver) ResolveAll(centreID, modelID, edition, parameter, levelType, levelTop, levelBottom int) (Identifiers, error) {
	model, modelMissed := ResolveModel(r.Model, centreID, modelID)
	element, units, elementMissed := ResolveElement(r.Element, model, edition, parameter)
	level, err := ResolveLevel(r.Level, levelType, levelTop, levelBottom)
	if err != nil {
		return Identifiers{}, err
	}
	return Identifiers{
		Model:         model,
		ModelMissed:   modelMissed,
		Element:       element,
		Units:         units,
		ElementMissed: elementMissed,
		Level:         level,
	}, nil
}
