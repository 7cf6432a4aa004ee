package tables

import (
	"errors"
	"testing"
)

func TestSimpleTableLookup(t *testing.T) {
	tbl := NewSimpleTable(map[int]string{1: "one", 2: "two"})

	if v, ok := tbl.Lookup(1); !ok || v != "one" {
		t.Errorf("Lookup(1) = %q, %v, want %q, true", v, ok, "one")
	}
	if _, ok := tbl.Lookup(3); ok {
		t.Error("Lookup(3) should miss")
	}
	if len(tbl.Keys()) != 2 {
		t.Errorf("Keys() len = %d, want 2", len(tbl.Keys()))
	}
}

func TestRangeTableExactBeatsRange(t *testing.T) {
	tbl := NewRangeTable(
		map[int]string{200: "explicit"},
		[]RangeEntry[string]{{Start: 192, End: 254, Value: "reserved for local use"}},
	)

	if v, ok := tbl.Lookup(200); !ok || v != "explicit" {
		t.Errorf("Lookup(200) = %q, %v, want explicit entry to win over range", v, ok)
	}
	if v, ok := tbl.Lookup(210); !ok || v != "reserved for local use" {
		t.Errorf("Lookup(210) = %q, %v, want range match", v, ok)
	}
	if _, ok := tbl.Lookup(1); ok {
		t.Error("Lookup(1) should miss: outside both exact entries and ranges")
	}
}

func TestResolveModelFallback(t *testing.T) {
	tbl := NewSimpleTable(map[ModelKey]*ModelEntry{
		{CentreID: 7, ModelID: 80}: {Label: "gfs"},
	})

	label, missed := ResolveModel(tbl, 7, 80)
	if missed || label != "gfs" {
		t.Errorf("ResolveModel(known) = %q, %v, want gfs, false", label, missed)
	}

	label, missed = ResolveModel(tbl, 34, 99)
	if !missed || label != "gribmodel:34:99" {
		t.Errorf("ResolveModel(unknown) = %q, %v, want gribmodel:34:99, true", label, missed)
	}

	label, missed = ResolveModel(nil, 1, 2)
	if !missed || label != "gribmodel:1:2" {
		t.Errorf("ResolveModel(nil table) = %q, %v, want gribmodel:1:2, true", label, missed)
	}
}

func TestResolveElementFallback(t *testing.T) {
	tbl := NewSimpleTable(map[ElementKey]*ElementEntry{
		{Source: "gfs", Edition: 0, Parameter: 11}: {Label: "TMP", Units: "K"},
	})

	label, units, missed := ResolveElement(tbl, "gfs", 0, 11)
	if missed || label != "TMP" || units != "K" {
		t.Errorf("ResolveElement(known) = %q, %q, %v, want TMP, K, false", label, units, missed)
	}

	label, units, missed = ResolveElement(tbl, "gfs", 0, 999)
	if !missed || label != "gribelement:999" || units != "" {
		t.Errorf("ResolveElement(unknown) = %q, %q, %v, want gribelement:999, \"\", true", label, units, missed)
	}
}

func TestResolveLevelBuiltins(t *testing.T) {
	cases := []struct {
		levelType, top, bottom int
		want                   string
	}{
		{100, 3, 104, "872mb"},     // top<<8|bottom = 3*256+104 = 872
		{101, 85, 100, "850-1000mb"},
		{102, 0, 0, "msl"},
		{107, 38, 222, "99sigma"}, // 38<<8|222 = 9950 ten-thousandths -> sigma*100 = 99
		{108, 50, 100, "50-100sigma"},
	}
	for _, c := range cases {
		got, err := ResolveLevel(nil, c.levelType, c.top, c.bottom)
		if err != nil {
			t.Errorf("ResolveLevel(%d, %d, %d) unexpected error: %v", c.levelType, c.top, c.bottom, err)
			continue
		}
		if got != c.want {
			t.Errorf("ResolveLevel(%d, %d, %d) = %q, want %q", c.levelType, c.top, c.bottom, got, c.want)
		}
	}
}

func TestResolveLevel850mb(t *testing.T) {
	// 850 = 0x0352: top=3, bottom=0x52=82.
	got, err := ResolveLevel(nil, 100, 3, 82)
	if err != nil {
		t.Fatalf("ResolveLevel: %v", err)
	}
	if got != "850mb" {
		t.Errorf("ResolveLevel(100, 3, 82) = %q, want 850mb", got)
	}
}

func TestResolveLevelTableFallback(t *testing.T) {
	tbl := NewSimpleTable(map[LevelKey]*LevelEntry{
		{LevelType: 200, Top: 1, Bottom: 0}: {Label: "tropopause"},
	})

	got, err := ResolveLevel(tbl, 200, 1, 0)
	if err != nil || got != "tropopause" {
		t.Errorf("ResolveLevel(table hit) = %q, %v, want tropopause, nil", got, err)
	}

	_, err = ResolveLevel(tbl, 201, 1, 0)
	if !errors.Is(err, ErrLevelLookupMiss) {
		t.Errorf("ResolveLevel(table miss) err = %v, want ErrLevelLookupMiss", err)
	}

	_, err = ResolveLevel(nil, 201, 1, 0)
	if !errors.Is(err, ErrLevelLookupMiss) {
		t.Errorf("ResolveLevel(nil table) err = %v, want ErrLevelLookupMiss", err)
	}
}

func TestIdentifierResolverResolveAll(t *testing.T) {
	resolver := &IdentifierResolver{
		Model: NewSimpleTable(map[ModelKey]*ModelEntry{
			{CentreID: 7, ModelID: 80}: {Label: "gfs"},
		}),
		Element: NewSimpleTable(map[ElementKey]*ElementEntry{
			{Source: "gfs", Edition: 0, Parameter: 11}: {Label: "temperature", Units: "K"},
		}),
	}

	ids, err := resolver.ResolveAll(7, 80, 0, 11, 100, 3, 104)
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if ids.Model != "gfs" || ids.ModelMissed {
		t.Errorf("Model = %q, missed=%v, want gfs, false", ids.Model, ids.ModelMissed)
	}
	if ids.Element != "temperature" || ids.Units != "K" || ids.ElementMissed {
		t.Errorf("Element = %q/%q, missed=%v, want temperature/K, false", ids.Element, ids.Units, ids.ElementMissed)
	}
	if ids.Level != "872mb" {
		t.Errorf("Level = %q, want 872mb", ids.Level)
	}
}

func TestIdentifierResolverResolveAllLevelMissFails(t *testing.T) {
	resolver := &IdentifierResolver{}
	_, err := resolver.ResolveAll(1, 2, 0, 11, 999, 0, 0)
	if !errors.Is(err, ErrLevelLookupMiss) {
		t.Errorf("ResolveAll level miss err = %v, want ErrLevelLookupMiss", err)
	}
}
