package section

import (
	"errors"
	"testing"
)

func TestParseProductDefinitionMinimalLength(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x18, // length 24
		0,               // edition
		7,               // centre
		2,               // model
		27,              // grid catalogue
		0xC0,            // flags: has grid description, has bitmap
		11,              // parameter
		100, 0, 0,       // level type 100, top 0, bottom 0 -> corrected to 1
		23, 6, 15, 12, 0, // reference time
		1,    // forecast unit
		12,   // t1
		0,    // t2
		0,    // range type
		0, 0, // n averaged
		0, // n missing
	}

	pdb, err := ParseProductDefinition(NewCursor(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pdb.CentreID != 7 || pdb.ModelID != 2 || pdb.GridCatalogue != 27 {
		t.Errorf("identity fields = %+v", pdb)
	}
	if !pdb.HasGridDescription || !pdb.HasBitmap {
		t.Errorf("flags not decoded: %+v", pdb)
	}
	if pdb.Level.Type != 1 || !pdb.LevelTypeCorrected {
		t.Errorf("level type quirk not applied: %+v", pdb.Level)
	}
	if pdb.DecimalScale != 0 {
		t.Errorf("DecimalScale = %d, want 0 for a 24-byte PDB", pdb.DecimalScale)
	}
}

func TestParseProductDefinitionWithDecimalScale(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x1a, // length 26
		0, 7, 2, 27,
		0x00, // no grid description, no bitmap
		11,
		2, 0, 10, // level type 2 (not the quirk), top 0, bottom 10
		23, 6, 15, 12, 0,
		1, 12, 0, 0,
		0, 0,
		0,
		0x80, 0x02, // D = -2
	}

	pdb, err := ParseProductDefinition(NewCursor(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pdb.DecimalScale != -2 {
		t.Errorf("DecimalScale = %d, want -2", pdb.DecimalScale)
	}
	if pdb.LevelTypeCorrected {
		t.Errorf("LevelTypeCorrected should not trigger for level type 2")
	}
	if pdb.HasGridDescription || pdb.HasBitmap {
		t.Errorf("flags should both be clear: %+v", pdb)
	}
}

func TestParseProductDefinitionLengthOutOfRange(t *testing.T) {
	data := []byte{0x00, 0x00, 0x05} // length 5, below the 24-byte minimum
	_, err := ParseProductDefinition(NewCursor(data))
	var rangeErr *SectionLengthOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("err = %v, want *SectionLengthOutOfRangeError", err)
	}
}
