package section

import "testing"

func TestParseBitmapInline(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x08, // length 8 (6 header + 2 payload bytes)
		0x00,       // unused
		0x00, 0x00, // ntable 0: inline mask follows
		0b10110000, 0b00000001,
	}

	bms, err := ParseBitmap(NewCursor(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bms.NTable != 0 {
		t.Errorf("NTable = %d, want 0", bms.NTable)
	}
	if !bms.Set(0) || bms.Set(1) || !bms.Set(2) || !bms.Set(3) {
		t.Errorf("bit pattern mismatch: %08b %08b", bms.Bits[0], bms.Bits[1])
	}
	if !bms.Set(15) {
		t.Errorf("bit 15 should be set")
	}
}

func TestParseBitmapPredefined(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x06, // length 6: header only, no inline mask
		0x00,
		0x00, 0x05, // ntable 5: predefined mask, resolved elsewhere
	}

	bms, err := ParseBitmap(NewCursor(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bms.NTable != 5 {
		t.Errorf("NTable = %d, want 5", bms.NTable)
	}
	if bms.Bits != nil {
		t.Errorf("Bits = %v, want nil for a predefined bitmap", bms.Bits)
	}
}

func TestPopCount(t *testing.T) {
	bits := []byte{0b10110000, 0b00000001}
	if got := PopCount(bits, 16); got != 4 {
		t.Errorf("PopCount = %d, want 4", got)
	}
}
