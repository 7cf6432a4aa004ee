package bitio

import (
	"errors"
	"testing"
)

func TestBitReaderExtractRoundTrip(t *testing.T) {
	// Pack a handful of known-width values back to back into a buffer and
	// confirm Extract recovers each one at its recorded bit offset, per
	// round-trip property expected of any bit-field extractor.
	type field struct {
		firstBit int
		nBits    int
		value    uint64
	}

	buf := []byte{0b10110100, 0b01101011, 0b11110000, 0b00011101, 0b10101010}
	fields := []field{
		{0, 3, 0b101},
		{3, 5, 0b10100},
		{8, 1, 0},
		{9, 7, 0b1101011},
		{16, 12, 0b111100000001},
		{28, 1, 1},
		{29, 11, 0b10110101010},
	}

	br := NewBitReader(buf)
	for i, f := range fields {
		got, err := br.Extract(f.firstBit, f.nBits)
		if err != nil {
			t.Fatalf("field %d: Extract(%d, %d) error: %v", i, f.firstBit, f.nBits, err)
		}
		if got != f.value {
			t.Errorf("field %d: Extract(%d, %d) = %#b, want %#b", i, f.firstBit, f.nBits, got, f.value)
		}
	}
}

func TestBitReaderZeroWidth(t *testing.T) {
	br := NewBitReader([]byte{0xFF})
	got, err := br.Extract(3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("Extract(_, 0) = %d, want 0", got)
	}
}

func TestBitReaderFullWidthSpanningBytes(t *testing.T) {
	// 64-bit value starting at a non-byte-aligned offset spans 9 bytes.
	buf := []byte{0xFF, 0, 0, 0, 0, 0, 0, 0, 0xFF}
	br := NewBitReader(buf)
	got, err := br.Extract(1, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint64(0x7F)<<57 | 1
	if got != want {
		t.Errorf("Extract(1, 64) = %#x, want %#x", got, want)
	}
}

func TestBitReaderOutOfRange(t *testing.T) {
	br := NewBitReader([]byte{0x00, 0x00})
	_, err := br.Extract(10, 10)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestBitReaderInvalidWidth(t *testing.T) {
	br := NewBitReader([]byte{0x00})
	if _, err := br.Extract(0, 65); err == nil {
		t.Fatal("expected error for nBits > 64")
	}
	if _, err := br.Extract(0, -1); err == nil {
		t.Fatal("expected error for negative nBits")
	}
}

func TestReaderSignMagnitude24(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		want int32
	}{
		{"positive", []byte{0x00, 0x27, 0x10}, 10000},
		{"negative", []byte{0x80, 0x27, 0x10}, -10000},
		{"zero", []byte{0x00, 0x00, 0x00}, 0},
		{"negative zero reads as zero", []byte{0x80, 0x00, 0x00}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(tc.buf)
			got, err := r.SignMagnitude24()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("SignMagnitude24() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestReaderSignMagnitude16(t *testing.T) {
	r := NewReader([]byte{0x80, 0x0A})
	got, err := r.SignMagnitude16()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -10 {
		t.Errorf("SignMagnitude16() = %d, want -10", got)
	}
}

func TestReaderUint24(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01, 0x02})
	got, err := r.Uint24()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x0102 {
		t.Errorf("Uint24() = %#x, want %#x", got, 0x0102)
	}
}

func TestReaderUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.Uint16(); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}
