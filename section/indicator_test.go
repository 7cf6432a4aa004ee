package section

import (
	"errors"
	"io"
	"testing"
)

func TestScanSentinelFindsLeadingMatch(t *testing.T) {
	c := NewCursor([]byte{'G', 'R', 'I', 'B', 0x01, 0x02})
	block, err := ScanSentinel(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.RecoveryPoint != 0 {
		t.Errorf("RecoveryPoint = %d, want 0", block.RecoveryPoint)
	}
	if c.Pos() != 4 {
		t.Errorf("Pos() = %d, want 4", c.Pos())
	}
}

func TestScanSentinelSkipsNoise(t *testing.T) {
	c := NewCursor([]byte{0xff, 0xff, 'G', 'R', 'I', 'B', 0x00})
	block, err := ScanSentinel(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.RecoveryPoint != 2 {
		t.Errorf("RecoveryPoint = %d, want 2", block.RecoveryPoint)
	}
}

func TestScanSentinelRecoversFromFalseStart(t *testing.T) {
	// "GRGRIB" - the first "GR" is a false start that must not prevent
	// matching the real sentinel starting at offset 2.
	c := NewCursor([]byte{'G', 'R', 'G', 'R', 'I', 'B'})
	block, err := ScanSentinel(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if block.RecoveryPoint != 2 {
		t.Errorf("RecoveryPoint = %d, want 2", block.RecoveryPoint)
	}
}

func TestScanSentinelCleanEOF(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})
	_, err := ScanSentinel(c)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestScanSentinelAbandonedMatch(t *testing.T) {
	c := NewCursor([]byte{0x00, 'G', 'R', 'I'})
	_, err := ScanSentinel(c)
	var notFound *SentinelNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want *SentinelNotFoundError", err)
	}
	if notFound.Offset != 1 {
		t.Errorf("Offset = %d, want 1", notFound.Offset)
	}
}
