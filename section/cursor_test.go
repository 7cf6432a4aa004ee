package section

import "testing"

func TestCursorSeekAndRemaining(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
	c.SeekTo(2)
	if got := c.Remaining(); len(got) != 3 || got[0] != 3 {
		t.Errorf("Remaining() = %v, want [3 4 5]", got)
	}
	c.SeekTo(5)
	if !c.AtEnd() {
		t.Errorf("AtEnd() = false at offset 5 of a 5-byte buffer")
	}
}
