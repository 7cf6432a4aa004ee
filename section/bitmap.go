package section

import (
	"fmt"

	"github.com/wx-ingest/grib0/internal/bitio"
)

const (
	minBitmapLength = 6
	maxBitmapLength = 65536
)

// BitmapSection is the optional bit-mask section: one bit per grid
// point, set where the corresponding binary data sample is present and
// clear where it was dropped and should be reported as missing.
// Predefined bitmaps (NTable != 0) reference a catalogued mask rather
// than carrying one inline; this decoder only resolves the inline case.
type BitmapSection struct {
	Length int
	NTable int
	Bits   []byte // one bit per grid point, MSB-first within each byte
}

// ParseBitmap decodes the bitmap section starting at c's current
// position and leaves c positioned just past it.
func ParseBitmap(c *Cursor) (*BitmapSection, error) {
	start := c.Pos()
	r := bitio.NewReader(c.Remaining())

	length, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("section: bitmap: %w", err)
	}
	if int(length) < minBitmapLength || int(length) > maxBitmapLength {
		return nil, &SectionLengthOutOfRangeError{
			Section: "bitmap", Length: int(length),
			Min: minBitmapLength, Max: maxBitmapLength,
		}
	}

	if err := r.Skip(1); err != nil { // unused
		return nil, fmt.Errorf("section: bitmap: %w", err)
	}
	ntable, err := r.Uint16()
	if err != nil {
		return nil, fmt.Errorf("section: bitmap: %w", err)
	}

	bms := &BitmapSection{Length: int(length), NTable: int(ntable)}
	if ntable == 0 {
		bits, err := r.Bytes(int(length) - minBitmapLength)
		if err != nil {
			return nil, fmt.Errorf("section: bitmap: %w", err)
		}
		bms.Bits = bits
	}

	c.SeekTo(start + int(length))
	return bms, nil
}

// PopCount reports how many of the first n bits in b are set, i.e. how
// many grid points have a present sample.
func PopCount(b []byte, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		byteIdx, bitIdx := i/8, 7-i%8
		if byteIdx >= len(b) {
			break
		}
		if b[byteIdx]&(1<<uint(bitIdx)) != 0 {
			count++
		}
	}
	return count
}

// Set reports whether bit i (0-indexed, MSB-first) is set.
func (b *BitmapSection) Set(i int) bool {
	byteIdx, bitIdx := i/8, 7-i%8
	if byteIdx >= len(b.Bits) {
		return false
	}
	return b.Bits[byteIdx]&(1<<uint(bitIdx)) != 0
}
