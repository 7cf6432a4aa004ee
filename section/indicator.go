package section

import "io"

const sentinel = "GRIB"

// IndicatorBlock is produced by a successful sentinel match. GRIB
// Edition 0 carries no real indicator-section payload (the edition and
// length fields used by later editions do not exist here); RecoveryPoint
// is the stream offset the pipeline seeks back to, plus one byte, if
// anything in this message fails to parse.
type IndicatorBlock struct {
	RecoveryPoint int
}

// ScanSentinel advances c byte by byte looking for the four-byte ASCII
// sentinel "GRIB", tolerating interleaved garbage: a non-matching byte
// does not necessarily restart the search from scratch, since that
// byte might itself begin a fresh match.
//
// Returns io.EOF (not an error) if the stream ends before any byte of
// the sentinel is matched. Returns a *SentinelNotFoundError if the
// stream ends in the middle of a partial match.
func ScanSentinel(c *Cursor) (*IndicatorBlock, error) {
	matched := 0
	startOffset := -1

	for {
		if c.AtEnd() {
			if matched == 0 {
				return nil, io.EOF
			}
			return nil, &SentinelNotFoundError{Offset: startOffset}
		}

		b := c.Remaining()[0]
		c.SeekTo(c.Pos() + 1)

		if b == sentinel[matched] {
			if matched == 0 {
				startOffset = c.Pos() - 1
			}
			matched++
			if matched == len(sentinel) {
				return &IndicatorBlock{RecoveryPoint: startOffset}, nil
			}
			continue
		}

		// Mismatch: the byte that broke the match might itself start a
		// new one.
		matched = 0
		if b == sentinel[0] {
			matched = 1
			startOffset = c.Pos() - 1
		}
	}
}
