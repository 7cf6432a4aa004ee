// Package section decodes the five GRIB Edition 0 sections: the
// indicator block, the product definition block, the grid description
// block header, the optional bitmap section, and the binary data
// section header and payload. Each parser operates on a Cursor over the
// full concatenated message stream, so that a failed parse can report
// exactly how far it got and the pipeline can seek back to retry.
package section

// Cursor is a read cursor over an in-memory byte stream. GRIB Edition 0
// streams are a concatenation of complete messages with no outer
// framing, so loading the whole stream once and indexing into it is
// simpler and no less correct than chunked reads, and it makes the
// per-message recovery seek (see IndicatorBlock) a plain index
// assignment instead of an io.Seeker round trip.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data for sequential parsing starting at offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total length of the underlying stream.
func (c *Cursor) Len() int {
	return len(c.data)
}

// SeekTo moves the cursor to an absolute offset. Used for per-message
// recovery: on a parse failure, the pipeline seeks to the message's
// recovery point plus one byte and resumes the sentinel search there.
func (c *Cursor) SeekTo(pos int) {
	c.pos = pos
}

// Remaining returns the unconsumed tail of the stream.
func (c *Cursor) Remaining() []byte {
	return c.data[c.pos:]
}

// AtEnd reports whether the cursor has consumed the entire stream.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.data)
}
