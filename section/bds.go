package section

import (
	"fmt"
	"math"

	"github.com/wx-ingest/grib0/ibmfloat"
	"github.com/wx-ingest/grib0/internal/bitio"
)

const (
	minBinaryDataLength = 11
	maxBinaryDataLength = 1 << 20
)

// BinaryDataHeader is the fixed-width header preceding the packed
// samples in the binary data section: the binary scale factor E, the
// reference value R, and the number of bits used to pack each sample.
// A BitsPerValue of 0 means every sample equals R; no packed bits
// follow the header at all.
type BinaryDataHeader struct {
	Length       int
	Flags        uint8
	BinaryScale  int16
	Reference    float64
	BitsPerValue int
}

func parseBinaryDataHeader(r *bitio.Reader) (*BinaryDataHeader, error) {
	length, err := r.Uint24()
	if err != nil {
		return nil, fmt.Errorf("section: binary data: %w", err)
	}
	if int(length) < minBinaryDataLength || int(length) > maxBinaryDataLength {
		return nil, &SectionLengthOutOfRangeError{
			Section: "binary data", Length: int(length),
			Min: minBinaryDataLength, Max: maxBinaryDataLength,
		}
	}

	flags, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: binary data: %w", err)
	}
	e, err := r.SignMagnitude16()
	if err != nil {
		return nil, fmt.Errorf("section: binary data: %w", err)
	}
	rBytes, err := r.Bytes(4)
	if err != nil {
		return nil, fmt.Errorf("section: binary data: %w", err)
	}
	bitsPerValue, err := r.Uint8()
	if err != nil {
		return nil, fmt.Errorf("section: binary data: %w", err)
	}

	var rArr [4]byte
	copy(rArr[:], rBytes)

	return &BinaryDataHeader{
		Length:       int(length),
		Flags:        flags,
		BinaryScale:  e,
		Reference:    ibmfloat.Decode32(rArr),
		BitsPerValue: int(bitsPerValue),
	}, nil
}

// UnpackBinaryData decodes the binary data section starting at c's
// current position: the header described by BinaryDataHeader, followed
// by nSamples packed values (or, when BitsPerValue is 0, no packed bits
// at all — every sample is the header's reference value), followed
// immediately by the "7777" message trailer. c is left positioned just
// past the trailer on success.
//
// The unpacking formula is value = (R + X*2^E) / 10^D, where X is the
// raw unsigned integer extracted for each sample and D is the decimal
// scale factor carried in the product definition block.
func UnpackBinaryData(c *Cursor, nSamples int, decimalScale int16) ([]float64, *BinaryDataHeader, error) {
	start := c.Pos()
	r := bitio.NewReader(c.Remaining())

	header, err := parseBinaryDataHeader(r)
	if err != nil {
		return nil, nil, err
	}

	headerBytes := r.Offset()
	packedBytes := header.Length - headerBytes
	if packedBytes < 0 {
		return nil, nil, &SectionLengthOutOfRangeError{
			Section: "binary data", Length: header.Length,
			Min: headerBytes, Max: maxBinaryDataLength,
		}
	}

	values := make([]float64, nSamples)
	decimalFactor := math.Pow(10, float64(decimalScale))
	binaryFactor := math.Ldexp(1, int(header.BinaryScale))

	if header.BitsPerValue == 0 {
		constant := header.Reference / decimalFactor
		for i := range values {
			values[i] = constant
		}
	} else {
		available := packedBytes * 8 / header.BitsPerValue
		if available < nSamples {
			return nil, nil, &DataSizeMismatchError{Expected: nSamples, Actual: available}
		}

		packed, err := r.Bytes(packedBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("section: binary data: %w", err)
		}
		br := bitio.NewBitReader(packed)
		for i := range values {
			raw, err := br.Extract(i*header.BitsPerValue, header.BitsPerValue)
			if err != nil {
				return nil, nil, fmt.Errorf("section: binary data: sample %d: %w", i, err)
			}
			values[i] = (header.Reference + float64(raw)*binaryFactor) / decimalFactor
		}
	}

	sectionEnd := start + header.Length
	c.SeekTo(sectionEnd)

	trailer, err := bitio.NewReader(c.Remaining()).Bytes(4)
	if err != nil {
		return nil, nil, fmt.Errorf("section: trailer: %w", err)
	}
	var got [4]byte
	copy(got[:], trailer)
	if string(got[:]) != "7777" {
		return nil, nil, &TrailerMismatchError{Got: got}
	}
	c.SeekTo(sectionEnd + 4)

	return values, header, nil
}
