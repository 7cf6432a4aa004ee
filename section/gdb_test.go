package section

import (
	"errors"
	"testing"

	"github.com/wx-ingest/grib0/grid"
)

func TestParseGridDescriptionLatLon(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x23, // length 35
		0,    // nv
		255,  // pv_or_pl
		0,    // representation: lat/lon
		0, 73, 0, 37, // Ni=73, Nj=37
		0x00, 0x00, 0x00, // La1 = 0
		0x00, 0x00, 0x00, // Lo1 = 0
		0x80,             // resolution flags
		0x00, 0x10, 0x00, // La2
		0x00, 0x10, 0x00, // Lo2
		0x01, 0x00, // Di
		0x00, 0xC8, // Dj
		0x40, // scan mode: north only
		0, 0, 0, 0, 0, 0, 0, // padding to reach declared length
	}

	desc, err := ParseGridDescription(NewCursor(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Representation != grid.RepresentationLatLon {
		t.Fatalf("Representation = %v, want lat/lon", desc.Representation)
	}
	if desc.LatLon.Ni != 73 || desc.LatLon.Nj != 37 {
		t.Errorf("dimensions = (%d, %d), want (73, 37)", desc.LatLon.Ni, desc.LatLon.Nj)
	}
	if desc.LatLon.Di != 0x0100 || desc.LatLon.Dj != 0x00C8 {
		t.Errorf("Di/Dj = (%d, %d), want (256, 200)", desc.LatLon.Di, desc.LatLon.Dj)
	}
}

func TestParseGridDescriptionSignedIncrements(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x23, // length 35
		0, 255,
		0,          // representation: lat/lon
		0, 4, 0, 3, // Ni=4, Nj=3
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0x80,
		0x00, 0x10, 0x00,
		0x00, 0x10, 0x00,
		0x81, 0x00, // Di: sign bit set, magnitude 256
		0x00, 0xC8, // Dj: +200
		0x00,
		0, 0, 0, 0, 0, 0, 0, // padding to reach declared length
	}

	desc, err := ParseGridDescription(NewCursor(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.LatLon.Di != -256 || desc.LatLon.Dj != 200 {
		t.Errorf("Di/Dj = (%d, %d), want (-256, 200)", desc.LatLon.Di, desc.LatLon.Dj)
	}
}

func TestParseGridDescriptionLengthOutOfRange(t *testing.T) {
	data := []byte{0x00, 0x00, 0x05, 0, 0, 0}
	_, err := ParseGridDescription(NewCursor(data))
	var rangeErr *SectionLengthOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("err = %v, want *SectionLengthOutOfRangeError", err)
	}
}

func TestParseGridDescriptionUnknownRepresentation(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x20, // length 32
		0, 255,
		99, // unknown representation
	}
	data = append(data, make([]byte, 32-len(data))...)

	_, err := ParseGridDescription(NewCursor(data))
	if !errors.Is(err, grid.ErrUnknownRepresentation) {
		t.Fatalf("err = %v, want ErrUnknownRepresentation", err)
	}
}
