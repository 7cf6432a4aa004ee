package ibmfloat

import "testing"

func TestDecode32(t *testing.T) {
	cases := []struct {
		name string
		bits [4]byte
		want float64
	}{
		{"zero", [4]byte{0x00, 0x00, 0x00, 0x00}, 0.0},
		{"fractional value below the radix point", [4]byte{0x40, 0x10, 0x00, 0x00}, 0.0625},
		{"positive value with excess-64 exponent 2", [4]byte{0x42, 0x80, 0x00, 0x00}, 128.0},
		{"sign bit flips the same magnitude", [4]byte{0xC2, 0x80, 0x00, 0x00}, -128.0},
		{"large exponent scales the mantissa up", [4]byte{0x46, 0x80, 0x00, 0x00}, 8388608.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode32(tc.bits)
			if got != tc.want {
				t.Errorf("Decode32(%v) = %v, want %v", tc.bits, got, tc.want)
			}
		})
	}
}
