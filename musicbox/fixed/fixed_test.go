package fixed

import (
	"testing"
)

func TestFromIntRoundTrip(t *testing.T) {
	tests := []struct {
		n        uint8
		expected Q8_8
	}{
		{0, 0x0000},
		{1, 0x0100},
		{15, 0x0F00},
		{255, 0xFF00},
	}

	for _, tt := range tests {
		q := FromInt(tt.n)
		if q != tt.expected {
			t.Errorf("FromInt(%d) = %#04x; want %#04x", tt.n, uint16(q), uint16(tt.expected))
		}
		if q.Int() != tt.n || q.Frac() != 0 {
			t.Errorf("FromInt(%d) parts = (%d, %d); want (%d, 0)", tt.n, q.Int(), q.Frac(), tt.n)
		}
	}
}

func TestIntFrac(t *testing.T) {
	q := Q8_8(0x0A80)
	if q.Int() != 10 || q.Frac() != 0x80 {
		t.Errorf("Q8_8(0x0A80) = (%d, %#x); want (10, 0x80)", q.Int(), q.Frac())
	}
}

func TestSignedHelpers(t *testing.T) {
	tests := []struct {
		s        SQ8_8
		mag      Q8_8
		withSign SQ8_8
	}{
		{120, 120, 60},
		{-120, 120, -60},
		{0, 0, 60},
		{-1, 1, -60},
	}

	for _, tt := range tests {
		if tt.s.Abs() != tt.mag {
			t.Errorf("SQ8_8(%d).Abs() = %d; want %d", tt.s, tt.s.Abs(), tt.mag)
		}
		if got := tt.s.WithSign(60); got != tt.withSign {
			t.Errorf("SQ8_8(%d).WithSign(60) = %d; want %d", tt.s, got, tt.withSign)
		}
	}

	if got := SQ8_8(-5).WithSign(0xFFFF); got != -MaxSQ8_8 {
		t.Errorf("WithSign should saturate magnitude, got %d", got)
	}
	if SQ8_8(-32768).Abs() != 0x8000 {
		t.Errorf("Abs of the most negative value should not overflow")
	}
}

func TestDivisions(t *testing.T) {
	tests := []struct {
		num, den    uint32
		ceil, round uint32
	}{
		{3840, 128, 30, 30},
		{3840, 132, 30, 29},
		{3840, 8, 480, 480},
		{7, 2, 4, 4},
		{5, 3, 2, 2},
		{1, 3, 1, 0},
	}

	for _, tt := range tests {
		if got := CeilDiv(tt.num, tt.den); got != tt.ceil {
			t.Errorf("CeilDiv(%d, %d) = %d; want %d", tt.num, tt.den, got, tt.ceil)
		}
		if got := RoundDiv(tt.num, tt.den); got != tt.round {
			t.Errorf("RoundDiv(%d, %d) = %d; want %d", tt.num, tt.den, got, tt.round)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-3, 1, 127) != 1 || Clamp(200, 1, 127) != 127 || Clamp(60, 1, 127) != 60 {
		t.Errorf("Clamp returned an out of range value")
	}
}
