package cpu

import "testing"

func TestFlagsLowNibbleAlwaysZero(t *testing.T) {
	for z := 0; z < 2; z++ {
		for n := 0; n < 2; n++ {
			for h := 0; h < 2; h++ {
				for c := 0; c < 2; c++ {
					f := flags(z == 1, n == 1, h == 1, c == 1)
					if f&0x0F != 0 {
						t.Fatalf("flags(%v,%v,%v,%v) = %#02x, low nibble not zero", z == 1, n == 1, h == 1, c == 1, f)
					}
				}
			}
		}
	}
}

func TestCondition(t *testing.T) {
	cases := []struct {
		index uint8
		f     uint8
		want  bool
	}{
		{0, 0, true},       // NZ, Z clear
		{0, FlagZ, false},  // NZ, Z set
		{1, FlagZ, true},   // Z, Z set
		{1, 0, false},      // Z, Z clear
		{2, 0, true},       // NC, C clear
		{2, FlagC, false},  // NC, C set
		{3, FlagC, true},   // C, C set
		{3, 0, false},      // C, C clear
	}
	for _, tc := range cases {
		c := &CPU{}
		c.F = tc.f
		if got := c.condition(tc.index); got != tc.want {
			t.Errorf("condition(%d) with F=%#02x = %v, want %v", tc.index, tc.f, got, tc.want)
		}
	}
}
