package cpu

import "testing"

func TestAFRoundTrip(t *testing.T) {
	var r Registers
	r.SetAF(0x1234)
	if got := r.AF(); got != 0x1230 {
		t.Errorf("SetAF(0x1234); AF() = %#04x, want %#04x", got, 0x1230)
	}
	if r.F != 0x30 {
		t.Errorf("F = %#02x, want low nibble masked to zero", r.F)
	}
}

func TestRegisterPairs(t *testing.T) {
	cases := []struct {
		name string
		set  func(r *Registers, v uint16)
		get  func(r *Registers) uint16
	}{
		{"BC", (*Registers).SetBC, (*Registers).BC},
		{"DE", (*Registers).SetDE, (*Registers).DE},
		{"HL", (*Registers).SetHL, (*Registers).HL},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var r Registers
			c.set(&r, 0xBEEF)
			if got := c.get(&r); got != 0xBEEF {
				t.Errorf("got %#04x, want 0xBEEF", got)
			}
		})
	}
}

func TestRegister8Index(t *testing.T) {
	c := &CPU{}
	c.B, c.C, c.D, c.E, c.H, c.L, c.A = 1, 2, 3, 4, 5, 6, 7
	want := []uint8{1, 2, 3, 4, 5, 6, 0, 7}
	for i := uint8(0); i < 8; i++ {
		if i == 6 {
			continue
		}
		if got := *c.register8(i); got != want[i] {
			t.Errorf("register8(%d) = %d, want %d", i, got, want[i])
		}
	}
}

func TestRegister8IndexSixPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("register8(6) did not panic")
		}
	}()
	c := &CPU{}
	c.register8(6)
}

func TestRegister16AFIndexThreeMeansAF(t *testing.T) {
	c := &CPU{}
	c.setRegister16AF(3, 0xABCD)
	if got := c.AF(); got != 0xABC0 {
		t.Errorf("setRegister16AF(3, ...); AF() = %#04x, want %#04x", got, 0xABC0)
	}
	if got := c.register16SP(3); got != c.SP {
		t.Errorf("register16SP(3) should read SP, got %#04x want SP=%#04x", got, c.SP)
	}
}
