package cpu

// addCarry computes a + b + carryIn as a three-input sum, per spec
// Design Note (iv): half-carry and carry are evaluated against the
// combined sum rather than pre-adding the carry into b first, which
// would mis-set half-carry when b+carryIn overflows into bit 4.
func addCarry(a, b, carryIn uint8) (result uint8, h, c bool) {
	var ci uint16
	if carryIn != 0 {
		ci = 1
	}
	sum := uint16(a) + uint16(b) + ci
	h = (uint16(a&0x0F) + uint16(b&0x0F) + ci) > 0x0F
	c = sum > 0xFF
	result = uint8(sum)
	return
}

// subCarry computes a - b - carryIn as a three-input difference, with
// half-carry and carry evaluated against the combined difference.
func subCarry(a, b, carryIn uint8) (result uint8, h, c bool) {
	var ci int16
	if carryIn != 0 {
		ci = 1
	}
	diff := int16(a) - int16(b) - ci
	h = (int16(a&0x0F) - int16(b&0x0F) - ci) < 0
	c = diff < 0
	result = uint8(diff)
	return
}

// add8 performs an 8-bit ADD/ADC and returns the result with flags set
// per spec §4.2 Add8(a,b,use_c).
func (c *CPU) add8(a, b uint8, useCarry bool) uint8 {
	var carryIn uint8
	if useCarry && c.flagSet(FlagC) {
		carryIn = 1
	}
	result, h, carry := addCarry(a, b, carryIn)
	c.F = flags(result == 0, false, h, carry)
	return result
}

// sub8 performs an 8-bit SUB/SBC/CP and returns the result with flags
// set per spec §4.2 Sub8(a,b,use_c).
func (c *CPU) sub8(a, b uint8, useCarry bool) uint8 {
	var carryIn uint8
	if useCarry && c.flagSet(FlagC) {
		carryIn = 1
	}
	result, h, carry := subCarry(a, b, carryIn)
	c.F = flags(result == 0, true, h, carry)
	return result
}

// and8 performs A AND n.
func (c *CPU) and8(a, b uint8) uint8 {
	result := a & b
	c.F = flags(result == 0, false, true, false)
	return result
}

// or8 performs A OR n.
func (c *CPU) or8(a, b uint8) uint8 {
	result := a | b
	c.F = flags(result == 0, false, false, false)
	return result
}

// xor8 performs A XOR n.
func (c *CPU) xor8(a, b uint8) uint8 {
	result := a ^ b
	c.F = flags(result == 0, false, false, false)
	return result
}

// inc8 increments an 8-bit value, setting Z, N=0, H; carry is left as
// it was.
func (c *CPU) inc8(v uint8) uint8 {
	h := v&0x0F == 0x0F
	result := v + 1
	c.F = flags(result == 0, false, h, c.flagSet(FlagC))
	return result
}

// dec8 decrements an 8-bit value, setting Z, N=1, H; carry is left as
// it was.
func (c *CPU) dec8(v uint8) uint8 {
	h := v&0x0F == 0x00
	result := v - 1
	c.F = flags(result == 0, true, h, c.flagSet(FlagC))
	return result
}

// addHL16 implements ADD HL,rr: Z untouched, N=0, H/C from the 16-bit
// carry-out rules.
func (c *CPU) addHL16(b uint16) {
	a := c.HL()
	h := (a&0x0FFF)+(b&0x0FFF) > 0x0FFF
	carry := uint32(a)+uint32(b) > 0xFFFF
	c.SetHL(a + b)
	c.F = flags(c.flagSet(FlagZ), false, h, carry)
}

// addSPSigned implements ADD SP,e / the LD HL,SP+e addressing helper:
// SP plus a signed 8-bit displacement, with Z and N always cleared and
// H/C computed as if the low byte of SP and the displacement were added
// as unsigned 8-bit operands.
func (c *CPU) addSPSigned(e int8) uint16 {
	result := uint16(int32(c.SP) + int32(e))
	tmp := c.SP ^ uint16(int16(e)) ^ result
	c.F = flags(false, false, tmp&0x10 != 0, tmp&0x100 != 0)
	return result
}

// daa performs the BCD adjustment of A, per spec §4.2. Z is computed as
// A == 0 (spec Design Note ii corrects the source's inverted check); H
// is always cleared afterward; C is never cleared, only possibly set.
func (c *CPU) daa() {
	a := c.A
	carry := c.flagSet(FlagC)
	half := c.flagSet(FlagH)
	sub := c.flagSet(FlagN)

	if !sub {
		// Both checks look at A as it was before adjustment; the low
		// nibble is unchanged by +0x60, so the order is safe.
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if half || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if half {
			a -= 0x06
		}
		if carry {
			a -= 0x60
		}
	}

	c.A = a
	c.F = flags(c.A == 0, sub, false, carry)
}

// cpl complements A: A = ~A; N=1, H=1; Z, C untouched.
func (c *CPU) cpl() {
	c.A = ^c.A
	c.F = flags(c.flagSet(FlagZ), true, true, c.flagSet(FlagC))
}

// scf sets the carry flag: N=0, H=0; Z untouched.
func (c *CPU) scf() {
	c.F = flags(c.flagSet(FlagZ), false, false, true)
}

// ccf toggles the carry flag: N=0, H=0; Z untouched.
func (c *CPU) ccf() {
	c.F = flags(c.flagSet(FlagZ), false, false, !c.flagSet(FlagC))
}
