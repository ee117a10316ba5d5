package cartridge

// mbc1 holds the four pieces of MBC1 control state: the RAM-enable
// latch, the primary ROM bank register, the 2-bit secondary register,
// and the mode flag. See spec §3 "MBC1 state".
type mbc1 struct {
	ramEnabled bool
	primary    uint8 // low 7 bits of the 0x2000-0x3FFF write; bits 0-4 never all zero
	secondary  uint8 // 2 bits, written at 0x4000-0x5FFF
	ramMode    bool  // written at 0x6000-0x7FFF
}

// writeRAMEnable implements the 0x0000-0x1FFF control range.
func (m *mbc1) writeRAMEnable(value uint8) {
	m.ramEnabled = value&0x0F == 0x0A
}

// writePrimaryBank implements the 0x2000-0x3FFF control range. Writes of
// 0x00, 0x20, 0x40, 0x60 are reinterpreted as 0x01, 0x21, 0x41, 0x61 by
// setting bit 0 whenever the low five bits are zero — substitution
// happens into the stored register itself, not a local copy (see
// DESIGN.md, Open Question i).
func (m *mbc1) writePrimaryBank(value uint8) {
	value &= 0x7F
	if value&0x1F == 0 {
		value |= 0x01
	}
	m.primary = value
}

// writeSecondaryBank implements the 0x4000-0x5FFF control range.
func (m *mbc1) writeSecondaryBank(value uint8) {
	m.secondary = value & 0x03
}

// writeModeFlag implements the 0x6000-0x7FFF control range.
func (m *mbc1) writeModeFlag(value uint8) {
	m.ramMode = value&0x01 == 0x01
}

// romBank returns the effective bank selecting the 0x4000-0x7FFF window.
// In ROM-mode (ramMode == false) it is the primary register ORed with
// secondary<<5; in RAM-mode only the low five bits of primary are used.
func (m *mbc1) romBank() uint8 {
	if m.ramMode {
		return m.primary & 0x1F
	}
	return m.secondary<<5 | m.primary
}

// ramBank returns the effective cartridge-RAM bank. RAM is restricted to
// bank 0 unless in RAM-mode.
func (m *mbc1) ramBank() uint8 {
	if m.ramMode {
		return m.secondary
	}
	return 0
}
