// Package ppu implements the scanline-based display pipeline: it
// drives the LY/STAT mode state machine one frame at a time, stepping
// a CPU for each phase's fixed cycle budget, and rasterises the
// background and sprite layers into a Framebuffer. The window layer is
// not implemented.
package ppu

import "github.com/kirkNovitsky/gb-emulator/internal/interrupts"

// I/O register addresses the display controller owns.
const (
	RegLCDC uint16 = 0xFF40
	RegSTAT uint16 = 0xFF41
	RegSCY  uint16 = 0xFF42
	RegSCX  uint16 = 0xFF43
	RegLY   uint16 = 0xFF44
	RegLYC  uint16 = 0xFF45
	RegBGP  uint16 = 0xFF47
	RegOBP0 uint16 = 0xFF48
	RegOBP1 uint16 = 0xFF49
	RegWY   uint16 = 0xFF4A
	RegWX   uint16 = 0xFF4B
)

const (
	lcdcTileMapSelect  = 1 << 3
	lcdcTileDataSelect = 1 << 4
	lcdcObjSize        = 1 << 2

	statLYCSelect  = 1 << 6
	statOAMSelect  = 1 << 5
	statVBlankSelect = 1 << 4
	statHBlankSelect = 1 << 3
	statCoincidence  = 1 << 2
	statModeMask     = 0x03
)

const totalLines = 154

// Stepper is the CPU surface the display pipeline drives: one Step per
// call, returning the cycles that instruction (or interrupt dispatch)
// cost. *cpu.CPU satisfies it.
type Stepper interface {
	Step() uint8
}

// PPU owns the framebuffer and the per-line timing loop. It holds no
// video memory itself; tile data, tile maps, OAM, and its own registers
// all live on the bus, read and written like any other address.
type PPU struct {
	bus Bus
	irq *interrupts.Service

	Frame Framebuffer

	// debt carries cycles spent past a phase's budget (an interrupt
	// dispatch or a long instruction straddling the boundary) forward
	// to the next phase, per spec §4.3 point 6.
	debt int

	// lineDebt records debt as it stood at the end of each scanline of
	// the most recent RunFrame, for the cycle-debt diagnostic plot.
	lineDebt [totalLines]int
}

// LineDebt returns the per-scanline cycle-debt trace captured during
// the last RunFrame call.
func (p *PPU) LineDebt() []int {
	return p.lineDebt[:]
}

// New returns a PPU driving bus and requesting interrupts through irq.
func New(bus Bus, irq *interrupts.Service) *PPU {
	return &PPU{bus: bus, irq: irq}
}

func (p *PPU) reg(addr uint16) uint8          { return p.bus.ReadByte(addr) }
func (p *PPU) setReg(addr uint16, v uint8)    { p.bus.WriteByte(addr, v) }

// RunFrame drives one full frame: 154 scanlines, each updating LY and
// STAT, requesting interrupts, stepping stepper for the line's cycle
// budget, and (for visible lines) rendering one row.
func (p *PPU) RunFrame(stepper Stepper) {
	for ly := 0; ly < totalLines; ly++ {
		p.setReg(RegLY, uint8(ly))
		p.updateCoincidence(uint8(ly))
		p.setMode(p.reg(RegSTAT) &^ statModeMask)

		if ly < ScreenHeight {
			p.setMode(2)
			p.requestStatIfSelected(statOAMSelect)
			p.runCycles(stepper, 80)

			p.setMode(3)
			p.runCycles(stepper, 172)

			p.setMode(0)
			p.requestStatIfSelected(statHBlankSelect)
			p.runCycles(stepper, 204)

			p.renderScanline(uint8(ly))
		} else {
			p.setMode(1)
			if ly == ScreenHeight {
				p.irq.Request(interrupts.VBlank)
				p.requestStatIfSelected(statVBlankSelect)
			}
			p.runCycles(stepper, 456)
		}

		p.lineDebt[ly] = p.debt
	}
}

func (p *PPU) updateCoincidence(ly uint8) {
	stat := p.reg(RegSTAT)
	coincident := ly == p.reg(RegLYC)
	if coincident {
		stat |= statCoincidence
	} else {
		stat &^= statCoincidence
	}
	p.setReg(RegSTAT, stat)
	if coincident && stat&statLYCSelect != 0 {
		p.irq.Request(interrupts.LCDStat)
	}
}

func (p *PPU) setMode(mode uint8) {
	stat := p.reg(RegSTAT)
	p.setReg(RegSTAT, stat&^statModeMask|mode)
}

func (p *PPU) requestStatIfSelected(bit uint8) {
	if p.reg(RegSTAT)&bit != 0 {
		p.irq.Request(interrupts.LCDStat)
	}
}

// runCycles steps stepper until at least target cycles, net of any
// debt carried from the previous phase, have elapsed. Overshoot (or,
// for a hung CPU that never reaches the target, the shortfall) becomes
// the new debt.
func (p *PPU) runCycles(stepper Stepper, target int) {
	need := target - p.debt
	ran := 0
	for ran < need {
		cycles := int(stepper.Step())
		if cycles == 0 {
			break // undefined opcode: CPU is hung in place, stop spinning
		}
		ran += cycles
	}
	p.debt = ran - need
}

func (p *PPU) renderScanline(ly uint8) {
	bgp := p.reg(RegBGP)
	for x := 0; x < ScreenWidth; x++ {
		p.Frame[ly][x] = resolvePalette(bgp, 0)
	}

	p.renderSprites(ly, true)
	p.renderBackground(ly)
	p.renderSprites(ly, false)
}

func (p *PPU) renderBackground(ly uint8) {
	lcdc := p.reg(RegLCDC)
	bgp := p.reg(RegBGP)
	scy := p.reg(RegSCY)
	scx := int(p.reg(RegSCX))

	tileMapBase := uint16(0x9800)
	if lcdc&lcdcTileMapSelect != 0 {
		tileMapBase = 0x9C00
	}
	unsignedMode := lcdc&lcdcTileDataSelect != 0

	dy := int(ly) + int(scy)
	tileRow8 := uint16((dy / 8) % 32)
	tileLine := uint8(dy % 8)

	for col := 0; col < 32; col++ {
		tileNumber := p.bus.ReadByte(tileMapBase + tileRow8*32 + uint16(col))
		addr := tileDataAddress(unsignedMode, tileNumber)
		shades := tileRow(p.bus, addr, tileLine, false)

		for px := 0; px < 8; px++ {
			shade := shades[px]
			if shade == 0 {
				continue
			}
			screenX := ((col*8+px-scx)%256 + 256) % 256
			if screenX >= ScreenWidth {
				continue
			}
			p.Frame[ly][screenX] = resolvePalette(bgp, shade)
		}
	}
}

func (p *PPU) renderSprites(ly uint8, behindPass bool) {
	lcdc := p.reg(RegLCDC)
	tall := lcdc&lcdcObjSize != 0
	obp0 := p.reg(RegOBP0)
	obp1 := p.reg(RegOBP1)

	for i := 0; i < 40; i++ {
		s := readSprite(p.bus, i)
		if s.behindBackground() != behindPass {
			continue
		}
		tileNumber, row, ok := s.tileForRow(ly, tall)
		if !ok {
			continue
		}
		addr := uint16(0x8000) + uint16(tileNumber)*16
		shades := tileRow(p.bus, addr, row, s.flipX())
		palette := s.paletteRegister(obp0, obp1)

		for px := 0; px < 8; px++ {
			screenX := int(s.x) - 8 + px
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			shade := shades[px]
			if shade == 0 {
				continue
			}
			p.Frame[ly][screenX] = resolvePalette(palette, shade)
		}
	}
}
