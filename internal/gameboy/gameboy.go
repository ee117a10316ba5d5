// Package gameboy implements the Host Seam: the narrow contract of
// Initialise/Step/SetInput/ReadFramebuffer that a frontend drives
// without ever touching the bus, CPU, or display pipeline directly.
package gameboy

import (
	"fmt"
	"os"

	"github.com/kirkNovitsky/gb-emulator/internal/bus"
	"github.com/kirkNovitsky/gb-emulator/internal/cartridge"
	"github.com/kirkNovitsky/gb-emulator/internal/cpu"
	"github.com/kirkNovitsky/gb-emulator/internal/interrupts"
	"github.com/kirkNovitsky/gb-emulator/internal/joypad"
	"github.com/kirkNovitsky/gb-emulator/internal/ppu"
	"github.com/kirkNovitsky/gb-emulator/pkg/log"
)

// Boot-state register values, per spec §6, applied in place of a boot
// ROM trace.
const (
	bootAF uint16 = 0x01B0
	bootBC uint16 = 0x0013
	bootDE uint16 = 0x00D8
	bootHL uint16 = 0x014D
	bootSP uint16 = 0xFFFE
	bootPC uint16 = 0x0100
)

// bootIORegisters covers the documented boot defaults for registers
// that affect emulation correctness, plus the inert audio registers
// that §6 lists as constants even though the sound generator itself is
// out of scope.
var bootIORegisters = map[uint16]uint8{
	0xFF05:     0x00, // TIMA
	0xFF06:     0x00, // TMA
	0xFF07:     0x00, // TAC
	ppu.RegLCDC: 0x91,
	ppu.RegSTAT: 0x00,
	ppu.RegSCY:  0x00,
	ppu.RegSCX:  0x00,
	ppu.RegLYC:  0x00,
	ppu.RegBGP:  0xFC,
	ppu.RegOBP0: 0xFF,
	ppu.RegOBP1: 0xFF,
	ppu.RegWY:   0x00,
	ppu.RegWX:   0x00,
	0xFF10:     0x80, // NR10
	0xFF11:     0xBF, // NR11
	0xFF12:     0xF3, // NR12
	0xFF14:     0xBF, // NR14
	0xFF16:     0x3F, // NR21
	0xFF17:     0x00, // NR22
	0xFF19:     0xBF, // NR24
	0xFF1A:     0x7F, // NR30
	0xFF1B:     0xFF, // NR31
	0xFF1C:     0x9F, // NR32
	0xFF1E:     0xBF, // NR33
	0xFF20:     0xFF, // NR41
	0xFF21:     0x00, // NR42
	0xFF22:     0x00, // NR43
	0xFF24:     0x77, // NR50
	0xFF25:     0xF3, // NR51
	0xFF26:     0xF1, // NR52
}

// GameBoy is the owned aggregate of bus, CPU, and display pipeline
// state, replacing the process-wide globals of the source (spec §9,
// "Global state").
type GameBoy struct {
	Bus *bus.Bus
	CPU *cpu.CPU
	PPU *ppu.PPU

	log   log.Logger
	debug bool
}

// Opt configures a GameBoy at construction time.
type Opt func(*GameBoy)

// New wires a GameBoy around the given ROM bytes and resets it to boot
// state. Prefer Initialise when loading from a file path, since it
// also handles archive extraction and sidecar save loading.
func New(rom []byte, opts ...Opt) *GameBoy {
	return assemble(cartridge.New(rom), opts)
}

// Initialise loads a ROM (optionally a .7z archive) from path,
// attempts to load a sidecar save file, and resets CPU, bus, and PPU
// registers to the documented boot state. It is the Go form of spec
// §4.4's Initialise(rom_path).
func Initialise(path string, opts ...Opt) (*GameBoy, error) {
	cart, err := cartridge.Load(path)
	if err != nil {
		return nil, fmt.Errorf("gameboy: initialise: %w", err)
	}
	return assemble(cart, opts), nil
}

func assemble(cart *cartridge.Cartridge, opts []Opt) *GameBoy {
	b := bus.New(cart)
	g := &GameBoy{
		Bus: b,
		CPU: cpu.New(b, b.Interrupts),
		PPU: ppu.New(b, b.Interrupts),
		log: log.NewNullLogger(),
	}
	g.resetBootState()
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GameBoy) resetBootState() {
	g.CPU.SetAF(bootAF)
	g.CPU.SetBC(bootBC)
	g.CPU.SetDE(bootDE)
	g.CPU.SetHL(bootHL)
	g.CPU.SP = bootSP
	g.CPU.PC = bootPC

	g.Bus.Interrupts.Enable = 0
	g.Bus.Interrupts.Flag = 0
	g.Bus.Interrupts.IME = false

	for addr, value := range bootIORegisters {
		g.Bus.WriteByte(addr, value)
	}
}

// Step advances exactly one frame: the display pipeline walks all 154
// scanlines, stepping the CPU for each phase's fixed cycle budget and
// rendering every visible line.
func (g *GameBoy) Step() {
	g.PPU.RunFrame(g.CPU)
	if g.debug && g.CPU.Breakpoint {
		g.log.Debugf("gameboy: breakpoint trap hit during frame, PC now %#04x", g.CPU.PC)
		g.CPU.Breakpoint = false
	}
}

// SetInput deposits the host's current 8-button state for the joypad
// register, requesting a Joypad interrupt if a newly pressed button
// belongs to the row the game has selected.
func (g *GameBoy) SetInput(buttons joypad.Buttons) {
	if g.Bus.Joypad.SetButtons(buttons) {
		g.Bus.Interrupts.Request(interrupts.Joypad)
	}
}

// ReadFramebuffer returns the most recently rendered 160x144 grayscale
// frame.
func (g *GameBoy) ReadFramebuffer() *ppu.Framebuffer {
	return &g.PPU.Frame
}

// WriteSaveFile persists cartridge RAM to its sidecar .sav path,
// the optional write-back spec §6 permits but does not require.
func (g *GameBoy) WriteSaveFile(romPath string) error {
	return os.WriteFile(cartridge.SavePath(romPath), g.Bus.Cart.SaveRAM(), 0o644)
}
