package gameboy

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/google/brotli/go/cbrotli"
)

// snapshot is the debug/regression-capture state: CPU registers,
// IME/IE/IF, and the bus's own RAM arrays (VRAM, WRAM, OAM, I/O, HRAM).
// Cartridge RAM, the MBC1 bank registers, and the joypad register are
// not captured. It is distinct from the
// raw, uncompressed .sav contract of spec §6 — this format exists only
// for DumpSnapshot/LoadSnapshot and is never read by the core itself.
type snapshot struct {
	ROMDigest              uint64
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	IE, IF                 uint8
	IME                    bool
	VRAM                   [0x2000]byte
	WRAM0, WRAM1           [0x1000]byte
	OAM                    [0x00A0]byte
	IO                     [0x0080]byte
	HRAM                   [0x007F]byte
}

// DumpSnapshot serialises the current CPU and bus state and compresses
// it with brotli, for compact debug storage. The snapshot is tagged
// with the cartridge ROM's digest so LoadSnapshot can refuse to apply
// it against a different ROM.
func (g *GameBoy) DumpSnapshot() ([]byte, error) {
	snap := snapshot{
		ROMDigest: g.Bus.Cart.Digest(),
		A:         g.CPU.A, F: g.CPU.F, B: g.CPU.B, C: g.CPU.C,
		D: g.CPU.D, E: g.CPU.E, H: g.CPU.H, L: g.CPU.L,
		SP: g.CPU.SP, PC: g.CPU.PC,
		IE: g.Bus.Interrupts.Enable, IF: g.Bus.Interrupts.Flag, IME: g.Bus.Interrupts.IME,
		VRAM: g.Bus.VRAM, WRAM0: g.Bus.WRAM0, WRAM1: g.Bus.WRAM1,
		OAM: g.Bus.OAM, IO: g.Bus.IO, HRAM: g.Bus.HRAM,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&snap); err != nil {
		return nil, fmt.Errorf("gameboy: encode snapshot: %w", err)
	}
	return cbrotli.Encode(buf.Bytes(), cbrotli.WriterOptions{Quality: 9})
}

// LoadSnapshot restores CPU and bus state from a snapshot produced by
// DumpSnapshot. It refuses to load a snapshot captured against a
// different ROM.
func (g *GameBoy) LoadSnapshot(data []byte) error {
	raw, err := cbrotli.Decode(data)
	if err != nil {
		return fmt.Errorf("gameboy: decode snapshot: %w", err)
	}

	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&snap); err != nil {
		return fmt.Errorf("gameboy: decode snapshot: %w", err)
	}

	if want := g.Bus.Cart.Digest(); snap.ROMDigest != want {
		return fmt.Errorf("gameboy: snapshot ROM digest %#x does not match loaded cartridge %#x", snap.ROMDigest, want)
	}

	g.CPU.A, g.CPU.F, g.CPU.B, g.CPU.C = snap.A, snap.F, snap.B, snap.C
	g.CPU.D, g.CPU.E, g.CPU.H, g.CPU.L = snap.D, snap.E, snap.H, snap.L
	g.CPU.SP, g.CPU.PC = snap.SP, snap.PC
	g.Bus.Interrupts.Enable, g.Bus.Interrupts.Flag, g.Bus.Interrupts.IME = snap.IE, snap.IF, snap.IME
	g.Bus.VRAM, g.Bus.WRAM0, g.Bus.WRAM1 = snap.VRAM, snap.WRAM0, snap.WRAM1
	g.Bus.OAM, g.Bus.IO, g.Bus.HRAM = snap.OAM, snap.IO, snap.HRAM
	return nil
}
