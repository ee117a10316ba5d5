package gameboy

import "github.com/kirkNovitsky/gb-emulator/pkg/log"

// WithLogger replaces the default no-op logger.
func WithLogger(l log.Logger) Opt {
	return func(g *GameBoy) { g.log = l }
}

// Debug enables breakpoint logging: after a frame in which the LD B,B
// trap opcode ran, Step logs the program counter as it stands at the end
// of that frame and clears the CPU's Breakpoint flag. Without Debug the
// flag is set by the opcode and never cleared.
func Debug() Opt {
	return func(g *GameBoy) { g.debug = true }
}

// WithSaveData preloads cartridge RAM from previously saved bytes,
// for callers that already have the sidecar file's contents in hand
// rather than a path for Initialise to read itself.
func WithSaveData(data []byte) Opt {
	return func(g *GameBoy) { g.Bus.Cart.LoadRAM(data) }
}
