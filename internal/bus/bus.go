// Package bus implements the Game Boy's uniform 16-bit memory map: fixed
// and banked ROM, VRAM, banked cartridge RAM, two work-RAM banks, their
// echo mirror, OAM, the I/O register window, high RAM, and the
// interrupt-enable register. MBC1 control writes and the OAM DMA
// transfer are intercepted here rather than stored as plain bytes.
package bus

import (
	"fmt"

	"github.com/kirkNovitsky/gb-emulator/internal/cartridge"
	"github.com/kirkNovitsky/gb-emulator/internal/interrupts"
	"github.com/kirkNovitsky/gb-emulator/internal/joypad"
)

// Hardware register addresses the bus gives special treatment, beyond
// plain passive I/O storage.
const (
	RegJoypad   uint16 = 0xFF00
	RegIF       uint16 = 0xFF0F
	RegDMA      uint16 = 0xFF46
	RegIE       uint16 = 0xFFFF
	unusableLow uint16 = 0xFEA0
	unusableHi  uint16 = 0xFF00
)

// Bus owns every backing array in the address space and dispatches
// reads and writes to it by address range. No region hands out a
// pointer into its storage — callers always go through Read/Write.
type Bus struct {
	Cart       *cartridge.Cartridge
	Joypad     *joypad.State
	Interrupts *interrupts.Service

	VRAM  [0x2000]byte
	WRAM0 [0x1000]byte
	WRAM1 [0x1000]byte
	OAM   [0x00A0]byte
	IO    [0x0080]byte
	HRAM  [0x007F]byte
}

// New returns a Bus wired to the given cartridge, with fresh joypad and
// interrupt state and all RAM zeroed.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{
		Cart:       cart,
		Joypad:     joypad.New(),
		Interrupts: interrupts.NewService(),
	}
}

// ReadByte dispatches a single-byte read per spec §4.1.
func (b *Bus) ReadByte(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return b.Cart.ReadROMLow(address)
	case address < 0x8000:
		return b.Cart.ReadROMHigh(address)
	case address < 0xA000:
		return b.VRAM[address-0x8000]
	case address < 0xC000:
		return b.Cart.ReadRAM(address)
	case address < 0xD000:
		return b.WRAM0[address-0xC000]
	case address < 0xE000:
		return b.WRAM1[address-0xD000]
	case address < 0xFE00:
		return b.ReadByte(address - 0x2000) // echo of 0xC000-0xDDFF
	case address < unusableLow:
		return b.OAM[address-0xFE00]
	case address < unusableHi:
		return 0xFF // unusable range always reads high
	case address < 0xFF80:
		return b.readIO(address)
	case address < RegIE:
		return b.HRAM[address-0xFF80]
	case address == RegIE:
		return b.Interrupts.Read(address)
	}
	panic(fmt.Sprintf("bus: address %#04x not covered by any region", address))
}

// WriteByte dispatches a single-byte write per spec §4.1, intercepting
// MBC1 control ranges and the DMA trigger before storage.
func (b *Bus) WriteByte(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		b.Cart.WriteControl(address, value)
	case address < 0xA000:
		b.VRAM[address-0x8000] = value
	case address < 0xC000:
		b.Cart.WriteRAM(address, value)
	case address < 0xD000:
		b.WRAM0[address-0xC000] = value
	case address < 0xE000:
		b.WRAM1[address-0xD000] = value
	case address < 0xFE00:
		b.WriteByte(address-0x2000, value) // echo of 0xC000-0xDDFF
	case address < unusableLow:
		b.OAM[address-0xFE00] = value
	case address < unusableHi:
		// unusable range discards writes
	case address < 0xFF80:
		b.writeIO(address, value)
	case address < RegIE:
		b.HRAM[address-0xFF80] = value
	case address == RegIE:
		b.Interrupts.Write(address, value)
	default:
		panic(fmt.Sprintf("bus: address %#04x not covered by any region", address))
	}
}

// ReadWord reads a little-endian 16-bit value as two byte reads.
func (b *Bus) ReadWord(address uint16) uint16 {
	lo := b.ReadByte(address)
	hi := b.ReadByte(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit value as two byte writes.
func (b *Bus) WriteWord(address uint16, value uint16) {
	b.WriteByte(address, uint8(value&0xFF))
	b.WriteByte(address+1, uint8(value>>8))
}

// readIO implements the 0xFF00-0xFF7F special cases of spec §4.1; every
// other address in the window is passive storage, sound registers
// included.
func (b *Bus) readIO(address uint16) uint8 {
	switch address {
	case RegJoypad:
		return b.Joypad.Read()
	case RegIF:
		return b.Interrupts.Read(address)
	default:
		return b.IO[address-0xFF00]
	}
}

// writeIO implements the 0xFF00-0xFF7F special cases of spec §4.1.
func (b *Bus) writeIO(address uint16, value uint8) {
	switch address {
	case RegJoypad:
		b.Joypad.Write(value)
	case RegIF:
		b.Interrupts.Write(address, value)
	case RegDMA:
		b.IO[address-0xFF00] = value
		b.runDMA(value)
	default:
		b.IO[address-0xFF00] = value
	}
}
