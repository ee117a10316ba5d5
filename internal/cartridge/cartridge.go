// Package cartridge provides ROM loading, MBC1 bank switching, and
// sidecar-save persistence for the inserted Game Boy cartridge.
package cartridge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash"
)

// Cartridge owns the ROM image, the MBC1 control state, and the
// cartridge-RAM backing store.
type Cartridge struct {
	rom    []byte
	ram    []byte
	header Header
	bank   mbc1

	digest uint64
}

// Load reads rom from path (or, for .7z-suffixed paths, extracts it from
// an archive via LoadArchive) and returns a Cartridge with cartridge RAM
// allocated and, if a sidecar .sav file exists, pre-loaded. Any ROM size
// is accepted; no header validation occurs beyond sizing.
func Load(path string) (*Cartridge, error) {
	var rom []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".7z") {
		rom, err = LoadArchive(path)
	} else {
		rom, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cartridge: reading %s: %w", path, err)
	}

	c := New(rom)

	savePath := savePathFor(path)
	if data, err := os.ReadFile(savePath); err == nil {
		c.LoadRAM(data)
	}

	return c, nil
}

// New builds a Cartridge directly from ROM bytes, with MBC1 state reset
// to its power-on values (primary bank 1, everything else zero) and
// cartridge RAM zeroed.
func New(rom []byte) *Cartridge {
	h := parseHeader(rom)
	return &Cartridge{
		rom:    rom,
		ram:    make([]byte, h.RAMBanks*0x2000),
		header: h,
		bank:   mbc1{primary: 0x01},
	}
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header { return c.header }

// Title returns the cartridge's ASCII title, or "" if the ROM is too
// short to carry a header.
func (c *Cartridge) Title() string { return c.header.Title }

// Digest returns an xxhash of the ROM bytes, computed lazily and
// cached. gameboy.DumpSnapshot tags debug snapshots with it so
// LoadSnapshot can refuse to apply a snapshot against the wrong ROM.
func (c *Cartridge) Digest() uint64 {
	if c.digest == 0 {
		c.digest = xxhash.Sum64(c.rom)
	}
	return c.digest
}

// ReadROMLow reads the fixed bank-0 window, 0x0000-0x3FFF.
func (c *Cartridge) ReadROMLow(address uint16) uint8 {
	if int(address) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[address]
}

// ReadROMHigh reads the switched-bank window, 0x4000-0x7FFF, honoring
// the MBC1 effective ROM bank computation from spec §3.
func (c *Cartridge) ReadROMHigh(address uint16) uint8 {
	offset := int(c.bank.romBank())*0x4000 + int(address-0x4000)
	if offset >= len(c.rom) {
		return 0xFF
	}
	return c.rom[offset]
}

// EffectiveROMBank exposes the bank number currently mapped into
// 0x4000-0x7FFF, for tests of invariant (iii) in spec §3.
func (c *Cartridge) EffectiveROMBank() uint8 {
	return c.bank.romBank()
}

// ReadRAM reads cartridge RAM at 0xA000-0xBFFF. Disabled or absent RAM
// reads back as 0xFF, matching real MBC1 carts.
func (c *Cartridge) ReadRAM(address uint16) uint8 {
	if !c.bank.ramEnabled || len(c.ram) == 0 {
		return 0xFF
	}
	offset := int(c.bank.ramBank())*0x2000 + int(address-0xA000)
	if offset >= len(c.ram) {
		return 0xFF
	}
	return c.ram[offset]
}

// WriteRAM writes cartridge RAM at 0xA000-0xBFFF. Writes while RAM is
// disabled, or to a cartridge with no RAM, are discarded.
func (c *Cartridge) WriteRAM(address uint16, value uint8) {
	if !c.bank.ramEnabled || len(c.ram) == 0 {
		return
	}
	offset := int(c.bank.ramBank())*0x2000 + int(address-0xA000)
	if offset >= len(c.ram) {
		return
	}
	c.ram[offset] = value
}

// WriteControl intercepts writes to 0x0000-0x7FFF, dispatching to the
// MBC1 control registers per spec §4.1.
func (c *Cartridge) WriteControl(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		c.bank.writeRAMEnable(value)
	case address < 0x4000:
		c.bank.writePrimaryBank(value)
	case address < 0x6000:
		c.bank.writeSecondaryBank(value)
	case address < 0x8000:
		c.bank.writeModeFlag(value)
	default:
		panic(fmt.Sprintf("cartridge: illegal control write to address %#04x", address))
	}
}

// SaveRAM returns a copy of cartridge RAM suitable for writing to a
// sidecar .sav file.
func (c *Cartridge) SaveRAM() []byte {
	out := make([]byte, len(c.ram))
	copy(out, c.ram)
	return out
}

// LoadRAM overwrites cartridge RAM with data, truncating or zero-padding
// to fit the allocated size.
func (c *Cartridge) LoadRAM(data []byte) {
	n := copy(c.ram, data)
	for i := n; i < len(c.ram); i++ {
		c.ram[i] = 0
	}
}

// savePathFor returns the sidecar save path for a ROM path: the same
// path with its extension replaced by ".sav", per spec §6.
func savePathFor(romPath string) string {
	ext := filepath.Ext(romPath)
	return strings.TrimSuffix(romPath, ext) + ".sav"
}

// SavePath returns the sidecar save-file path this cartridge would be
// persisted to, given the ROM path it was loaded from.
func SavePath(romPath string) string {
	return savePathFor(romPath)
}
