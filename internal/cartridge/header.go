package cartridge

import "strings"

// Header is the subset of the cartridge header (0x0100-0x014F) this core
// cares about. No validation is performed beyond what is needed to size
// the ROM/RAM banks — any byte sequence of the right length is accepted,
// per the spec's "no header validation" requirement.
type Header struct {
	// Title is the ASCII game title at 0x0134-0x0143, trimmed of
	// trailing NUL padding. It is exposed through Cartridge.Title;
	// sidecar save-file naming does not use it (see savePathFor).
	Title string

	// ROMBanks is the number of 16 KiB ROM banks, derived from the ROM
	// file's length rather than the header's declared size byte, so that
	// any ROM size is accepted.
	ROMBanks int

	// RAMBanks is the number of 8 KiB cartridge-RAM banks declared at
	// 0x0149. MBC1 cartridges carry at most 4.
	RAMBanks int
}

// ramBankCount maps the RAM-size header byte to a bank count. Unknown
// values are treated as zero banks rather than rejected.
var ramBankCount = map[uint8]int{
	0x00: 0,
	0x01: 1, // 2 KiB; treated as a single undersized bank
	0x02: 1,
	0x03: 4,
	0x04: 16, // not reachable under MBC1 but parsed for completeness
	0x05: 8,
}

// parseHeader reads the header fields out of a full ROM image. If rom is
// too short to contain a header, zero-value defaults are used.
func parseHeader(rom []byte) Header {
	h := Header{ROMBanks: romBankCount(len(rom))}
	if len(rom) < 0x150 {
		return h
	}
	h.Title = strings.TrimRight(string(rom[0x134:0x144]), "\x00")
	if banks, ok := ramBankCount[rom[0x149]]; ok {
		h.RAMBanks = banks
	}
	if h.RAMBanks > 4 {
		h.RAMBanks = 4 // MBC1 addresses at most 4 RAM banks (§3)
	}
	return h
}

// romBankCount derives the 16 KiB bank count directly from file size, the
// way the spec mandates rather than trusting the header's size byte.
func romBankCount(size int) int {
	banks := size / 0x4000
	if banks < 2 {
		banks = 2 // bank 0 plus at least one switched bank
	}
	return banks
}
