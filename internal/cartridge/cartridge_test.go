package cartridge

import (
	"strings"
	"testing"
)

func makeROM(banks int) []byte {
	return make([]byte, banks*0x4000)
}

func TestMBC1PrimaryBankSubstitution(t *testing.T) {
	cases := []struct {
		write uint8
		want  uint8
	}{
		{0x00, 0x01},
		{0x20, 0x21},
		{0x40, 0x41},
		{0x60, 0x61},
		{0x05, 0x05},
	}
	for _, tc := range cases {
		c := New(makeROM(128))
		c.WriteControl(0x2000, tc.write)
		if got := c.EffectiveROMBank(); got != tc.want {
			t.Errorf("write %#02x: effective bank = %#02x, want %#02x", tc.write, got, tc.want)
		}
	}
}

func TestMBC1RAMModeUsesSecondaryForRAMBank(t *testing.T) {
	c := New(makeROM(4))
	c.ram = make([]byte, 4*0x2000)
	c.WriteControl(0x0000, 0x0A) // enable RAM
	c.WriteControl(0x6000, 0x01) // RAM mode
	c.WriteControl(0x4000, 0x03) // secondary = 3 -> RAM bank 3

	c.WriteRAM(0xA000, 0x77)
	if got := c.ram[3*0x2000]; got != 0x77 {
		t.Errorf("RAM bank 3 byte 0 = %#02x, want 0x77", got)
	}
}

func TestReadRAMDisabledReturnsFF(t *testing.T) {
	c := New(makeROM(4))
	c.ram = make([]byte, 0x2000)
	if got := c.ReadRAM(0xA000); got != 0xFF {
		t.Errorf("disabled RAM read = %#02x, want 0xFF", got)
	}
}

func TestHeaderDerivesROMBanksFromSize(t *testing.T) {
	c := New(makeROM(8))
	if got := c.Header().ROMBanks; got != 8 {
		t.Errorf("ROMBanks = %d, want 8", got)
	}
}

func TestLoadArchiveMissingFileErrors(t *testing.T) {
	_, err := LoadArchive("testdata/does-not-exist.7z")
	if err == nil {
		t.Fatal("LoadArchive on a nonexistent archive: want error, got nil")
	}
	if !strings.Contains(err.Error(), "archive") {
		t.Errorf("error = %v, want it to mention the archive path", err)
	}
}

func TestLoadDispatchesBySevenZipExtension(t *testing.T) {
	_, err := Load("testdata/does-not-exist.7Z")
	if err == nil {
		t.Fatal("Load on a nonexistent .7z path: want error, got nil")
	}
	if !strings.Contains(err.Error(), "archive") {
		t.Errorf("Load(%q) error = %v, want the archive path to have been taken (case-insensitive extension match)", "testdata/does-not-exist.7Z", err)
	}
}

func TestSaveLoadRAMRoundTrip(t *testing.T) {
	c := New(makeROM(4))
	c.ram = make([]byte, 0x2000)
	c.bank.ramEnabled = true
	c.WriteRAM(0xA010, 0x99)

	saved := c.SaveRAM()

	c2 := New(makeROM(4))
	c2.ram = make([]byte, 0x2000)
	c2.bank.ramEnabled = true
	c2.LoadRAM(saved)
	if got := c2.ReadRAM(0xA010); got != 0x99 {
		t.Errorf("restored RAM byte = %#02x, want 0x99", got)
	}
}
