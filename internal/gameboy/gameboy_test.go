package gameboy

import "testing"

func TestSnapshotRoundTrip(t *testing.T) {
	g := New(make([]byte, 0x8000))
	g.CPU.SetAF(0x1234)
	g.CPU.SetBC(0x5678)
	g.CPU.PC = 0x0150
	g.Bus.VRAM[0] = 0x42
	g.Bus.WRAM0[10] = 0x99

	data, err := g.DumpSnapshot()
	if err != nil {
		t.Fatalf("DumpSnapshot: %v", err)
	}

	g2 := New(make([]byte, 0x8000))
	if err := g2.LoadSnapshot(data); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if g2.CPU.AF() != 0x1230 {
		// SetAF masks F's low nibble to zero (spec invariant iii).
		t.Errorf("AF = %#04x, want 0x1230", g2.CPU.AF())
	}
	if g2.CPU.BC() != 0x5678 {
		t.Errorf("BC = %#04x, want 0x5678", g2.CPU.BC())
	}
	if g2.CPU.PC != 0x0150 {
		t.Errorf("PC = %#04x, want 0x0150", g2.CPU.PC)
	}
	if g2.Bus.VRAM[0] != 0x42 {
		t.Errorf("VRAM[0] = %#02x, want 0x42", g2.Bus.VRAM[0])
	}
	if g2.Bus.WRAM0[10] != 0x99 {
		t.Errorf("WRAM0[10] = %#02x, want 0x99", g2.Bus.WRAM0[10])
	}
}

func TestSnapshotRejectsMismatchedCartridge(t *testing.T) {
	g := New(make([]byte, 0x8000))
	data, err := g.DumpSnapshot()
	if err != nil {
		t.Fatalf("DumpSnapshot: %v", err)
	}

	other := New(append(make([]byte, 0x8000), 0xFF))
	if err := other.LoadSnapshot(data); err == nil {
		t.Error("LoadSnapshot against a different ROM: want error, got nil")
	}
}
