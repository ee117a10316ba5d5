package joypad

import "testing"

func TestReadWithNoRowSelectedReturnsAllHigh(t *testing.T) {
	s := New()
	s.SetButtons(0xFF) // everything held
	if got := s.Read(); got&0x0F != 0x0F {
		t.Errorf("low nibble = %#02x, want 0x0F (nothing selected)", got&0x0F)
	}
}

func TestReadButtonRowReflectsPressed(t *testing.T) {
	s := New()
	s.SetButtons(ButtonA | ButtonStart)
	s.Write(0x10) // select button row (bit 5 clear)

	got := s.Read()
	if got&0x01 != 0 {
		t.Errorf("A bit = %d, want 0 (pressed)", got&0x01)
	}
	if got&0x08 != 0 {
		t.Errorf("Start bit = %d, want 0 (pressed)", got&0x08)
	}
	if got&0x02 == 0 {
		t.Errorf("B bit = %d, want 1 (not pressed)", got&0x02)
	}
}

func TestReadDirectionRowReflectsPressed(t *testing.T) {
	s := New()
	s.SetButtons(ButtonUp)
	s.Write(0x20) // select direction row (bit 4 clear)

	got := s.Read()
	if got&0x04 != 0 {
		t.Errorf("Up bit = %d, want 0 (pressed)", got&0x04)
	}
}

func TestWriteNeverStoresLowNibble(t *testing.T) {
	s := New()
	s.Write(0xFF)
	if s.Register&0x0F != 0 {
		t.Errorf("Register low nibble = %#02x, want 0", s.Register&0x0F)
	}
}

func TestSetButtonsReportsInterruptOnlyForSelectedRow(t *testing.T) {
	s := New()
	s.Write(0x10) // button row selected, direction row deselected

	if requested := s.SetButtons(ButtonUp); requested {
		t.Error("direction press should not interrupt while direction row is deselected")
	}
	if requested := s.SetButtons(ButtonUp | ButtonA); !requested {
		t.Error("newly pressed A on the selected row should request an interrupt")
	}
}

func TestSetButtonsNoInterruptWhenNothingNewlyPressed(t *testing.T) {
	s := New()
	s.Write(0x10)
	s.SetButtons(ButtonA)
	if requested := s.SetButtons(ButtonA); requested {
		t.Error("holding the same button should not re-request an interrupt")
	}
}

func TestPressedTracksLastSetButtons(t *testing.T) {
	s := New()
	s.SetButtons(ButtonB | ButtonDown)
	if !s.Pressed(ButtonB) {
		t.Error("expected ButtonB pressed")
	}
	if s.Pressed(ButtonA) {
		t.Error("expected ButtonA not pressed")
	}
	if !s.Pressed(ButtonDown) {
		t.Error("expected ButtonDown pressed")
	}
}
