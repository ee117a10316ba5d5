// Package joypad emulates the Game Boy joypad register. The host
// publishes the full button state once per frame via SetButtons; the
// package is responsible for presenting that state through the FF00
// register according to which row the game has selected, and for
// reporting edge-triggered Joypad interrupt requests.
package joypad

// Button identifies a physical button. Each value is that button's
// single-bit mask within a Buttons value.
type Button = uint8

const (
	ButtonA      Button = 0x01
	ButtonB      Button = 0x02
	ButtonSelect Button = 0x04
	ButtonStart  Button = 0x08
	ButtonRight  Button = 0x10
	ButtonLeft   Button = 0x20
	ButtonUp     Button = 0x40
	ButtonDown   Button = 0x80
)

// Buttons is a bitmask of the eight buttons, 1 meaning currently held.
type Buttons = uint8

// State is the joypad register together with the last published button
// state.
type State struct {
	// Register holds the select bits written by the game (bits 5 and 4),
	// plus the two always-one bits above them.
	Register byte
	pressed  Buttons
}

// New returns a joypad with no row selected and no buttons held.
func New() *State {
	return &State{Register: 0xCF}
}

// Read returns the FF00 value for the currently selected row(s).
func (s *State) Read() uint8 {
	if s.Register&0x30 == 0x30 {
		return s.Register | 0x0F
	}
	lo := uint8(0x0F)
	if s.Register&0x20 == 0 { // button row: Start,Select,B,A
		lo &^= s.pressed & 0x0F
	}
	if s.Register&0x10 == 0 { // direction row: Down,Up,Left,Right
		lo &^= s.pressed >> 4
	}
	return s.Register | lo
}

// Write stores the row-select bits; the low nibble is never stored, it
// is always derived from pressed state on Read.
func (s *State) Write(value uint8) {
	s.Register = 0xC0 | (value & 0x30)
}

// SetButtons replaces the full button state with the host's latest
// published snapshot and reports whether the transition should raise a
// Joypad interrupt — true if any button newly pressed belongs to a row
// the game currently has selected.
func (s *State) SetButtons(buttons Buttons) bool {
	newlyPressed := buttons &^ s.pressed
	s.pressed = buttons
	if newlyPressed == 0 {
		return false
	}
	if s.Register&0x20 == 0 && newlyPressed&0x0F != 0 {
		return true
	}
	if s.Register&0x10 == 0 && newlyPressed&0xF0 != 0 {
		return true
	}
	return false
}

// Pressed reports whether the given button is currently held, per the
// last SetButtons call.
func (s *State) Pressed(b Button) bool {
	return s.pressed&b != 0
}
