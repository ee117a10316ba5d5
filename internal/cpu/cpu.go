// Package cpu implements the Sharp LR35902 instruction decoder and
// interpreter: the register file and flags, the fetch-decode-execute
// loop, and interrupt servicing. It reads and writes memory exclusively
// through a Bus, and never owns time itself — the display pipeline
// calls Step in fixed cycle batches.
package cpu

import (
	"github.com/kirkNovitsky/gb-emulator/internal/interrupts"
)

// Bus is the memory-access surface the CPU requires. internal/bus.Bus
// satisfies it; tests may supply a smaller fake.
type Bus interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, value uint8)
}

// CPU is the Sharp LR35902 register file, flags, decoder, and
// interrupt-servicing state.
type CPU struct {
	Registers
	SP, PC uint16

	bus Bus
	irq *interrupts.Service

	// Breakpoint is set by the LD B,B opcode, a conventional debugger
	// trap used by test ROMs. Package cpu never reads or clears it;
	// gameboy.Step reports and clears it when Debug is enabled.
	Breakpoint bool
}

// New returns a CPU wired to bus and irq, with registers at their
// zero value. Callers typically follow this with the boot-state
// initialisation from spec §6 (see gameboy.Initialise).
func New(bus Bus, irq *interrupts.Service) *CPU {
	return &CPU{bus: bus, irq: irq}
}

// opcode describes one decoded instruction: its total length in bytes
// (including the opcode byte itself) and the handler that executes it.
// length == 0 marks an opcode the ISA leaves undefined; Step leaves PC
// on that byte and consumes zero cycles, per spec §4.2.
type opcode struct {
	length uint8
	name   string
	exec   func(c *CPU, imm8 uint8, imm16 uint16) uint8
}

// Step executes exactly one instruction (or services one pending
// interrupt) and returns the number of cycles it cost.
func (c *CPU) Step() uint8 {
	if c.irq.IME {
		if src, ok := c.irq.Pending(); ok {
			c.irq.IME = false
			c.irq.Clear(src)
			c.push16(c.PC)
			c.PC = interrupts.Vector[src]
			return 20
		}
	}

	opcodeByte := c.bus.ReadByte(c.PC)
	entry := opcodeTable[opcodeByte]
	if entry.length == 0 {
		return 0 // undefined opcode: hang in place
	}

	start := c.PC
	var imm8 uint8
	var imm16 uint16
	switch entry.length {
	case 2:
		imm8 = c.bus.ReadByte(start + 1)
	case 3:
		imm16 = uint16(c.bus.ReadByte(start+1)) | uint16(c.bus.ReadByte(start+2))<<8
	}

	// PC advances by the instruction length before the handler runs, so
	// relative and absolute jump handlers are simple assignments to PC.
	c.PC = start + uint16(entry.length)

	return entry.exec(c, imm8, imm16)
}

func (c *CPU) readByte(address uint16) uint8        { return c.bus.ReadByte(address) }
func (c *CPU) writeByte(address uint16, value uint8) { c.bus.WriteByte(address, value) }

func (c *CPU) readWord(address uint16) uint16 {
	return uint16(c.bus.ReadByte(address)) | uint16(c.bus.ReadByte(address+1))<<8
}

func (c *CPU) writeWord(address uint16, value uint16) {
	c.bus.WriteByte(address, uint8(value))
	c.bus.WriteByte(address+1, uint8(value>>8))
}

// push16 pushes a 16-bit value onto the stack, predecrementing SP.
func (c *CPU) push16(v uint16) {
	c.SP -= 2
	c.writeWord(c.SP, v)
}

// pop16 pops a 16-bit value off the stack, postincrementing SP.
func (c *CPU) pop16() uint16 {
	v := c.readWord(c.SP)
	c.SP += 2
	return v
}

// operand8 reads the register (or (HL)) named by a 3-bit decode field.
func (c *CPU) operand8(index uint8) uint8 {
	if index == 6 {
		return c.readByte(c.HL())
	}
	return *c.register8(index)
}

// setOperand8 writes the register (or (HL)) named by a 3-bit decode
// field.
func (c *CPU) setOperand8(index uint8, v uint8) {
	if index == 6 {
		c.writeByte(c.HL(), v)
		return
	}
	*c.register8(index) = v
}

func illegal(name string) opcode {
	return opcode{length: 0, name: name}
}
