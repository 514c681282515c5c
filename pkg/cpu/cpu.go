// Package cpu implements the 6502 fetch-decode-execute loop: opcode
// decode, the twelve addressing modes, and the instruction semantics
// (including the unofficial opcodes common NES test ROMs exercise).
package cpu

import (
	"github.com/nescore/emu/pkg/bitfield"
	"github.com/nescore/emu/pkg/logger"
	"github.com/nescore/emu/pkg/trace"
)

// Status flag bit positions within P, LSB-first.
const (
	FlagC = iota // carry
	FlagZ        // zero
	FlagI        // interrupt disable
	FlagD        // decimal
	FlagB        // break
	FlagU        // unused, always 1
	FlagV        // overflow
	FlagN        // negative
)

// State is the CPU's run state. Running and Halted are the only two
// states this core models.
type State int

const (
	Running State = iota
	Halted
)

// Bus is the memory surface the CPU reads and writes through.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
	Peek(addr uint16) uint8
}

// CPU is a 6502 interpreter. Registers are plain fields; P is modeled
// as a BitField so PHP/PLP/BRK/RTI can observe and restore its exact
// byte image, including the B and U bits, rather than juggling
// separate booleans.
type CPU struct {
	A, X, Y uint8
	S       uint8
	PC      uint16
	P       bitfield.BitField[uint8]

	Bus   Bus
	State State

	Cycles int

	Observer trace.Observer
}

const resetVectorLow = 0xFFFC

// New returns a CPU wired to bus. Call Reset before stepping it.
func New(bus Bus) *CPU {
	return &CPU{Bus: bus}
}

// Reset restores power-on register state and latches PC from the
// reset vector at $FFFC/$FFFD.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P.SetValue(0x24)
	lo := c.Bus.Read(resetVectorLow)
	hi := c.Bus.Read(resetVectorLow + 1)
	c.PC = bitfield.Join16(lo, hi)
	c.Cycles = 0
	c.State = Running
}

// Stop transitions the CPU to Halted from outside the fetch loop, the
// cooperative cancellation path console.Stop uses.
func (c *CPU) Stop() {
	c.State = Halted
}

func (c *CPU) getFlag(bit int) bool {
	return c.P.Get(bit) == 1
}

func (c *CPU) setFlag(bit int, v bool) {
	if v {
		c.P.Set(bit, 1)
	} else {
		c.P.Set(bit, 0)
	}
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}

// Step fetches, decodes, and executes one instruction and returns its
// base cycle count (no page-cross or branch-taken penalties). It
// returns ErrIllegalOpcode for an unrecognized opcode byte. Step does
// nothing and returns 0 if the CPU is Halted.
func (c *CPU) Step() (int, error) {
	if c.State == Halted {
		return 0, nil
	}

	pcAtFetch := c.PC
	opcode := c.Bus.Read(c.PC)
	c.PC++

	info, ok := decode(opcode)
	if !ok {
		c.State = Halted
		err := illegalOpcode(opcode)
		logger.LogError("cpu halted: %v at PC=$%04X", err, pcAtFetch)
		return 0, err
	}

	operand, operandText := c.resolveOperand(info.Mode)

	if err := c.execute(info.Mnemonic, info.Mode, operand); err != nil {
		c.State = Halted
		logger.LogError("cpu halted: %v at PC=$%04X", err, pcAtFetch)
		return 0, err
	}

	logger.LogCPU("PC=$%04X %s %s A=$%02X X=$%02X Y=$%02X S=$%02X P=$%02X",
		pcAtFetch, info.Mnemonic, operandText, c.A, c.X, c.Y, c.S, c.P.Value())

	c.Cycles += info.Cycles

	if c.Observer != nil {
		c.Observer.OnStep(trace.Snapshot{
			PC:          pcAtFetch,
			Opcode:      opcode,
			Mnemonic:    info.Mnemonic,
			Mode:        info.Mode.String(),
			OperandText: operandText,
			A:           c.A,
			X:           c.X,
			Y:           c.Y,
			S:           c.S,
			P:           c.P.Value(),
			Cycles:      c.Cycles,
		})
	}

	return info.Cycles, nil
}

// resolveOperand advances PC past the instruction's operand bytes
// (per the mode's length) and returns the decoded Operand plus a
// disassembly-friendly text rendering for the trace observer.
func (c *CPU) resolveOperand(mode Mode) (Operand, string) {
	switch mode {
	case ModeIMP:
		return Operand{Kind: OperandNone}, ""

	case ModeIMM:
		v := c.Bus.Read(c.PC)
		c.PC++
		return Operand{Kind: OperandImmediate, Value: v}, hexImm(v)

	case ModeZPG:
		addr := uint16(c.Bus.Read(c.PC))
		c.PC++
		return Operand{Kind: OperandMemory, Addr: addr}, hexAddr8(uint8(addr))

	case ModeZPX:
		addr := uint16(c.Bus.Read(c.PC)+c.X) & 0xFF
		c.PC++
		return Operand{Kind: OperandMemory, Addr: addr}, hexAddr8(uint8(addr))

	case ModeZPY:
		addr := uint16(c.Bus.Read(c.PC)+c.Y) & 0xFF
		c.PC++
		return Operand{Kind: OperandMemory, Addr: addr}, hexAddr8(uint8(addr))

	case ModeABS:
		lo := c.Bus.Read(c.PC)
		hi := c.Bus.Read(c.PC + 1)
		c.PC += 2
		addr := bitfield.Join16(lo, hi)
		return Operand{Kind: OperandMemory, Addr: addr}, hexAddr16(addr)

	case ModeABX:
		lo := c.Bus.Read(c.PC)
		hi := c.Bus.Read(c.PC + 1)
		c.PC += 2
		base := bitfield.Join16(lo, hi)
		addr := base + uint16(c.X)
		return Operand{Kind: OperandMemory, Addr: addr}, hexAddr16(base) + ",X"

	case ModeABY:
		lo := c.Bus.Read(c.PC)
		hi := c.Bus.Read(c.PC + 1)
		c.PC += 2
		base := bitfield.Join16(lo, hi)
		addr := base + uint16(c.Y)
		return Operand{Kind: OperandMemory, Addr: addr}, hexAddr16(base) + ",Y"

	case ModeIND:
		lo := c.Bus.Read(c.PC)
		hi := c.Bus.Read(c.PC + 1)
		c.PC += 2
		ptr := bitfield.Join16(lo, hi)
		var addr uint16
		if ptr&0x00FF == 0x00FF {
			// Reproduces the indirect-JMP page-wrap bug: the high byte
			// is fetched from the start of the same page instead of
			// crossing into the next one.
			rlo := c.Bus.Read(ptr)
			rhi := c.Bus.Read(ptr & 0xFF00)
			addr = bitfield.Join16(rlo, rhi)
		} else {
			rlo := c.Bus.Read(ptr)
			rhi := c.Bus.Read(ptr + 1)
			addr = bitfield.Join16(rlo, rhi)
		}
		return Operand{Kind: OperandMemory, Addr: addr}, "(" + hexAddr16(ptr) + ")"

	case ModeINX:
		zp := c.Bus.Read(c.PC)
		c.PC++
		ptr := uint16(zp+c.X) & 0xFF
		lo := c.Bus.Read(ptr)
		hi := c.Bus.Read((ptr + 1) & 0xFF)
		addr := bitfield.Join16(lo, hi)
		return Operand{Kind: OperandMemory, Addr: addr}, "(" + hexAddr8(zp) + ",X)"

	case ModeINY:
		zp := c.Bus.Read(c.PC)
		c.PC++
		lo := c.Bus.Read(uint16(zp))
		hi := c.Bus.Read((uint16(zp) + 1) & 0xFF)
		base := bitfield.Join16(lo, hi)
		addr := base + uint16(c.Y)
		return Operand{Kind: OperandMemory, Addr: addr}, "(" + hexAddr8(zp) + "),Y"

	case ModeREL:
		offset := int8(c.Bus.Read(c.PC))
		c.PC++
		addr := uint16(int32(c.PC) + int32(offset))
		return Operand{Kind: OperandMemory, Addr: addr}, hexAddr16(addr)

	default:
		return Operand{Kind: OperandNone}, ""
	}
}

func hexImm(v uint8) string  { return "#" + hexAddr8(v) }
func hexAddr8(v uint8) string {
	const digits = "0123456789ABCDEF"
	return "$" + string([]byte{digits[v>>4], digits[v&0xF]})
}
func hexAddr16(v uint16) string {
	const digits = "0123456789ABCDEF"
	return "$" + string([]byte{
		digits[(v>>12)&0xF], digits[(v>>8)&0xF], digits[(v>>4)&0xF], digits[v&0xF],
	})
}

// push writes v to the stack page and decrements S.
func (c *CPU) push(v uint8) {
	c.Bus.Write(0x0100|uint16(c.S), v)
	c.S--
}

// pop increments S and reads from the stack page.
func (c *CPU) pop() uint8 {
	c.S++
	return c.Bus.Read(0x0100 | uint16(c.S))
}

func (c *CPU) push16(v uint16) {
	lo, hi := bitfield.Split16(v)
	c.push(hi)
	c.push(lo)
}

func (c *CPU) pop16() uint16 {
	lo := c.pop()
	hi := c.pop()
	return bitfield.Join16(lo, hi)
}
