package cpu

import "fmt"

// An AddressingMode tells the Cpu where to find the operand of an
// instruction.
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand; handler uses a register directly
	Accumulator                       // operand is the Accumulator itself
	Immediate                         // operand is the byte at PC
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
	Relative
	Indirect // JMP only; not part of the base addressing-mode set
)

// effectiveAddress maps mode and the Cpu's current state to a 16-bit
// operand address. PC is always the address of the first operand byte
// (the byte immediately after the opcode); effectiveAddress never
// mutates it, so callers may read it more than once without disturbing
// the post-dispatch PC-advance rule in Step.
//
// Accumulator and Implied carry no address: callers must branch on mode
// before reaching here. Calling effectiveAddress with either is an
// internal invariant violation, not a runtime condition, so it panics.
func (c *Cpu) effectiveAddress(mode AddressingMode) uint16 {
	switch mode {
	case Immediate, Relative:
		return c.PC

	case ZeroPage:
		return uint16(c.Mem.Read(c.PC))

	case ZeroPageX:
		return uint16(c.Mem.Read(c.PC) + c.X) // byte add wraps the zero page

	case ZeroPageY:
		return uint16(c.Mem.Read(c.PC) + c.Y)

	case Absolute:
		return c.Mem.ReadWord(c.PC)

	case AbsoluteX:
		return c.Mem.ReadWord(c.PC) + uint16(c.X) // uint16 add wraps mod 65536

	case AbsoluteY:
		return c.Mem.ReadWord(c.PC) + uint16(c.Y)

	case IndirectX:
		ptr := c.Mem.Read(c.PC) + c.X // byte add wraps the zero page
		lo := c.Mem.Read(uint16(ptr))
		hi := c.Mem.Read(uint16(ptr + 1)) // wraps within the zero page
		return uint16(hi)<<8 | uint16(lo)

	case IndirectY:
		ptr := c.Mem.Read(c.PC)
		lo := c.Mem.Read(uint16(ptr))
		hi := c.Mem.Read(uint16(ptr + 1)) // wraps within the zero page
		base := uint16(hi)<<8 | uint16(lo)
		return base + uint16(c.Y)

	case Indirect:
		// JMP ($xxxx). Reproduces the classic hardware bug: if the
		// pointer's low byte is 0xFF, the high byte is fetched from
		// the start of the same page instead of the next one.
		ptr := c.Mem.ReadWord(c.PC)
		lo := c.Mem.Read(ptr)
		var hi byte
		if ptr&0x00FF == 0x00FF {
			hi = c.Mem.Read(ptr & 0xFF00)
		} else {
			hi = c.Mem.Read(ptr + 1)
		}
		return uint16(hi)<<8 | uint16(lo)

	default:
		panic(fmt.Sprintf("cpu: addressing mode %v has no effective address", mode))
	}
}
