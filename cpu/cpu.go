// Package cpu implements the MOS Technology 6502 microprocessor, as used
// in the NES: the fetch-decode-execute loop, every addressing mode, and
// the instruction set, over a flat 64 kB memory.
package cpu

import (
	"github.com/pkg/errors"

	"github.com/mark-keaton/nes-emulator/mem"
)

// resetVector is the address the reset sequence reads PC from.
const resetVector uint16 = 0xFFFC

// Cpu holds the full architectural state of a 6502: the three
// general-purpose registers, the stack pointer, the program counter, the
// status register, and a Bus through which all memory access happens.
// The Cpu owns no memory of its own beyond these handful of bytes.
type Cpu struct {
	Mem *mem.Bus

	A byte // Accumulator
	X byte
	Y byte

	S byte // Stack pointer; the stack address is 0x0100 + S

	PC uint16

	P byte // processor status; see status.go for bit accessors

	halted bool // set by BRK; checked by Step before the PC-advance rule
}

// New constructs a Cpu with zeroed registers and a fresh, zeroed Bus.
func New() *Cpu {
	return &Cpu{Mem: &mem.Bus{}}
}

// Load copies program into memory starting at mem.Origin and points the
// reset vector at it. It does not itself reset or run the Cpu.
func (c *Cpu) Load(program []byte) error {
	if err := c.Mem.LoadProgram(program); err != nil {
		return errors.Wrap(err, "cpu: load")
	}
	c.Mem.WriteWord(resetVector, mem.Origin)
	return nil
}

// Reset zeroes A, X, and Y, sets S to 0xFF, zeroes P, and loads PC from
// the reset vector, exactly as the real hardware's reset sequence does.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFF
	c.P = 0
	c.PC = c.Mem.ReadWord(resetVector)
	c.halted = false
}

// Step executes exactly one instruction: fetch, decode, dispatch, and
// (unless the handler already moved PC, or BRK halted execution) advance
// PC past the operand bytes. It reports whether BRK halted execution.
func (c *Cpu) Step() (halted bool, err error) {
	opcodeByte := c.Mem.Read(c.PC)
	op, ok := opcodes[opcodeByte]
	if !ok {
		return false, errors.Wrapf(ErrUnknownOpcode, "opcode %#02x at address %#04x", opcodeByte, c.PC)
	}

	c.PC++
	pcAfterOpcode := c.PC

	op.Handler(c, op.Mode)

	if c.halted {
		return true, nil
	}

	// Branches always consume their displacement byte, taken or not:
	// a taken branch lands on pcAfterOpcode+displacement (see BCC et
	// al in instructions.go), and still needs the same +1 a not-taken
	// branch gets to step past that byte.
	if c.PC == pcAfterOpcode || op.Mode == Relative {
		c.PC += uint16(op.Length - 1)
	}

	return false, nil
}

// Run executes instructions until BRK halts the Cpu or an unknown
// opcode is encountered. It blocks; there is no cancellation within the
// core (see cmd/gone6502 for a context-aware wrapper).
func (c *Cpu) Run() error {
	for {
		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// LoadAndRun is the convenience composition of Load, Reset, and Run.
func (c *Cpu) LoadAndRun(program []byte) error {
	if err := c.Load(program); err != nil {
		return err
	}
	c.Reset()
	return c.Run()
}

// push writes data to the stack slot selected by S, then decrements S.
func (c *Cpu) push(data byte) {
	c.Mem.Push(c.S, data)
	c.S--
}

// pull increments S, then reads the stack slot it now selects.
func (c *Cpu) pull() byte {
	c.S++
	return c.Mem.Pull(c.S)
}

// pushWord pushes a 16-bit value high byte first, so pullWord (which
// reads low byte first) reconstructs it in the same order it was
// pushed.
func (c *Cpu) pushWord(w uint16) {
	c.push(byte(w >> 8))
	c.push(byte(w))
}

func (c *Cpu) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(hi)<<8 | uint16(lo)
}
