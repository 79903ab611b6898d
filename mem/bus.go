// Package mem implements the flat 64 kB address space the Cpu operates
// over: a byte array, little-endian word accessors, a program loader, and
// the byte-level push/pull primitives the stack page is built on.
package mem

import "github.com/pkg/errors"

// Origin is the fixed address at which a loaded program image begins.
const Origin uint16 = 0x8000

// MaxProgramSize is the largest image that fits between Origin and 0xFFFF,
// inclusive.
const MaxProgramSize = 0x10000 - int(Origin)

// ErrProgramTooLarge is returned by LoadProgram when an image would not
// fit between Origin and the end of the address space.
var ErrProgramTooLarge = errors.New("program too large to load")

// A Bus is the 16-bit-addressed memory the Cpu reads and writes. There is
// no mirroring or memory-mapped device layer; every address backs a plain
// byte.
type Bus struct {
	ram [1 << 16]byte
}

// Read returns the byte at addr.
func (b *Bus) Read(addr uint16) byte {
	return b.ram[addr]
}

// Write stores data at addr.
func (b *Bus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

// ReadWord returns the little-endian word at addr: the low byte is at
// addr, the high byte at addr+1 (wrapping).
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord splits data little-endian and writes the two bytes starting
// at addr, with the same wrapping rule as ReadWord.
func (b *Bus) WriteWord(addr uint16, data uint16) {
	b.Write(addr, byte(data))
	b.Write(addr+1, byte(data>>8))
}

// LoadProgram copies program contiguously into memory starting at Origin.
// It fails if the image would cross 0xFFFF.
func (b *Bus) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes, max %d", len(program), MaxProgramSize)
	}
	copy(b.ram[Origin:], program)
	return nil
}

// Push writes data to the stack page at the slot selected by s. s is not
// adjusted here; the caller owns the stack pointer and decrements it
// around the call, per the 6502's convention (write, then decrement).
func (b *Bus) Push(s byte, data byte) {
	b.Write(0x0100+uint16(s), data)
}

// Pull reads the stack page slot selected by s. s is not adjusted here;
// the caller owns the stack pointer and increments it around the call,
// per the 6502's convention (increment, then read).
func (b *Bus) Pull(s byte) byte {
	return b.Read(0x0100 + uint16(s))
}
