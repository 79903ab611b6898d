package cpu

// operand reads the byte addressed by mode. It must not be called with
// Accumulator or Implied; those handlers branch on c.A or a register
// directly instead.
func (c *Cpu) operand(mode AddressingMode) byte {
	return c.Mem.Read(c.effectiveAddress(mode))
}

// ADC: A = A + operand + Carry. Overflow fires when the operand agrees
// in sign with the accumulator's original value but the result does not,
// i.e. two same-signed operands producing a differently-signed result.
func (c *Cpu) ADC(mode AddressingMode) {
	m := c.operand(mode)
	sum := int(c.A) + int(m) + int(c.GetCarry())
	result := byte(sum)
	c.SetOverflow((c.A^m)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.SetCarry(sum > 0xFF)
	c.A = result
	c.updateZN(c.A)
}

// SBC: A = A - operand - (1 - Carry), computed as A + ^operand + Carry so
// it shares ADC's carry and overflow arithmetic.
func (c *Cpu) SBC(mode AddressingMode) {
	m := ^c.operand(mode)
	sum := int(c.A) + int(m) + int(c.GetCarry())
	result := byte(sum)
	c.SetOverflow((c.A^m)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.SetCarry(sum > 0xFF)
	c.A = result
	c.updateZN(c.A)
}

func (c *Cpu) AND(mode AddressingMode) {
	c.A &= c.operand(mode)
	c.updateZN(c.A)
}

func (c *Cpu) ORA(mode AddressingMode) {
	c.A |= c.operand(mode)
	c.updateZN(c.A)
}

func (c *Cpu) EOR(mode AddressingMode) {
	c.A ^= c.operand(mode)
	c.updateZN(c.A)
}

// ASL shifts one bit left, through Carry, either in the Accumulator or
// in memory depending on mode.
func (c *Cpu) ASL(mode AddressingMode) {
	if mode == Accumulator {
		c.SetCarry(c.A&0x80 != 0)
		c.A <<= 1
		c.updateZN(c.A)
		return
	}
	addr := c.effectiveAddress(mode)
	v := c.Mem.Read(addr)
	c.SetCarry(v&0x80 != 0)
	v <<= 1
	c.Mem.Write(addr, v)
	c.updateZN(v)
}

func (c *Cpu) LSR(mode AddressingMode) {
	if mode == Accumulator {
		c.SetCarry(c.A&0x01 != 0)
		c.A >>= 1
		c.updateZN(c.A)
		return
	}
	addr := c.effectiveAddress(mode)
	v := c.Mem.Read(addr)
	c.SetCarry(v&0x01 != 0)
	v >>= 1
	c.Mem.Write(addr, v)
	c.updateZN(v)
}

// ROL rotates left through Carry: the old Carry enters bit 0, the old
// bit 7 becomes the new Carry.
func (c *Cpu) ROL(mode AddressingMode) {
	carryIn := c.GetCarry()
	if mode == Accumulator {
		carryOut := c.A&0x80 != 0
		c.A = c.A<<1 | carryIn
		c.SetCarry(carryOut)
		c.updateZN(c.A)
		return
	}
	addr := c.effectiveAddress(mode)
	v := c.Mem.Read(addr)
	carryOut := v&0x80 != 0
	v = v<<1 | carryIn
	c.Mem.Write(addr, v)
	c.SetCarry(carryOut)
	c.updateZN(v)
}

// ROR rotates right through Carry: the old Carry enters bit 7, the old
// bit 0 becomes the new Carry.
func (c *Cpu) ROR(mode AddressingMode) {
	carryIn := c.GetCarry()
	if mode == Accumulator {
		carryOut := c.A&0x01 != 0
		c.A = c.A>>1 | carryIn<<7
		c.SetCarry(carryOut)
		c.updateZN(c.A)
		return
	}
	addr := c.effectiveAddress(mode)
	v := c.Mem.Read(addr)
	carryOut := v&0x01 != 0
	v = v>>1 | carryIn<<7
	c.Mem.Write(addr, v)
	c.SetCarry(carryOut)
	c.updateZN(v)
}

// BIT tests A & operand without storing the result: Zero reflects the
// masked value, Overflow and Negative are copied straight from operand
// bits 6 and 7.
func (c *Cpu) BIT(mode AddressingMode) {
	v := c.operand(mode)
	c.SetZero(c.A&v == 0)
	c.SetOverflow(v&0x40 != 0)
	c.SetNegative(v&0x80 != 0)
}

func (c *Cpu) compare(reg byte, mode AddressingMode) {
	v := c.operand(mode)
	c.SetCarry(reg >= v)
	c.updateZN(reg - v)
}

func (c *Cpu) CMP(mode AddressingMode) { c.compare(c.A, mode) }
func (c *Cpu) CPX(mode AddressingMode) { c.compare(c.X, mode) }
func (c *Cpu) CPY(mode AddressingMode) { c.compare(c.Y, mode) }

func (c *Cpu) DEC(mode AddressingMode) {
	addr := c.effectiveAddress(mode)
	v := c.Mem.Read(addr) - 1
	c.Mem.Write(addr, v)
	c.updateZN(v)
}

func (c *Cpu) INC(mode AddressingMode) {
	addr := c.effectiveAddress(mode)
	v := c.Mem.Read(addr) + 1
	c.Mem.Write(addr, v)
	c.updateZN(v)
}

func (c *Cpu) DEX(AddressingMode) { c.X--; c.updateZN(c.X) }
func (c *Cpu) INX(AddressingMode) { c.X++; c.updateZN(c.X) }
func (c *Cpu) DEY(AddressingMode) { c.Y--; c.updateZN(c.Y) }
func (c *Cpu) INY(AddressingMode) { c.Y++; c.updateZN(c.Y) }

func (c *Cpu) LDA(mode AddressingMode) { c.A = c.operand(mode); c.updateZN(c.A) }
func (c *Cpu) LDX(mode AddressingMode) { c.X = c.operand(mode); c.updateZN(c.X) }
func (c *Cpu) LDY(mode AddressingMode) { c.Y = c.operand(mode); c.updateZN(c.Y) }

func (c *Cpu) STA(mode AddressingMode) { c.Mem.Write(c.effectiveAddress(mode), c.A) }
func (c *Cpu) STX(mode AddressingMode) { c.Mem.Write(c.effectiveAddress(mode), c.X) }
func (c *Cpu) STY(mode AddressingMode) { c.Mem.Write(c.effectiveAddress(mode), c.Y) }

func (c *Cpu) TAX(AddressingMode) { c.X = c.A; c.updateZN(c.X) }
func (c *Cpu) TXA(AddressingMode) { c.A = c.X; c.updateZN(c.A) }
func (c *Cpu) TAY(AddressingMode) { c.Y = c.A; c.updateZN(c.Y) }
func (c *Cpu) TYA(AddressingMode) { c.A = c.Y; c.updateZN(c.A) }
func (c *Cpu) TSX(AddressingMode) { c.X = c.S; c.updateZN(c.X) }
func (c *Cpu) TXS(AddressingMode) { c.S = c.X } // does not touch flags

func (c *Cpu) CLC(AddressingMode) { c.SetCarry(false) }
func (c *Cpu) SEC(AddressingMode) { c.SetCarry(true) }
func (c *Cpu) CLI(AddressingMode) { c.SetInterruptDisable(false) }
func (c *Cpu) SEI(AddressingMode) { c.SetInterruptDisable(true) }
func (c *Cpu) CLV(AddressingMode) { c.SetOverflow(false) }
func (c *Cpu) CLD(AddressingMode) { c.SetDecimal(false) }
func (c *Cpu) SED(AddressingMode) { c.SetDecimal(true) }

func (c *Cpu) PHA(AddressingMode) { c.push(c.A) }
func (c *Cpu) PLA(AddressingMode) { c.A = c.pull(); c.updateZN(c.A) }

// PHP always pushes with the Break and unused bits set, regardless of
// their live state in P.
func (c *Cpu) PHP(AddressingMode) { c.push(c.P | 0x30) }

// PLP restores P from the stack but forces the unused bit to 1 and the
// Break bit to 0: those two bits are stack bookkeeping, not real status.
func (c *Cpu) PLP(AddressingMode) { c.P = (c.pull() | 0x20) &^ 0x10 }

func (c *Cpu) NOP(AddressingMode) {}

// JMP sets PC directly to the resolved target; effectiveAddress already
// implements both the absolute and the indirect (with its page-wrap
// quirk) forms.
func (c *Cpu) JMP(mode AddressingMode) { c.PC = c.effectiveAddress(mode) }

// JSR pushes the address of the last byte of the JSR instruction (not
// the next instruction's address — RTS accounts for the difference) and
// jumps to its operand.
func (c *Cpu) JSR(mode AddressingMode) {
	target := c.effectiveAddress(mode)
	c.pushWord(c.PC + 1)
	c.PC = target
}

// RTS pulls the return address pushed by JSR and adds one, recovering
// the address of the instruction after the call.
func (c *Cpu) RTS(AddressingMode) { c.PC = c.pullWord() + 1 }

// RTI restores P (forcing the unused bit to 1 and Break to 0, like PLP)
// and then PC, with no +1 adjustment: unlike JSR/RTS, the pushed address
// is already the correct resume point.
func (c *Cpu) RTI(AddressingMode) {
	c.P = (c.pull() | 0x20) &^ 0x10
	c.PC = c.pullWord()
}

// BRK halts the Cpu. A full interrupt sequence (push PC+2, push P,
// fetch the IRQ vector) is out of scope: there is no interrupt
// controller to resume into, so BRK simply stops Step/Run.
func (c *Cpu) BRK(AddressingMode) {
	c.SetBreak(true)
	c.halted = true
}

// branch reads the signed displacement at PC and, if cond holds, adds
// it to PC. It leaves PC unchanged on a not-taken branch; Step's
// unconditional Relative-mode advance handles both cases uniformly.
func (c *Cpu) branch(cond bool) {
	if !cond {
		return
	}
	disp := int8(c.Mem.Read(c.PC))
	c.PC += uint16(int16(disp))
}

func (c *Cpu) BPL(AddressingMode) { c.branch(c.GetNegative() == 0) }
func (c *Cpu) BMI(AddressingMode) { c.branch(c.GetNegative() != 0) }
func (c *Cpu) BVC(AddressingMode) { c.branch(c.GetOverflow() == 0) }
func (c *Cpu) BVS(AddressingMode) { c.branch(c.GetOverflow() != 0) }
func (c *Cpu) BCC(AddressingMode) { c.branch(c.GetCarry() == 0) }
func (c *Cpu) BCS(AddressingMode) { c.branch(c.GetCarry() != 0) }
func (c *Cpu) BNE(AddressingMode) { c.branch(c.GetZero() == 0) }
func (c *Cpu) BEQ(AddressingMode) { c.branch(c.GetZero() != 0) }
