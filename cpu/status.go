package cpu

import "github.com/mark-keaton/nes-emulator/mask"

// The P (processor status) register packs eight flags into a single
// byte:
//
//	7 6 5 4 3 2 1 0
//	N V _ B D I Z C
//
// mask's byteIndex is 1-indexed from the most significant bit, so flag
// bit n (0 = Carry, 7 = Negative) lives at mask position 8-n. Get/Set
// are expressed in terms of mask.IsSet/mask.Set/mask.Unset rather than
// hand-rolled shifts.

func boolToByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// GetCarry returns 1 if the Carry flag is set, 0 otherwise.
func (c *Cpu) GetCarry() byte { return boolToByte(mask.IsSet(c.P, mask.I8)) }

// SetCarry sets or clears the Carry flag.
func (c *Cpu) SetCarry(v bool) {
	if v {
		c.P = mask.Set(c.P, mask.I8, 1)
	} else {
		c.P = mask.Unset(c.P, mask.I8, mask.I8)
	}
}

// GetZero returns 1 if the Zero flag is set, 0 otherwise.
func (c *Cpu) GetZero() byte { return boolToByte(mask.IsSet(c.P, mask.I7)) }

// SetZero sets or clears the Zero flag.
func (c *Cpu) SetZero(v bool) {
	if v {
		c.P = mask.Set(c.P, mask.I7, 1)
	} else {
		c.P = mask.Unset(c.P, mask.I7, mask.I7)
	}
}

// GetInterruptDisable returns 1 if interrupts are disabled, 0 otherwise.
func (c *Cpu) GetInterruptDisable() byte { return boolToByte(mask.IsSet(c.P, mask.I6)) }

// SetInterruptDisable sets or clears the interrupt-disable flag.
func (c *Cpu) SetInterruptDisable(v bool) {
	if v {
		c.P = mask.Set(c.P, mask.I6, 1)
	} else {
		c.P = mask.Unset(c.P, mask.I6, mask.I6)
	}
}

// GetDecimal returns 1 if the Decimal flag is set, 0 otherwise. No
// handler consults it: ADC/SBC never honor decimal mode, per spec.
func (c *Cpu) GetDecimal() byte { return boolToByte(mask.IsSet(c.P, mask.I5)) }

// SetDecimal sets or clears the Decimal flag.
func (c *Cpu) SetDecimal(v bool) {
	if v {
		c.P = mask.Set(c.P, mask.I5, 1)
	} else {
		c.P = mask.Unset(c.P, mask.I5, mask.I5)
	}
}

// GetBreak returns 1 if the Break flag is set, 0 otherwise.
func (c *Cpu) GetBreak() byte { return boolToByte(mask.IsSet(c.P, mask.I4)) }

// SetBreak sets or clears the Break flag.
func (c *Cpu) SetBreak(v bool) {
	if v {
		c.P = mask.Set(c.P, mask.I4, 1)
	} else {
		c.P = mask.Unset(c.P, mask.I4, mask.I4)
	}
}

// GetOverflow returns 1 if the Overflow flag is set, 0 otherwise.
func (c *Cpu) GetOverflow() byte { return boolToByte(mask.IsSet(c.P, mask.I2)) }

// SetOverflow sets or clears the Overflow flag.
func (c *Cpu) SetOverflow(v bool) {
	if v {
		c.P = mask.Set(c.P, mask.I2, 1)
	} else {
		c.P = mask.Unset(c.P, mask.I2, mask.I2)
	}
}

// GetNegative returns 1 if the Negative flag is set, 0 otherwise.
func (c *Cpu) GetNegative() byte { return boolToByte(mask.IsSet(c.P, mask.I1)) }

// SetNegative sets or clears the Negative flag.
func (c *Cpu) SetNegative(v bool) {
	if v {
		c.P = mask.Set(c.P, mask.I1, 1)
	} else {
		c.P = mask.Unset(c.P, mask.I1, mask.I1)
	}
}

// setUnused forces bit 5 to the given state. The bit has no architectural
// effect; PHP, PLP and RTI handle it with direct masks on P rather than
// through this helper.
func (c *Cpu) setUnused(v bool) {
	if v {
		c.P = mask.Set(c.P, mask.I3, 1)
	} else {
		c.P = mask.Unset(c.P, mask.I3, mask.I3)
	}
}

// updateZN sets Zero and Negative from the destination of a write, as
// spec.md requires of every instruction that writes a result to a
// register or flagged memory location.
func (c *Cpu) updateZN(v byte) {
	c.SetZero(v == 0)
	c.SetNegative(v&0x80 != 0)
}
