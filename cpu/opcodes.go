package cpu

// A Handler implements one mnemonic. mode is the addressing mode the
// Opcode table associates with the specific byte that was dispatched;
// handlers that operate on a fixed register (TAX, INX, CLC, ...) ignore
// it.
type Handler func(c *Cpu, mode AddressingMode)

// An Opcode describes one of the 256 possible byte values: which
// mnemonic it invokes, under which addressing mode, and how many bytes
// (including the opcode byte itself) the instruction occupies.
type Opcode struct {
	Mnemonic string
	Mode     AddressingMode
	Length   byte
	Handler  Handler
}

// opcodes is the read-only byte -> Opcode table, built once at package
// init. Unknown bytes are absent from the map; Step treats a lookup
// miss as fatal.
var opcodes = map[byte]Opcode{
	0x69: {Mnemonic: "ADC", Mode: Immediate, Length: 2, Handler: (*Cpu).ADC},
	0x65: {Mnemonic: "ADC", Mode: ZeroPage, Length: 2, Handler: (*Cpu).ADC},
	0x75: {Mnemonic: "ADC", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).ADC},
	0x6D: {Mnemonic: "ADC", Mode: Absolute, Length: 3, Handler: (*Cpu).ADC},
	0x7D: {Mnemonic: "ADC", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).ADC},
	0x79: {Mnemonic: "ADC", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).ADC},
	0x61: {Mnemonic: "ADC", Mode: IndirectX, Length: 2, Handler: (*Cpu).ADC},
	0x71: {Mnemonic: "ADC", Mode: IndirectY, Length: 2, Handler: (*Cpu).ADC},

	0x29: {Mnemonic: "AND", Mode: Immediate, Length: 2, Handler: (*Cpu).AND},
	0x25: {Mnemonic: "AND", Mode: ZeroPage, Length: 2, Handler: (*Cpu).AND},
	0x35: {Mnemonic: "AND", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).AND},
	0x2D: {Mnemonic: "AND", Mode: Absolute, Length: 3, Handler: (*Cpu).AND},
	0x3D: {Mnemonic: "AND", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).AND},
	0x39: {Mnemonic: "AND", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).AND},
	0x21: {Mnemonic: "AND", Mode: IndirectX, Length: 2, Handler: (*Cpu).AND},
	0x31: {Mnemonic: "AND", Mode: IndirectY, Length: 2, Handler: (*Cpu).AND},

	0x0A: {Mnemonic: "ASL", Mode: Accumulator, Length: 1, Handler: (*Cpu).ASL},
	0x06: {Mnemonic: "ASL", Mode: ZeroPage, Length: 2, Handler: (*Cpu).ASL},
	0x16: {Mnemonic: "ASL", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).ASL},
	0x0E: {Mnemonic: "ASL", Mode: Absolute, Length: 3, Handler: (*Cpu).ASL},
	0x1E: {Mnemonic: "ASL", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).ASL},

	0x24: {Mnemonic: "BIT", Mode: ZeroPage, Length: 2, Handler: (*Cpu).BIT},
	0x2C: {Mnemonic: "BIT", Mode: Absolute, Length: 3, Handler: (*Cpu).BIT},

	0x00: {Mnemonic: "BRK", Mode: Implied, Length: 1, Handler: (*Cpu).BRK},

	0xC9: {Mnemonic: "CMP", Mode: Immediate, Length: 2, Handler: (*Cpu).CMP},
	0xC5: {Mnemonic: "CMP", Mode: ZeroPage, Length: 2, Handler: (*Cpu).CMP},
	0xD5: {Mnemonic: "CMP", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).CMP},
	0xCD: {Mnemonic: "CMP", Mode: Absolute, Length: 3, Handler: (*Cpu).CMP},
	0xDD: {Mnemonic: "CMP", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).CMP},
	0xD9: {Mnemonic: "CMP", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).CMP},
	0xC1: {Mnemonic: "CMP", Mode: IndirectX, Length: 2, Handler: (*Cpu).CMP},
	0xD1: {Mnemonic: "CMP", Mode: IndirectY, Length: 2, Handler: (*Cpu).CMP},

	0xE0: {Mnemonic: "CPX", Mode: Immediate, Length: 2, Handler: (*Cpu).CPX},
	0xE4: {Mnemonic: "CPX", Mode: ZeroPage, Length: 2, Handler: (*Cpu).CPX},
	0xEC: {Mnemonic: "CPX", Mode: Absolute, Length: 3, Handler: (*Cpu).CPX},

	0xC0: {Mnemonic: "CPY", Mode: Immediate, Length: 2, Handler: (*Cpu).CPY},
	0xC4: {Mnemonic: "CPY", Mode: ZeroPage, Length: 2, Handler: (*Cpu).CPY},
	0xCC: {Mnemonic: "CPY", Mode: Absolute, Length: 3, Handler: (*Cpu).CPY},

	0xC6: {Mnemonic: "DEC", Mode: ZeroPage, Length: 2, Handler: (*Cpu).DEC},
	0xD6: {Mnemonic: "DEC", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).DEC},
	0xCE: {Mnemonic: "DEC", Mode: Absolute, Length: 3, Handler: (*Cpu).DEC},
	0xDE: {Mnemonic: "DEC", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).DEC},

	0x49: {Mnemonic: "EOR", Mode: Immediate, Length: 2, Handler: (*Cpu).EOR},
	0x45: {Mnemonic: "EOR", Mode: ZeroPage, Length: 2, Handler: (*Cpu).EOR},
	0x55: {Mnemonic: "EOR", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).EOR},
	0x4D: {Mnemonic: "EOR", Mode: Absolute, Length: 3, Handler: (*Cpu).EOR},
	0x5D: {Mnemonic: "EOR", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).EOR},
	0x59: {Mnemonic: "EOR", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).EOR},
	0x41: {Mnemonic: "EOR", Mode: IndirectX, Length: 2, Handler: (*Cpu).EOR},
	0x51: {Mnemonic: "EOR", Mode: IndirectY, Length: 2, Handler: (*Cpu).EOR},

	0xE6: {Mnemonic: "INC", Mode: ZeroPage, Length: 2, Handler: (*Cpu).INC},
	0xF6: {Mnemonic: "INC", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).INC},
	0xEE: {Mnemonic: "INC", Mode: Absolute, Length: 3, Handler: (*Cpu).INC},
	0xFE: {Mnemonic: "INC", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).INC},

	0x4C: {Mnemonic: "JMP", Mode: Absolute, Length: 3, Handler: (*Cpu).JMP},
	0x6C: {Mnemonic: "JMP", Mode: Indirect, Length: 3, Handler: (*Cpu).JMP},

	0x20: {Mnemonic: "JSR", Mode: Absolute, Length: 3, Handler: (*Cpu).JSR},

	0xA9: {Mnemonic: "LDA", Mode: Immediate, Length: 2, Handler: (*Cpu).LDA},
	0xA5: {Mnemonic: "LDA", Mode: ZeroPage, Length: 2, Handler: (*Cpu).LDA},
	0xB5: {Mnemonic: "LDA", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).LDA},
	0xAD: {Mnemonic: "LDA", Mode: Absolute, Length: 3, Handler: (*Cpu).LDA},
	0xBD: {Mnemonic: "LDA", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).LDA},
	0xB9: {Mnemonic: "LDA", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).LDA},
	0xA1: {Mnemonic: "LDA", Mode: IndirectX, Length: 2, Handler: (*Cpu).LDA},
	0xB1: {Mnemonic: "LDA", Mode: IndirectY, Length: 2, Handler: (*Cpu).LDA},

	0xA2: {Mnemonic: "LDX", Mode: Immediate, Length: 2, Handler: (*Cpu).LDX},
	0xA6: {Mnemonic: "LDX", Mode: ZeroPage, Length: 2, Handler: (*Cpu).LDX},
	0xB6: {Mnemonic: "LDX", Mode: ZeroPageY, Length: 2, Handler: (*Cpu).LDX},
	0xAE: {Mnemonic: "LDX", Mode: Absolute, Length: 3, Handler: (*Cpu).LDX},
	0xBE: {Mnemonic: "LDX", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).LDX},

	0xA0: {Mnemonic: "LDY", Mode: Immediate, Length: 2, Handler: (*Cpu).LDY},
	0xA4: {Mnemonic: "LDY", Mode: ZeroPage, Length: 2, Handler: (*Cpu).LDY},
	0xB4: {Mnemonic: "LDY", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).LDY},
	0xAC: {Mnemonic: "LDY", Mode: Absolute, Length: 3, Handler: (*Cpu).LDY},
	0xBC: {Mnemonic: "LDY", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).LDY},

	0x4A: {Mnemonic: "LSR", Mode: Accumulator, Length: 1, Handler: (*Cpu).LSR},
	0x46: {Mnemonic: "LSR", Mode: ZeroPage, Length: 2, Handler: (*Cpu).LSR},
	0x56: {Mnemonic: "LSR", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).LSR},
	0x4E: {Mnemonic: "LSR", Mode: Absolute, Length: 3, Handler: (*Cpu).LSR},
	0x5E: {Mnemonic: "LSR", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).LSR},

	0xEA: {Mnemonic: "NOP", Mode: Implied, Length: 1, Handler: (*Cpu).NOP},

	0x09: {Mnemonic: "ORA", Mode: Immediate, Length: 2, Handler: (*Cpu).ORA},
	0x05: {Mnemonic: "ORA", Mode: ZeroPage, Length: 2, Handler: (*Cpu).ORA},
	0x15: {Mnemonic: "ORA", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).ORA},
	0x0D: {Mnemonic: "ORA", Mode: Absolute, Length: 3, Handler: (*Cpu).ORA},
	0x1D: {Mnemonic: "ORA", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).ORA},
	0x19: {Mnemonic: "ORA", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).ORA},
	0x01: {Mnemonic: "ORA", Mode: IndirectX, Length: 2, Handler: (*Cpu).ORA},
	0x11: {Mnemonic: "ORA", Mode: IndirectY, Length: 2, Handler: (*Cpu).ORA},

	0x2A: {Mnemonic: "ROL", Mode: Accumulator, Length: 1, Handler: (*Cpu).ROL},
	0x26: {Mnemonic: "ROL", Mode: ZeroPage, Length: 2, Handler: (*Cpu).ROL},
	0x36: {Mnemonic: "ROL", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).ROL},
	0x2E: {Mnemonic: "ROL", Mode: Absolute, Length: 3, Handler: (*Cpu).ROL},
	0x3E: {Mnemonic: "ROL", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).ROL},

	0x6A: {Mnemonic: "ROR", Mode: Accumulator, Length: 1, Handler: (*Cpu).ROR},
	0x66: {Mnemonic: "ROR", Mode: ZeroPage, Length: 2, Handler: (*Cpu).ROR},
	0x76: {Mnemonic: "ROR", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).ROR},
	0x6E: {Mnemonic: "ROR", Mode: Absolute, Length: 3, Handler: (*Cpu).ROR},
	0x7E: {Mnemonic: "ROR", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).ROR},

	0x40: {Mnemonic: "RTI", Mode: Implied, Length: 1, Handler: (*Cpu).RTI},
	0x60: {Mnemonic: "RTS", Mode: Implied, Length: 1, Handler: (*Cpu).RTS},

	0xE9: {Mnemonic: "SBC", Mode: Immediate, Length: 2, Handler: (*Cpu).SBC},
	0xE5: {Mnemonic: "SBC", Mode: ZeroPage, Length: 2, Handler: (*Cpu).SBC},
	0xF5: {Mnemonic: "SBC", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).SBC},
	0xED: {Mnemonic: "SBC", Mode: Absolute, Length: 3, Handler: (*Cpu).SBC},
	0xFD: {Mnemonic: "SBC", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).SBC},
	0xF9: {Mnemonic: "SBC", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).SBC},
	0xE1: {Mnemonic: "SBC", Mode: IndirectX, Length: 2, Handler: (*Cpu).SBC},
	0xF1: {Mnemonic: "SBC", Mode: IndirectY, Length: 2, Handler: (*Cpu).SBC},

	0x85: {Mnemonic: "STA", Mode: ZeroPage, Length: 2, Handler: (*Cpu).STA},
	0x95: {Mnemonic: "STA", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).STA},
	0x8D: {Mnemonic: "STA", Mode: Absolute, Length: 3, Handler: (*Cpu).STA},
	0x9D: {Mnemonic: "STA", Mode: AbsoluteX, Length: 3, Handler: (*Cpu).STA},
	0x99: {Mnemonic: "STA", Mode: AbsoluteY, Length: 3, Handler: (*Cpu).STA},
	0x81: {Mnemonic: "STA", Mode: IndirectX, Length: 2, Handler: (*Cpu).STA},
	0x91: {Mnemonic: "STA", Mode: IndirectY, Length: 2, Handler: (*Cpu).STA},

	0x86: {Mnemonic: "STX", Mode: ZeroPage, Length: 2, Handler: (*Cpu).STX},
	0x96: {Mnemonic: "STX", Mode: ZeroPageY, Length: 2, Handler: (*Cpu).STX},
	0x8E: {Mnemonic: "STX", Mode: Absolute, Length: 3, Handler: (*Cpu).STX},

	0x84: {Mnemonic: "STY", Mode: ZeroPage, Length: 2, Handler: (*Cpu).STY},
	0x94: {Mnemonic: "STY", Mode: ZeroPageX, Length: 2, Handler: (*Cpu).STY},
	0x8C: {Mnemonic: "STY", Mode: Absolute, Length: 3, Handler: (*Cpu).STY},

	// clear / set
	0x18: {Mnemonic: "CLC", Mode: Implied, Length: 1, Handler: (*Cpu).CLC},
	0x38: {Mnemonic: "SEC", Mode: Implied, Length: 1, Handler: (*Cpu).SEC},
	0x58: {Mnemonic: "CLI", Mode: Implied, Length: 1, Handler: (*Cpu).CLI},
	0x78: {Mnemonic: "SEI", Mode: Implied, Length: 1, Handler: (*Cpu).SEI},
	0xB8: {Mnemonic: "CLV", Mode: Implied, Length: 1, Handler: (*Cpu).CLV},
	0xD8: {Mnemonic: "CLD", Mode: Implied, Length: 1, Handler: (*Cpu).CLD},
	0xF8: {Mnemonic: "SED", Mode: Implied, Length: 1, Handler: (*Cpu).SED},

	// transfers, increment, decrement
	0xAA: {Mnemonic: "TAX", Mode: Implied, Length: 1, Handler: (*Cpu).TAX},
	0x8A: {Mnemonic: "TXA", Mode: Implied, Length: 1, Handler: (*Cpu).TXA},
	0xCA: {Mnemonic: "DEX", Mode: Implied, Length: 1, Handler: (*Cpu).DEX},
	0xE8: {Mnemonic: "INX", Mode: Implied, Length: 1, Handler: (*Cpu).INX},
	0xA8: {Mnemonic: "TAY", Mode: Implied, Length: 1, Handler: (*Cpu).TAY},
	0x98: {Mnemonic: "TYA", Mode: Implied, Length: 1, Handler: (*Cpu).TYA},
	0x88: {Mnemonic: "DEY", Mode: Implied, Length: 1, Handler: (*Cpu).DEY},
	0xC8: {Mnemonic: "INY", Mode: Implied, Length: 1, Handler: (*Cpu).INY},

	// branches
	0x10: {Mnemonic: "BPL", Mode: Relative, Length: 2, Handler: (*Cpu).BPL},
	0x30: {Mnemonic: "BMI", Mode: Relative, Length: 2, Handler: (*Cpu).BMI},
	0x50: {Mnemonic: "BVC", Mode: Relative, Length: 2, Handler: (*Cpu).BVC},
	0x70: {Mnemonic: "BVS", Mode: Relative, Length: 2, Handler: (*Cpu).BVS},
	0x90: {Mnemonic: "BCC", Mode: Relative, Length: 2, Handler: (*Cpu).BCC},
	0xB0: {Mnemonic: "BCS", Mode: Relative, Length: 2, Handler: (*Cpu).BCS},
	0xD0: {Mnemonic: "BNE", Mode: Relative, Length: 2, Handler: (*Cpu).BNE},
	0xF0: {Mnemonic: "BEQ", Mode: Relative, Length: 2, Handler: (*Cpu).BEQ},

	// stack
	0x9A: {Mnemonic: "TXS", Mode: Implied, Length: 1, Handler: (*Cpu).TXS},
	0xBA: {Mnemonic: "TSX", Mode: Implied, Length: 1, Handler: (*Cpu).TSX},
	0x48: {Mnemonic: "PHA", Mode: Implied, Length: 1, Handler: (*Cpu).PHA},
	0x68: {Mnemonic: "PLA", Mode: Implied, Length: 1, Handler: (*Cpu).PLA},
	0x08: {Mnemonic: "PHP", Mode: Implied, Length: 1, Handler: (*Cpu).PHP},
	0x28: {Mnemonic: "PLP", Mode: Implied, Length: 1, Handler: (*Cpu).PLP},
}
