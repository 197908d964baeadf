package cpu

// An Opcode pairs an instruction handler with the addressing mode its byte
// encoding selects. Multiple opcode bytes run the same handler, differing
// only in how the operand is retrieved; that difference is resolved by the
// addressing unit before the handler runs.
//
// http://www.6502.org/tutorials/6502opcodes.html
type Opcode struct {
	Name string
	Mode AddressingMode
	Exec func(c *Cpu)
}

// The official instruction set: 151 opcode bytes mapping onto 56 mnemonics.
var opcodes = map[byte]Opcode{
	0x69: {Exec: (*Cpu).ADC, Name: "ADC", Mode: Immediate},
	0x65: {Exec: (*Cpu).ADC, Name: "ADC", Mode: ZeroPage},
	0x75: {Exec: (*Cpu).ADC, Name: "ADC", Mode: ZeroPageX},
	0x6D: {Exec: (*Cpu).ADC, Name: "ADC", Mode: Absolute},
	0x7D: {Exec: (*Cpu).ADC, Name: "ADC", Mode: AbsoluteX},
	0x79: {Exec: (*Cpu).ADC, Name: "ADC", Mode: AbsoluteY},
	0x61: {Exec: (*Cpu).ADC, Name: "ADC", Mode: IndirectX},
	0x71: {Exec: (*Cpu).ADC, Name: "ADC", Mode: IndirectY},
	0x29: {Exec: (*Cpu).AND, Name: "AND", Mode: Immediate},
	0x25: {Exec: (*Cpu).AND, Name: "AND", Mode: ZeroPage},
	0x35: {Exec: (*Cpu).AND, Name: "AND", Mode: ZeroPageX},
	0x2D: {Exec: (*Cpu).AND, Name: "AND", Mode: Absolute},
	0x3D: {Exec: (*Cpu).AND, Name: "AND", Mode: AbsoluteX},
	0x39: {Exec: (*Cpu).AND, Name: "AND", Mode: AbsoluteY},
	0x21: {Exec: (*Cpu).AND, Name: "AND", Mode: IndirectX},
	0x31: {Exec: (*Cpu).AND, Name: "AND", Mode: IndirectY},
	0x0A: {Exec: (*Cpu).ASL, Name: "ASL", Mode: Accumulator},
	0x06: {Exec: (*Cpu).ASL, Name: "ASL", Mode: ZeroPage},
	0x16: {Exec: (*Cpu).ASL, Name: "ASL", Mode: ZeroPageX},
	0x0E: {Exec: (*Cpu).ASL, Name: "ASL", Mode: Absolute},
	0x1E: {Exec: (*Cpu).ASL, Name: "ASL", Mode: AbsoluteX},
	0x24: {Exec: (*Cpu).BIT, Name: "BIT", Mode: ZeroPage},
	0x2C: {Exec: (*Cpu).BIT, Name: "BIT", Mode: Absolute},
	0x00: {Exec: (*Cpu).BRK, Name: "BRK", Mode: Implied},
	0xC9: {Exec: (*Cpu).CMP, Name: "CMP", Mode: Immediate},
	0xC5: {Exec: (*Cpu).CMP, Name: "CMP", Mode: ZeroPage},
	0xD5: {Exec: (*Cpu).CMP, Name: "CMP", Mode: ZeroPageX},
	0xCD: {Exec: (*Cpu).CMP, Name: "CMP", Mode: Absolute},
	0xDD: {Exec: (*Cpu).CMP, Name: "CMP", Mode: AbsoluteX},
	0xD9: {Exec: (*Cpu).CMP, Name: "CMP", Mode: AbsoluteY},
	0xC1: {Exec: (*Cpu).CMP, Name: "CMP", Mode: IndirectX},
	0xD1: {Exec: (*Cpu).CMP, Name: "CMP", Mode: IndirectY},
	0xE0: {Exec: (*Cpu).CPX, Name: "CPX", Mode: Immediate},
	0xE4: {Exec: (*Cpu).CPX, Name: "CPX", Mode: ZeroPage},
	0xEC: {Exec: (*Cpu).CPX, Name: "CPX", Mode: Absolute},
	0xC0: {Exec: (*Cpu).CPY, Name: "CPY", Mode: Immediate},
	0xC4: {Exec: (*Cpu).CPY, Name: "CPY", Mode: ZeroPage},
	0xCC: {Exec: (*Cpu).CPY, Name: "CPY", Mode: Absolute},
	0xC6: {Exec: (*Cpu).DEC, Name: "DEC", Mode: ZeroPage},
	0xD6: {Exec: (*Cpu).DEC, Name: "DEC", Mode: ZeroPageX},
	0xCE: {Exec: (*Cpu).DEC, Name: "DEC", Mode: Absolute},
	0xDE: {Exec: (*Cpu).DEC, Name: "DEC", Mode: AbsoluteX},
	0x49: {Exec: (*Cpu).EOR, Name: "EOR", Mode: Immediate},
	0x45: {Exec: (*Cpu).EOR, Name: "EOR", Mode: ZeroPage},
	0x55: {Exec: (*Cpu).EOR, Name: "EOR", Mode: ZeroPageX},
	0x4D: {Exec: (*Cpu).EOR, Name: "EOR", Mode: Absolute},
	0x5D: {Exec: (*Cpu).EOR, Name: "EOR", Mode: AbsoluteX},
	0x59: {Exec: (*Cpu).EOR, Name: "EOR", Mode: AbsoluteY},
	0x41: {Exec: (*Cpu).EOR, Name: "EOR", Mode: IndirectX},
	0x51: {Exec: (*Cpu).EOR, Name: "EOR", Mode: IndirectY},
	0xE6: {Exec: (*Cpu).INC, Name: "INC", Mode: ZeroPage},
	0xF6: {Exec: (*Cpu).INC, Name: "INC", Mode: ZeroPageX},
	0xEE: {Exec: (*Cpu).INC, Name: "INC", Mode: Absolute},
	0xFE: {Exec: (*Cpu).INC, Name: "INC", Mode: AbsoluteX},
	0x4C: {Exec: (*Cpu).JMP, Name: "JMP", Mode: Absolute},
	0x6C: {Exec: (*Cpu).JMP, Name: "JMP", Mode: Indirect},
	0x20: {Exec: (*Cpu).JSR, Name: "JSR", Mode: Absolute},
	0xA9: {Exec: (*Cpu).LDA, Name: "LDA", Mode: Immediate},
	0xA5: {Exec: (*Cpu).LDA, Name: "LDA", Mode: ZeroPage},
	0xB5: {Exec: (*Cpu).LDA, Name: "LDA", Mode: ZeroPageX},
	0xAD: {Exec: (*Cpu).LDA, Name: "LDA", Mode: Absolute},
	0xBD: {Exec: (*Cpu).LDA, Name: "LDA", Mode: AbsoluteX},
	0xB9: {Exec: (*Cpu).LDA, Name: "LDA", Mode: AbsoluteY},
	0xA1: {Exec: (*Cpu).LDA, Name: "LDA", Mode: IndirectX},
	0xB1: {Exec: (*Cpu).LDA, Name: "LDA", Mode: IndirectY},
	0xA2: {Exec: (*Cpu).LDX, Name: "LDX", Mode: Immediate},
	0xA6: {Exec: (*Cpu).LDX, Name: "LDX", Mode: ZeroPage},
	0xB6: {Exec: (*Cpu).LDX, Name: "LDX", Mode: ZeroPageY},
	0xAE: {Exec: (*Cpu).LDX, Name: "LDX", Mode: Absolute},
	0xBE: {Exec: (*Cpu).LDX, Name: "LDX", Mode: AbsoluteY},
	0xA0: {Exec: (*Cpu).LDY, Name: "LDY", Mode: Immediate},
	0xA4: {Exec: (*Cpu).LDY, Name: "LDY", Mode: ZeroPage},
	0xB4: {Exec: (*Cpu).LDY, Name: "LDY", Mode: ZeroPageX},
	0xAC: {Exec: (*Cpu).LDY, Name: "LDY", Mode: Absolute},
	0xBC: {Exec: (*Cpu).LDY, Name: "LDY", Mode: AbsoluteX},
	0x4A: {Exec: (*Cpu).LSR, Name: "LSR", Mode: Accumulator},
	0x46: {Exec: (*Cpu).LSR, Name: "LSR", Mode: ZeroPage},
	0x56: {Exec: (*Cpu).LSR, Name: "LSR", Mode: ZeroPageX},
	0x4E: {Exec: (*Cpu).LSR, Name: "LSR", Mode: Absolute},
	0x5E: {Exec: (*Cpu).LSR, Name: "LSR", Mode: AbsoluteX},
	0xEA: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Implied},
	0x09: {Exec: (*Cpu).ORA, Name: "ORA", Mode: Immediate},
	0x05: {Exec: (*Cpu).ORA, Name: "ORA", Mode: ZeroPage},
	0x15: {Exec: (*Cpu).ORA, Name: "ORA", Mode: ZeroPageX},
	0x0D: {Exec: (*Cpu).ORA, Name: "ORA", Mode: Absolute},
	0x1D: {Exec: (*Cpu).ORA, Name: "ORA", Mode: AbsoluteX},
	0x19: {Exec: (*Cpu).ORA, Name: "ORA", Mode: AbsoluteY},
	0x01: {Exec: (*Cpu).ORA, Name: "ORA", Mode: IndirectX},
	0x11: {Exec: (*Cpu).ORA, Name: "ORA", Mode: IndirectY},
	0x2A: {Exec: (*Cpu).ROL, Name: "ROL", Mode: Accumulator},
	0x26: {Exec: (*Cpu).ROL, Name: "ROL", Mode: ZeroPage},
	0x36: {Exec: (*Cpu).ROL, Name: "ROL", Mode: ZeroPageX},
	0x2E: {Exec: (*Cpu).ROL, Name: "ROL", Mode: Absolute},
	0x3E: {Exec: (*Cpu).ROL, Name: "ROL", Mode: AbsoluteX},
	0x6A: {Exec: (*Cpu).ROR, Name: "ROR", Mode: Accumulator},
	0x66: {Exec: (*Cpu).ROR, Name: "ROR", Mode: ZeroPage},
	0x76: {Exec: (*Cpu).ROR, Name: "ROR", Mode: ZeroPageX},
	0x6E: {Exec: (*Cpu).ROR, Name: "ROR", Mode: Absolute},
	0x7E: {Exec: (*Cpu).ROR, Name: "ROR", Mode: AbsoluteX},
	0x40: {Exec: (*Cpu).RTI, Name: "RTI", Mode: Implied},
	0x60: {Exec: (*Cpu).RTS, Name: "RTS", Mode: Implied},
	0xE9: {Exec: (*Cpu).SBC, Name: "SBC", Mode: Immediate},
	0xE5: {Exec: (*Cpu).SBC, Name: "SBC", Mode: ZeroPage},
	0xF5: {Exec: (*Cpu).SBC, Name: "SBC", Mode: ZeroPageX},
	0xED: {Exec: (*Cpu).SBC, Name: "SBC", Mode: Absolute},
	0xFD: {Exec: (*Cpu).SBC, Name: "SBC", Mode: AbsoluteX},
	0xF9: {Exec: (*Cpu).SBC, Name: "SBC", Mode: AbsoluteY},
	0xE1: {Exec: (*Cpu).SBC, Name: "SBC", Mode: IndirectX},
	0xF1: {Exec: (*Cpu).SBC, Name: "SBC", Mode: IndirectY},
	0x85: {Exec: (*Cpu).STA, Name: "STA", Mode: ZeroPage},
	0x95: {Exec: (*Cpu).STA, Name: "STA", Mode: ZeroPageX},
	0x8D: {Exec: (*Cpu).STA, Name: "STA", Mode: Absolute},
	0x9D: {Exec: (*Cpu).STA, Name: "STA", Mode: AbsoluteX},
	0x99: {Exec: (*Cpu).STA, Name: "STA", Mode: AbsoluteY},
	0x81: {Exec: (*Cpu).STA, Name: "STA", Mode: IndirectX},
	0x91: {Exec: (*Cpu).STA, Name: "STA", Mode: IndirectY},
	0x86: {Exec: (*Cpu).STX, Name: "STX", Mode: ZeroPage},
	0x96: {Exec: (*Cpu).STX, Name: "STX", Mode: ZeroPageY},
	0x8E: {Exec: (*Cpu).STX, Name: "STX", Mode: Absolute},
	0x84: {Exec: (*Cpu).STY, Name: "STY", Mode: ZeroPage},
	0x94: {Exec: (*Cpu).STY, Name: "STY", Mode: ZeroPageX},
	0x8C: {Exec: (*Cpu).STY, Name: "STY", Mode: Absolute},

	// clear, set
	0x18: {Exec: (*Cpu).CLC, Name: "CLC", Mode: Implied},
	0x38: {Exec: (*Cpu).SEC, Name: "SEC", Mode: Implied},
	0x58: {Exec: (*Cpu).CLI, Name: "CLI", Mode: Implied},
	0x78: {Exec: (*Cpu).SEI, Name: "SEI", Mode: Implied},
	0xB8: {Exec: (*Cpu).CLV, Name: "CLV", Mode: Implied},
	0xD8: {Exec: (*Cpu).CLD, Name: "CLD", Mode: Implied},
	0xF8: {Exec: (*Cpu).SED, Name: "SED", Mode: Implied},

	// increment, decrement, transfer
	0xAA: {Exec: (*Cpu).TAX, Name: "TAX", Mode: Implied},
	0x8A: {Exec: (*Cpu).TXA, Name: "TXA", Mode: Implied},
	0xCA: {Exec: (*Cpu).DEX, Name: "DEX", Mode: Implied},
	0xE8: {Exec: (*Cpu).INX, Name: "INX", Mode: Implied},
	0xA8: {Exec: (*Cpu).TAY, Name: "TAY", Mode: Implied},
	0x98: {Exec: (*Cpu).TYA, Name: "TYA", Mode: Implied},
	0x88: {Exec: (*Cpu).DEY, Name: "DEY", Mode: Implied},
	0xC8: {Exec: (*Cpu).INY, Name: "INY", Mode: Implied},

	// branch
	0x10: {Exec: (*Cpu).BPL, Name: "BPL", Mode: Relative},
	0x30: {Exec: (*Cpu).BMI, Name: "BMI", Mode: Relative},
	0x50: {Exec: (*Cpu).BVC, Name: "BVC", Mode: Relative},
	0x70: {Exec: (*Cpu).BVS, Name: "BVS", Mode: Relative},
	0x90: {Exec: (*Cpu).BCC, Name: "BCC", Mode: Relative},
	0xB0: {Exec: (*Cpu).BCS, Name: "BCS", Mode: Relative},
	0xD0: {Exec: (*Cpu).BNE, Name: "BNE", Mode: Relative},
	0xF0: {Exec: (*Cpu).BEQ, Name: "BEQ", Mode: Relative},

	// stack
	0x9A: {Exec: (*Cpu).TXS, Name: "TXS", Mode: Implied},
	0xBA: {Exec: (*Cpu).TSX, Name: "TSX", Mode: Implied},
	0x48: {Exec: (*Cpu).PHA, Name: "PHA", Mode: Implied},
	0x68: {Exec: (*Cpu).PLA, Name: "PLA", Mode: Implied},
	0x08: {Exec: (*Cpu).PHP, Name: "PHP", Mode: Implied},
	0x28: {Exec: (*Cpu).PLP, Name: "PLP", Mode: Implied},
}

// The documented illegal opcodes, merged into the dispatch table when the
// Cpu is constructed with them enabled. The operand-consuming NOP variants
// are here too, so programs using them keep the program counter in step.
var illegalOpcodes = map[byte]Opcode{
	0x07: {Exec: (*Cpu).SLO, Name: "SLO", Mode: ZeroPage},
	0x17: {Exec: (*Cpu).SLO, Name: "SLO", Mode: ZeroPageX},
	0x0F: {Exec: (*Cpu).SLO, Name: "SLO", Mode: Absolute},
	0x1F: {Exec: (*Cpu).SLO, Name: "SLO", Mode: AbsoluteX},
	0x1B: {Exec: (*Cpu).SLO, Name: "SLO", Mode: AbsoluteY},
	0x03: {Exec: (*Cpu).SLO, Name: "SLO", Mode: IndirectX},
	0x13: {Exec: (*Cpu).SLO, Name: "SLO", Mode: IndirectY},
	0x27: {Exec: (*Cpu).RLA, Name: "RLA", Mode: ZeroPage},
	0x37: {Exec: (*Cpu).RLA, Name: "RLA", Mode: ZeroPageX},
	0x2F: {Exec: (*Cpu).RLA, Name: "RLA", Mode: Absolute},
	0x3F: {Exec: (*Cpu).RLA, Name: "RLA", Mode: AbsoluteX},
	0x3B: {Exec: (*Cpu).RLA, Name: "RLA", Mode: AbsoluteY},
	0x23: {Exec: (*Cpu).RLA, Name: "RLA", Mode: IndirectX},
	0x33: {Exec: (*Cpu).RLA, Name: "RLA", Mode: IndirectY},
	0x47: {Exec: (*Cpu).SRE, Name: "SRE", Mode: ZeroPage},
	0x57: {Exec: (*Cpu).SRE, Name: "SRE", Mode: ZeroPageX},
	0x4F: {Exec: (*Cpu).SRE, Name: "SRE", Mode: Absolute},
	0x5F: {Exec: (*Cpu).SRE, Name: "SRE", Mode: AbsoluteX},
	0x5B: {Exec: (*Cpu).SRE, Name: "SRE", Mode: AbsoluteY},
	0x43: {Exec: (*Cpu).SRE, Name: "SRE", Mode: IndirectX},
	0x53: {Exec: (*Cpu).SRE, Name: "SRE", Mode: IndirectY},
	0x67: {Exec: (*Cpu).RRA, Name: "RRA", Mode: ZeroPage},
	0x77: {Exec: (*Cpu).RRA, Name: "RRA", Mode: ZeroPageX},
	0x6F: {Exec: (*Cpu).RRA, Name: "RRA", Mode: Absolute},
	0x7F: {Exec: (*Cpu).RRA, Name: "RRA", Mode: AbsoluteX},
	0x7B: {Exec: (*Cpu).RRA, Name: "RRA", Mode: AbsoluteY},
	0x63: {Exec: (*Cpu).RRA, Name: "RRA", Mode: IndirectX},
	0x73: {Exec: (*Cpu).RRA, Name: "RRA", Mode: IndirectY},
	0x87: {Exec: (*Cpu).SAX, Name: "SAX", Mode: ZeroPage},
	0x97: {Exec: (*Cpu).SAX, Name: "SAX", Mode: ZeroPageY},
	0x8F: {Exec: (*Cpu).SAX, Name: "SAX", Mode: Absolute},
	0x83: {Exec: (*Cpu).SAX, Name: "SAX", Mode: IndirectX},
	0xA7: {Exec: (*Cpu).LAX, Name: "LAX", Mode: ZeroPage},
	0xB7: {Exec: (*Cpu).LAX, Name: "LAX", Mode: ZeroPageY},
	0xAF: {Exec: (*Cpu).LAX, Name: "LAX", Mode: Absolute},
	0xBF: {Exec: (*Cpu).LAX, Name: "LAX", Mode: AbsoluteY},
	0xA3: {Exec: (*Cpu).LAX, Name: "LAX", Mode: IndirectX},
	0xB3: {Exec: (*Cpu).LAX, Name: "LAX", Mode: IndirectY},
	0xC7: {Exec: (*Cpu).DCP, Name: "DCP", Mode: ZeroPage},
	0xD7: {Exec: (*Cpu).DCP, Name: "DCP", Mode: ZeroPageX},
	0xCF: {Exec: (*Cpu).DCP, Name: "DCP", Mode: Absolute},
	0xDF: {Exec: (*Cpu).DCP, Name: "DCP", Mode: AbsoluteX},
	0xDB: {Exec: (*Cpu).DCP, Name: "DCP", Mode: AbsoluteY},
	0xC3: {Exec: (*Cpu).DCP, Name: "DCP", Mode: IndirectX},
	0xD3: {Exec: (*Cpu).DCP, Name: "DCP", Mode: IndirectY},
	0xE7: {Exec: (*Cpu).ISB, Name: "ISB", Mode: ZeroPage},
	0xF7: {Exec: (*Cpu).ISB, Name: "ISB", Mode: ZeroPageX},
	0xEF: {Exec: (*Cpu).ISB, Name: "ISB", Mode: Absolute},
	0xFF: {Exec: (*Cpu).ISB, Name: "ISB", Mode: AbsoluteX},
	0xFB: {Exec: (*Cpu).ISB, Name: "ISB", Mode: AbsoluteY},
	0xE3: {Exec: (*Cpu).ISB, Name: "ISB", Mode: IndirectX},
	0xF3: {Exec: (*Cpu).ISB, Name: "ISB", Mode: IndirectY},
	0x0B: {Exec: (*Cpu).ANC, Name: "ANC", Mode: Immediate},
	0x2B: {Exec: (*Cpu).ANC, Name: "ANC", Mode: Immediate},
	0x4B: {Exec: (*Cpu).ASR, Name: "ASR", Mode: Immediate},
	0x6B: {Exec: (*Cpu).ARR, Name: "ARR", Mode: Immediate},
	0xCB: {Exec: (*Cpu).SBX, Name: "SBX", Mode: Immediate},
	0xBB: {Exec: (*Cpu).LAS, Name: "LAS", Mode: AbsoluteY},
	0xEB: {Exec: (*Cpu).SBC, Name: "SBC", Mode: Immediate},

	// NOPs: implied ones, then those that consume operands
	0x1A: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Implied},
	0x3A: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Implied},
	0x5A: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Implied},
	0x7A: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Implied},
	0xDA: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Implied},
	0xFA: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Implied},
	0x80: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Immediate},
	0x82: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Immediate},
	0x89: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Immediate},
	0xC2: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Immediate},
	0xE2: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Immediate},
	0x04: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPage},
	0x44: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPage},
	0x64: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPage},
	0x14: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPageX},
	0x34: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPageX},
	0x54: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPageX},
	0x74: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPageX},
	0xD4: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPageX},
	0xF4: {Exec: (*Cpu).NOP, Name: "NOP", Mode: ZeroPageX},
	0x0C: {Exec: (*Cpu).NOP, Name: "NOP", Mode: Absolute},
	0x1C: {Exec: (*Cpu).NOP, Name: "NOP", Mode: AbsoluteX},
	0x3C: {Exec: (*Cpu).NOP, Name: "NOP", Mode: AbsoluteX},
	0x5C: {Exec: (*Cpu).NOP, Name: "NOP", Mode: AbsoluteX},
	0x7C: {Exec: (*Cpu).NOP, Name: "NOP", Mode: AbsoluteX},
	0xDC: {Exec: (*Cpu).NOP, Name: "NOP", Mode: AbsoluteX},
	0xFC: {Exec: (*Cpu).NOP, Name: "NOP", Mode: AbsoluteX},
}

// Lookup returns the table entry for an opcode byte as the Cpu would
// dispatch it, for disassembly and debugger use.
func (c *Cpu) Lookup(b byte) (Opcode, bool) {
	op, ok := c.table[b]
	return op, ok
}
