package cpu

// opcodeInfo is the decode result for one opcode byte: which mnemonic
// it names, which addressing mode it uses, and the base cycle count
// (official 6502 timing, no page-cross or branch-taken penalties).
type opcodeInfo struct {
	Mnemonic string
	Mode     Mode
	Cycles   int
}

// opcodeTable covers every official 6502 opcode plus the eight
// unofficial mnemonics nestest-style traces exercise (LAX, SAX, DCP,
// ISB, SLO, RLA, SRE, RRA). Bytes absent from this table are not
// recognized by this core and decode to IllegalOpcode.
var opcodeTable = map[uint8]opcodeInfo{
	// ADC
	0x69: {"ADC", ModeIMM, 2}, 0x65: {"ADC", ModeZPG, 3}, 0x75: {"ADC", ModeZPX, 4},
	0x6D: {"ADC", ModeABS, 4}, 0x7D: {"ADC", ModeABX, 4}, 0x79: {"ADC", ModeABY, 4},
	0x61: {"ADC", ModeINX, 6}, 0x71: {"ADC", ModeINY, 5},

	// AND
	0x29: {"AND", ModeIMM, 2}, 0x25: {"AND", ModeZPG, 3}, 0x35: {"AND", ModeZPX, 4},
	0x2D: {"AND", ModeABS, 4}, 0x3D: {"AND", ModeABX, 4}, 0x39: {"AND", ModeABY, 4},
	0x21: {"AND", ModeINX, 6}, 0x31: {"AND", ModeINY, 5},

	// ASL
	0x0A: {"ASL", ModeIMP, 2}, 0x06: {"ASL", ModeZPG, 5}, 0x16: {"ASL", ModeZPX, 6},
	0x0E: {"ASL", ModeABS, 6}, 0x1E: {"ASL", ModeABX, 7},

	// Branches
	0x90: {"BCC", ModeREL, 2}, 0xB0: {"BCS", ModeREL, 2}, 0xF0: {"BEQ", ModeREL, 2},
	0x30: {"BMI", ModeREL, 2}, 0xD0: {"BNE", ModeREL, 2}, 0x10: {"BPL", ModeREL, 2},
	0x50: {"BVC", ModeREL, 2}, 0x70: {"BVS", ModeREL, 2},

	// BIT
	0x24: {"BIT", ModeZPG, 3}, 0x2C: {"BIT", ModeABS, 4},

	// BRK
	0x00: {"BRK", ModeIMP, 7},

	// Flag ops
	0x18: {"CLC", ModeIMP, 2}, 0xD8: {"CLD", ModeIMP, 2}, 0x58: {"CLI", ModeIMP, 2},
	0xB8: {"CLV", ModeIMP, 2}, 0x38: {"SEC", ModeIMP, 2}, 0xF8: {"SED", ModeIMP, 2},
	0x78: {"SEI", ModeIMP, 2},

	// CMP
	0xC9: {"CMP", ModeIMM, 2}, 0xC5: {"CMP", ModeZPG, 3}, 0xD5: {"CMP", ModeZPX, 4},
	0xCD: {"CMP", ModeABS, 4}, 0xDD: {"CMP", ModeABX, 4}, 0xD9: {"CMP", ModeABY, 4},
	0xC1: {"CMP", ModeINX, 6}, 0xD1: {"CMP", ModeINY, 5},

	// CPX / CPY
	0xE0: {"CPX", ModeIMM, 2}, 0xE4: {"CPX", ModeZPG, 3}, 0xEC: {"CPX", ModeABS, 4},
	0xC0: {"CPY", ModeIMM, 2}, 0xC4: {"CPY", ModeZPG, 3}, 0xCC: {"CPY", ModeABS, 4},

	// DEC / DEX / DEY
	0xC6: {"DEC", ModeZPG, 5}, 0xD6: {"DEC", ModeZPX, 6}, 0xCE: {"DEC", ModeABS, 6},
	0xDE: {"DEC", ModeABX, 7}, 0xCA: {"DEX", ModeIMP, 2}, 0x88: {"DEY", ModeIMP, 2},

	// EOR
	0x49: {"EOR", ModeIMM, 2}, 0x45: {"EOR", ModeZPG, 3}, 0x55: {"EOR", ModeZPX, 4},
	0x4D: {"EOR", ModeABS, 4}, 0x5D: {"EOR", ModeABX, 4}, 0x59: {"EOR", ModeABY, 4},
	0x41: {"EOR", ModeINX, 6}, 0x51: {"EOR", ModeINY, 5},

	// INC / INX / INY
	0xE6: {"INC", ModeZPG, 5}, 0xF6: {"INC", ModeZPX, 6}, 0xEE: {"INC", ModeABS, 6},
	0xFE: {"INC", ModeABX, 7}, 0xE8: {"INX", ModeIMP, 2}, 0xC8: {"INY", ModeIMP, 2},

	// JMP / JSR
	0x4C: {"JMP", ModeABS, 3}, 0x6C: {"JMP", ModeIND, 5}, 0x20: {"JSR", ModeABS, 6},

	// LDA / LDX / LDY
	0xA9: {"LDA", ModeIMM, 2}, 0xA5: {"LDA", ModeZPG, 3}, 0xB5: {"LDA", ModeZPX, 4},
	0xAD: {"LDA", ModeABS, 4}, 0xBD: {"LDA", ModeABX, 4}, 0xB9: {"LDA", ModeABY, 4},
	0xA1: {"LDA", ModeINX, 6}, 0xB1: {"LDA", ModeINY, 5},
	0xA2: {"LDX", ModeIMM, 2}, 0xA6: {"LDX", ModeZPG, 3}, 0xB6: {"LDX", ModeZPY, 4},
	0xAE: {"LDX", ModeABS, 4}, 0xBE: {"LDX", ModeABY, 4},
	0xA0: {"LDY", ModeIMM, 2}, 0xA4: {"LDY", ModeZPG, 3}, 0xB4: {"LDY", ModeZPX, 4},
	0xAC: {"LDY", ModeABS, 4}, 0xBC: {"LDY", ModeABX, 4},

	// LSR
	0x4A: {"LSR", ModeIMP, 2}, 0x46: {"LSR", ModeZPG, 5}, 0x56: {"LSR", ModeZPX, 6},
	0x4E: {"LSR", ModeABS, 6}, 0x5E: {"LSR", ModeABX, 7},

	// NOP
	0xEA: {"NOP", ModeIMP, 2},

	// ORA
	0x09: {"ORA", ModeIMM, 2}, 0x05: {"ORA", ModeZPG, 3}, 0x15: {"ORA", ModeZPX, 4},
	0x0D: {"ORA", ModeABS, 4}, 0x1D: {"ORA", ModeABX, 4}, 0x19: {"ORA", ModeABY, 4},
	0x01: {"ORA", ModeINX, 6}, 0x11: {"ORA", ModeINY, 5},

	// Stack
	0x48: {"PHA", ModeIMP, 3}, 0x08: {"PHP", ModeIMP, 3},
	0x68: {"PLA", ModeIMP, 4}, 0x28: {"PLP", ModeIMP, 4},

	// ROL / ROR
	0x2A: {"ROL", ModeIMP, 2}, 0x26: {"ROL", ModeZPG, 5}, 0x36: {"ROL", ModeZPX, 6},
	0x2E: {"ROL", ModeABS, 6}, 0x3E: {"ROL", ModeABX, 7},
	0x6A: {"ROR", ModeIMP, 2}, 0x66: {"ROR", ModeZPG, 5}, 0x76: {"ROR", ModeZPX, 6},
	0x6E: {"ROR", ModeABS, 6}, 0x7E: {"ROR", ModeABX, 7},

	// RTI / RTS
	0x40: {"RTI", ModeIMP, 6}, 0x60: {"RTS", ModeIMP, 6},

	// SBC
	0xE9: {"SBC", ModeIMM, 2}, 0xE5: {"SBC", ModeZPG, 3}, 0xF5: {"SBC", ModeZPX, 4},
	0xED: {"SBC", ModeABS, 4}, 0xFD: {"SBC", ModeABX, 4}, 0xF9: {"SBC", ModeABY, 4},
	0xE1: {"SBC", ModeINX, 6}, 0xF1: {"SBC", ModeINY, 5},

	// STA / STX / STY
	0x85: {"STA", ModeZPG, 3}, 0x95: {"STA", ModeZPX, 4}, 0x8D: {"STA", ModeABS, 4},
	0x9D: {"STA", ModeABX, 5}, 0x99: {"STA", ModeABY, 5}, 0x81: {"STA", ModeINX, 6},
	0x91: {"STA", ModeINY, 6},
	0x86: {"STX", ModeZPG, 3}, 0x96: {"STX", ModeZPY, 4}, 0x8E: {"STX", ModeABS, 4},
	0x84: {"STY", ModeZPG, 3}, 0x94: {"STY", ModeZPX, 4}, 0x8C: {"STY", ModeABS, 4},

	// Transfers
	0xAA: {"TAX", ModeIMP, 2}, 0xA8: {"TAY", ModeIMP, 2}, 0xBA: {"TSX", ModeIMP, 2},
	0x8A: {"TXA", ModeIMP, 2}, 0x9A: {"TXS", ModeIMP, 2}, 0x98: {"TYA", ModeIMP, 2},

	// Unofficial: LAX
	0xA7: {"LAX", ModeZPG, 3}, 0xB7: {"LAX", ModeZPY, 4}, 0xAF: {"LAX", ModeABS, 4},
	0xBF: {"LAX", ModeABY, 4}, 0xA3: {"LAX", ModeINX, 6}, 0xB3: {"LAX", ModeINY, 5},

	// Unofficial: SAX
	0x87: {"SAX", ModeZPG, 3}, 0x97: {"SAX", ModeZPY, 4}, 0x8F: {"SAX", ModeABS, 4},
	0x83: {"SAX", ModeINX, 6},

	// Unofficial: DCP
	0xC7: {"DCP", ModeZPG, 5}, 0xD7: {"DCP", ModeZPX, 6}, 0xCF: {"DCP", ModeABS, 6},
	0xDF: {"DCP", ModeABX, 7}, 0xDB: {"DCP", ModeABY, 7}, 0xC3: {"DCP", ModeINX, 8},
	0xD3: {"DCP", ModeINY, 8},

	// Unofficial: ISB
	0xE7: {"ISB", ModeZPG, 5}, 0xF7: {"ISB", ModeZPX, 6}, 0xEF: {"ISB", ModeABS, 6},
	0xFF: {"ISB", ModeABX, 7}, 0xFB: {"ISB", ModeABY, 7}, 0xE3: {"ISB", ModeINX, 8},
	0xF3: {"ISB", ModeINY, 8},

	// Unofficial: SLO
	0x07: {"SLO", ModeZPG, 5}, 0x17: {"SLO", ModeZPX, 6}, 0x0F: {"SLO", ModeABS, 6},
	0x1F: {"SLO", ModeABX, 7}, 0x1B: {"SLO", ModeABY, 7}, 0x03: {"SLO", ModeINX, 8},
	0x13: {"SLO", ModeINY, 8},

	// Unofficial: RLA
	0x27: {"RLA", ModeZPG, 5}, 0x37: {"RLA", ModeZPX, 6}, 0x2F: {"RLA", ModeABS, 6},
	0x3F: {"RLA", ModeABX, 7}, 0x3B: {"RLA", ModeABY, 7}, 0x23: {"RLA", ModeINX, 8},
	0x33: {"RLA", ModeINY, 8},

	// Unofficial: SRE
	0x47: {"SRE", ModeZPG, 5}, 0x57: {"SRE", ModeZPX, 6}, 0x4F: {"SRE", ModeABS, 6},
	0x5F: {"SRE", ModeABX, 7}, 0x5B: {"SRE", ModeABY, 7}, 0x43: {"SRE", ModeINX, 8},
	0x53: {"SRE", ModeINY, 8},

	// Unofficial: RRA
	0x67: {"RRA", ModeZPG, 5}, 0x77: {"RRA", ModeZPX, 6}, 0x6F: {"RRA", ModeABS, 6},
	0x7F: {"RRA", ModeABX, 7}, 0x7B: {"RRA", ModeABY, 7}, 0x63: {"RRA", ModeINX, 8},
	0x73: {"RRA", ModeINY, 8},
}

// decode looks up opcode in the table. The bool is false for any byte
// this core does not recognize.
func decode(opcode uint8) (opcodeInfo, bool) {
	info, ok := opcodeTable[opcode]
	return info, ok
}
