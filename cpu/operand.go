package cpu

// Operand enumerates every addressing mode named in the architecture: 8-bit
// registers, 16-bit pairs, memory-indirect forms, immediates, conditions,
// and the absent-operand marker used by unconditional JP/JR/CALL/RET.
type Operand int

const (
	OpNone Operand = iota
	OpA
	OpB
	OpC
	OpD
	OpE
	OpH
	OpL
	OpAF
	OpBC
	OpDE
	OpHL
	OpSP
	OpPC
	OpBCInd
	OpDEInd
	OpHLInd
	OpCInd
	OpU8
	OpI8
	OpU16
	OpA16
	OpA8
	OpSPI8
	OpCondZ
	OpCondNZ
	OpCondC
	OpCondNC
)

// String renders the operand the way assembly notation would, and doubles
// as the disassembler's placeholder template: the tokens "u8", "i8", "u16",
// "[a16]" and "[$FF00+u8]" are recognized and substituted by disasm.go.
func (o Operand) String() string {
	switch o {
	case OpNone:
		return ""
	case OpA:
		return "A"
	case OpB:
		return "B"
	case OpC:
		return "C"
	case OpD:
		return "D"
	case OpE:
		return "E"
	case OpH:
		return "H"
	case OpL:
		return "L"
	case OpAF:
		return "AF"
	case OpBC:
		return "BC"
	case OpDE:
		return "DE"
	case OpHL:
		return "HL"
	case OpSP:
		return "SP"
	case OpPC:
		return "PC"
	case OpBCInd:
		return "[BC]"
	case OpDEInd:
		return "[DE]"
	case OpHLInd:
		return "[HL]"
	case OpCInd:
		return "[$FF00+C]"
	case OpU8:
		return "u8"
	case OpI8:
		return "i8"
	case OpU16:
		return "u16"
	case OpA16:
		return "[a16]"
	case OpA8:
		return "[$FF00+u8]"
	case OpSPI8:
		return "SP+i8"
	case OpCondZ:
		return "Z"
	case OpCondNZ:
		return "NZ"
	case OpCondC:
		return "C"
	case OpCondNC:
		return "NC"
	default:
		return "?"
	}
}

// bitness reports the operand's natural width: 8, 16, 1 for a condition, or
// 0 for the absent marker. INC/DEC use this, and only INC/DEC, to decide
// whether the instruction updates flags — the instruction family, not the
// operand width, governs every other flag rule.
func (o Operand) bitness() int {
	switch o {
	case OpA, OpB, OpC, OpD, OpE, OpH, OpL,
		OpBCInd, OpDEInd, OpHLInd, OpCInd,
		OpU8, OpI8, OpA16, OpA8:
		return 8
	case OpAF, OpBC, OpDE, OpHL, OpSP, OpPC, OpU16, OpSPI8:
		return 16
	case OpCondZ, OpCondNZ, OpCondC, OpCondNC:
		return 1
	default:
		return 0
	}
}
