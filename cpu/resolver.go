package cpu

// readOperand resolves a read from op, returning a 16-bit value (8-bit
// operands are zero-extended). Operands that consume bytes from the
// instruction stream (u8, i8, u16, a16, a8, SP+i8) advance PC as a side
// effect, exactly once, here.
func (c *Cpu) readOperand(op Operand) uint16 {
	switch op {
	case OpA:
		return uint16(c.AF.Hi())
	case OpB:
		return uint16(c.BC.Hi())
	case OpC:
		return uint16(c.BC.Lo())
	case OpD:
		return uint16(c.DE.Hi())
	case OpE:
		return uint16(c.DE.Lo())
	case OpH:
		return uint16(c.HL.Hi())
	case OpL:
		return uint16(c.HL.Lo())
	case OpAF:
		return c.AF.Value()
	case OpBC:
		return c.BC.Value()
	case OpDE:
		return c.DE.Value()
	case OpHL:
		return c.HL.Value()
	case OpSP:
		return c.SP.Value()
	case OpPC:
		return c.PC.Value()
	case OpBCInd:
		return uint16(c.Memory.ReadAt(&c.BC))
	case OpDEInd:
		return uint16(c.Memory.ReadAt(&c.DE))
	case OpHLInd:
		return uint16(c.Memory.ReadAt(&c.HL))
	case OpCInd:
		return uint16(c.Memory.Read(0xFF00 + uint16(c.BC.Lo())))
	case OpU8:
		return uint16(c.fetchByte())
	case OpI8:
		return signExtend(c.fetchByte())
	case OpU16:
		return c.fetchWord()
	case OpA16:
		addr := c.fetchWord()
		return uint16(c.Memory.Read(addr))
	case OpA8:
		addr := 0xFF00 + uint16(c.fetchByte())
		return uint16(c.Memory.Read(addr))
	case OpSPI8:
		return c.addSP(signExtend(c.fetchByte()))
	case OpCondZ:
		return boolTo16(c.flagZ())
	case OpCondNZ:
		return boolTo16(!c.flagZ())
	case OpCondC:
		return boolTo16(c.flagC())
	case OpCondNC:
		return boolTo16(!c.flagC())
	case OpNone:
		return 0
	default:
		panic(&UndefinedOperandError{Operand: op, Context: "read"})
	}
}

// writeOperand stores v into op, truncating to 8 bits for 8-bit operands.
func (c *Cpu) writeOperand(op Operand, v uint16) {
	switch op {
	case OpA:
		c.AF.SetHi(uint8(v))
	case OpB:
		c.BC.SetHi(uint8(v))
	case OpC:
		c.BC.SetLo(uint8(v))
	case OpD:
		c.DE.SetHi(uint8(v))
	case OpE:
		c.DE.SetLo(uint8(v))
	case OpH:
		c.HL.SetHi(uint8(v))
	case OpL:
		c.HL.SetLo(uint8(v))
	case OpAF:
		c.SetAF(v)
	case OpBC:
		c.BC.Set(v)
	case OpDE:
		c.DE.Set(v)
	case OpHL:
		c.HL.Set(v)
	case OpSP:
		c.SP.Set(v)
	case OpPC:
		c.PC.Set(v)
	case OpBCInd:
		c.Memory.WriteAt(&c.BC, uint8(v))
	case OpDEInd:
		c.Memory.WriteAt(&c.DE, uint8(v))
	case OpHLInd:
		c.Memory.WriteAt(&c.HL, uint8(v))
	case OpCInd:
		c.Memory.Write(0xFF00+uint16(c.BC.Lo()), uint8(v))
	case OpA8:
		addr := 0xFF00 + uint16(c.fetchByte())
		c.Memory.Write(addr, uint8(v))
	case OpA16:
		addr := c.fetchWord()
		c.Memory.Write(addr, uint8(v))
	default:
		panic(&UndefinedOperandError{Operand: op, Context: "write"})
	}
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *Cpu) fetchByte() byte {
	v := c.Memory.Read(c.PC.Value())
	c.PC.Inc()
	return v
}

// fetchWord reads a little-endian 16-bit immediate at PC and advances PC by
// two.
func (c *Cpu) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

// signExtend widens a raw immediate byte to its two's-complement 16-bit
// form. Because sign extension only replicates the sign bit into the upper
// byte, the low byte of the result is always identical to the original raw
// byte — addSP relies on that identity to recover imm&0xF / imm&0xFF.
func signExtend(b byte) uint16 {
	return uint16(int16(int8(b)))
}

func boolTo16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// addSP computes SP + imm (imm already sign-extended to 16 bits) and sets
// the four flags per the ADD SP,i8 / LD HL,SP+i8 rule: Z and N are forced
// to 0, H and C come from the low-byte-only arithmetic. Both ADD SP,i8 and
// the SP+i8 operand read funnel through this single function so the flags
// are computed exactly once per instruction, regardless of which of the two
// opcodes triggered it.
func (c *Cpu) addSP(imm uint16) uint16 {
	sp := c.SP.Value()
	result := sp + imm
	c.setFlagZ(false)
	c.setFlagN(false)
	c.setFlagH((sp&0xF)+(imm&0xF) > 0xF)
	c.setFlagC((sp&0xFF)+(imm&0xFF) > 0xFF)
	return result
}
