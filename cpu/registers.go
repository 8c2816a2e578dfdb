package cpu

// RegisterPair is one of the four 16-bit general register pairs (AF, BC,
// DE, HL) or SP/PC, viewable as a single 16-bit value or as two bytes.
type RegisterPair struct {
	value uint16
}

// Value returns the full 16-bit value.
func (r *RegisterPair) Value() uint16 { return r.value }

// Set stores a full 16-bit value. 16-bit arithmetic elsewhere wraps modulo
// 2^16 for free since r.value is itself a uint16.
func (r *RegisterPair) Set(v uint16) { r.value = v }

// Hi returns the high byte.
func (r *RegisterPair) Hi() uint8 { return uint8(r.value >> 8) }

// Lo returns the low byte.
func (r *RegisterPair) Lo() uint8 { return uint8(r.value) }

// SetHi replaces the high byte, leaving the low byte untouched.
func (r *RegisterPair) SetHi(v uint8) { r.value = r.value&0x00FF | uint16(v)<<8 }

// SetLo replaces the low byte, leaving the high byte untouched.
func (r *RegisterPair) SetLo(v uint8) { r.value = r.value&0xFF00 | uint16(v) }

// Inc post-increments the pair, wrapping modulo 2^16.
func (r *RegisterPair) Inc() { r.value++ }

// Dec post-decrements the pair, wrapping modulo 2^16.
func (r *RegisterPair) Dec() { r.value-- }

// Address satisfies mem.Addressable, letting memory be indexed directly by
// (BC), (DE) or (HL) without the mem package importing cpu.
func (r *RegisterPair) Address() uint16 { return r.value }

// Registers is the LR35902 register file: four general pairs plus the
// stack pointer and program counter. Embedded directly in Cpu, the same way
// the donor embeds its flag struct, so fields are reached as c.AF, c.PC etc.
type Registers struct {
	AF, BC, DE, HL RegisterPair
	SP, PC         RegisterPair
}

// SetAF writes a full 16-bit value to AF, masking the low nibble of the
// flag byte to zero as the architecture requires.
func (r *Registers) SetAF(v uint16) { r.AF.Set(v &^ 0x000F) }
