package cpu

import (
	"fmt"

	"github.com/module/lr35902/mem"
)

// DisasmLine is one decoded line of output: the address the instruction
// starts at and its rendered text.
type DisasmLine struct {
	Addr uint16
	Text string
}

// Disassemble walks the entire address space from 0x0000 and decodes every
// instruction it finds, without touching the core's own registers or
// consuming any of its pending cycles. Addresses below 0x0100 are reserved
// for the boot ROM the core never maps, so they are rendered as "???"
// without being decoded. addr is tracked as an int, not a uint16, so the
// loop condition can observe 0x10000 and stop instead of wrapping back to
// 0x0000.
func (c *Cpu) Disassemble() []DisasmLine {
	var lines []DisasmLine
	for addr := 0; addr < 0x10000; {
		if addr < 0x0100 {
			lines = append(lines, DisasmLine{Addr: uint16(addr), Text: "???"})
			addr++
			continue
		}
		text, length := c.decodeAt(uint16(addr))
		lines = append(lines, DisasmLine{Addr: uint16(addr), Text: text})
		addr += length
	}
	return lines
}

// decodeAt renders the instruction starting at addr and reports how many
// bytes it occupies, reading immediate operands straight off the bus.
func (c *Cpu) decodeAt(addr uint16) (string, int) {
	opcode := c.Memory.Read(addr)

	if opcode == 0xCB {
		if int(addr)+1 >= 0x10000 {
			return "PREFIX CB ???", 1
		}
		cbOpcode := c.Memory.Read(addr + 1)
		entry := prefixedTable[cbOpcode]
		return entry.Instr.String(), 2
	}

	entry := primaryTable[opcode]
	if entry.Instr.Mnemonic == ILLEGAL {
		return "???", 1
	}

	text := entry.Instr.String()
	length := 1

	for _, op := range [2]Operand{entry.Instr.Op1, entry.Instr.Op2} {
		n := immediateBytes(op)
		if n == 0 {
			continue
		}
		text = substituteImmediate(text, op, c.Memory.Read(addr+1), readImmediateWord(c.Memory, addr+1))
		length += n
	}

	return text, length
}

// immediateBytes reports how many bytes, beyond the opcode byte itself,
// the given operand consumes from the instruction stream. No decoded
// instruction in either table carries more than one such operand, so the
// disassembler never has to reason about fetch order the way the live
// resolver does.
func immediateBytes(op Operand) int {
	switch op {
	case OpU8, OpI8, OpA8, OpSPI8:
		return 1
	case OpU16, OpA16:
		return 2
	default:
		return 0
	}
}

// readImmediateWord reads the little-endian word at addr, tolerating the
// 1-byte operands that never look at it.
func readImmediateWord(m *mem.Bus, addr uint16) uint16 {
	lo := m.Read(addr)
	hi := m.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// substituteImmediate replaces op's placeholder token in text with the
// actual value read from the bus. byteVal and wordVal are both precomputed
// by the caller; each case below only looks at the one it needs.
func substituteImmediate(text string, op Operand, byteVal byte, wordVal uint16) string {
	switch op {
	case OpU8:
		return replaceOnce(text, "u8", fmt.Sprintf("$%02X", byteVal))
	case OpI8:
		return replaceOnce(text, "i8", fmt.Sprintf("$%02X", byteVal))
	case OpA8:
		return replaceOnce(text, "[$FF00+u8]", fmt.Sprintf("[$FF%02X]", byteVal))
	case OpSPI8:
		return replaceOnce(text, "SP+i8", fmt.Sprintf("SP%+d", int8(byteVal)))
	case OpU16:
		return replaceOnce(text, "u16", fmt.Sprintf("$%04X", wordVal))
	case OpA16:
		return replaceOnce(text, "[a16]", fmt.Sprintf("[$%04X]", wordVal))
	default:
		return text
	}
}

// replaceOnce substitutes the first occurrence of old in s. Every
// instruction in the tables carries at most one immediate-bearing operand,
// so a single substitution is always enough.
func replaceOnce(s, old, new string) string {
	for i := 0; i+len(old) <= len(s); i++ {
		if s[i:i+len(old)] == old {
			return s[:i] + new + s[i+len(old):]
		}
	}
	return s
}
