package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var illegalOpcodes = []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

func TestPrimaryTableIllegalSetIsExact(t *testing.T) {
	illegal := map[byte]bool{}
	for _, op := range illegalOpcodes {
		illegal[op] = true
	}
	for op := 0; op < 256; op++ {
		entry := primaryTable[op]
		if illegal[byte(op)] {
			assert.Equal(t, ILLEGAL, entry.Instr.Mnemonic, "0x%02X should be illegal", op)
		} else {
			assert.NotEqual(t, ILLEGAL, entry.Instr.Mnemonic, "0x%02X should be defined", op)
		}
	}
}

func TestPrimaryTableFullyPopulated(t *testing.T) {
	for op := 0; op < 256; op++ {
		entry := primaryTable[op]
		if entry.Instr.Mnemonic != ILLEGAL {
			assert.NotZero(t, entry.Cycles, "0x%02X has no cycle cost", op)
		}
	}
}

func TestPrefixedTableFullyPopulatedAndLegal(t *testing.T) {
	for op := 0; op < 256; op++ {
		entry := prefixedTable[op]
		assert.NotEqual(t, ILLEGAL, entry.Instr.Mnemonic, "0xCB 0x%02X should be defined", op)
		assert.NotZero(t, entry.Cycles)
	}
}

func TestHaltOpcode(t *testing.T) {
	entry := primaryTable[0x76]
	assert.Equal(t, HALT, entry.Instr.Mnemonic)
}

func TestCbCyclesForIndirectIsSixteen(t *testing.T) {
	// BIT 0,(HL) is opcode 0x46.
	entry := prefixedTable[0x46]
	assert.Equal(t, BIT, entry.Instr.Mnemonic)
	assert.Equal(t, OpHLInd, entry.Instr.Op1)
	assert.Equal(t, uint8(16), entry.Cycles)
}

func TestLdHlSpI8Cycles(t *testing.T) {
	entry := primaryTable[0xF8]
	assert.Equal(t, LD, entry.Instr.Mnemonic)
	assert.Equal(t, OpHL, entry.Instr.Op1)
	assert.Equal(t, OpSPI8, entry.Instr.Op2)
	assert.Equal(t, uint8(8), entry.Cycles)
}

func TestSwapOpcode(t *testing.T) {
	entry := prefixedTable[0x37]
	assert.Equal(t, SWAP, entry.Instr.Mnemonic)
	assert.Equal(t, OpA, entry.Instr.Op1)
	assert.Equal(t, uint8(8), entry.Cycles)
}
