package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterPairHiLo(t *testing.T) {
	var bc RegisterPair
	bc.Set(0x1234)
	assert.Equal(t, uint8(0x12), bc.Hi())
	assert.Equal(t, uint8(0x34), bc.Lo())

	bc.SetHi(0xAB)
	assert.Equal(t, uint16(0xAB34), bc.Value())

	bc.SetLo(0xCD)
	assert.Equal(t, uint16(0xABCD), bc.Value())
}

func TestRegisterPairIncDecWraps(t *testing.T) {
	var sp RegisterPair
	sp.Set(0xFFFF)
	sp.Inc()
	assert.Equal(t, uint16(0), sp.Value())

	sp.Dec()
	assert.Equal(t, uint16(0xFFFF), sp.Value())
}

func TestRegisterPairAddress(t *testing.T) {
	var hl RegisterPair
	hl.Set(0xC000)
	assert.Equal(t, uint16(0xC000), hl.Address())
}

func TestSetAFMasksLowNibble(t *testing.T) {
	var r Registers
	r.SetAF(0x12FF)
	assert.Equal(t, uint16(0x12F0), r.AF.Value())
}
