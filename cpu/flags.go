package cpu

import "github.com/module/lr35902/mask"

// The Z/N/H/C flags live in AF's low byte at bits 7, 6, 5, 4 respectively,
// addressed here through mask.I1..I4 (1-indexed from the MSB). Bits 3..0 are
// always zero; Registers.SetAF enforces that on every 16-bit write to AF.

func (c *Cpu) flagZ() bool { return mask.IsSet(c.AF.Lo(), mask.I1) }
func (c *Cpu) flagN() bool { return mask.IsSet(c.AF.Lo(), mask.I2) }
func (c *Cpu) flagH() bool { return mask.IsSet(c.AF.Lo(), mask.I3) }
func (c *Cpu) flagC() bool { return mask.IsSet(c.AF.Lo(), mask.I4) }

func (c *Cpu) setFlagZ(v bool) {
	if v {
		c.AF.SetLo(mask.Set(c.AF.Lo(), mask.I1, 1))
	} else {
		c.AF.SetLo(mask.Unset(c.AF.Lo(), mask.I1, mask.I1))
	}
}

func (c *Cpu) setFlagN(v bool) {
	if v {
		c.AF.SetLo(mask.Set(c.AF.Lo(), mask.I2, 1))
	} else {
		c.AF.SetLo(mask.Unset(c.AF.Lo(), mask.I2, mask.I2))
	}
}

func (c *Cpu) setFlagH(v bool) {
	if v {
		c.AF.SetLo(mask.Set(c.AF.Lo(), mask.I3, 1))
	} else {
		c.AF.SetLo(mask.Unset(c.AF.Lo(), mask.I3, mask.I3))
	}
}

func (c *Cpu) setFlagC(v bool) {
	if v {
		c.AF.SetLo(mask.Set(c.AF.Lo(), mask.I4, 1))
	} else {
		c.AF.SetLo(mask.Unset(c.AF.Lo(), mask.I4, mask.I4))
	}
}
