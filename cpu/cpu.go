package cpu

import (
	"fmt"

	"github.com/module/lr35902/mem"
)

// Post-boot-ROM register and flag values: the state the real hardware
// leaves the CPU in immediately after the internal boot ROM hands control
// to the cartridge at 0x0100.
const (
	initAF uint16 = 0x01B0
	initBC uint16 = 0x0013
	initDE uint16 = 0x00D8
	initHL uint16 = 0x014D
	initSP uint16 = 0xFFFE
	initPC uint16 = 0x0100
)

// Cpu is a Sharp LR35902 core: registers, the 64KB bus it executes against,
// and the handful of flags the real chip exposes as side state (interrupt
// master enable, HALT and STOP).
type Cpu struct {
	Registers
	Memory *mem.Bus

	IME     bool
	Halted  bool
	Stopped bool

	// countdown is the number of clock ticks remaining before the CPU is
	// ready to fetch its next opcode. Clock decrements it once per call
	// and only fetches when it reaches zero.
	countdown uint16
}

// New returns a Cpu wired to a fresh Bus, both set to the documented
// post-boot-ROM state.
func New() *Cpu {
	c := &Cpu{Memory: mem.New()}
	c.SetAF(initAF)
	c.BC.Set(initBC)
	c.DE.Set(initDE)
	c.HL.Set(initHL)
	c.SP.Set(initSP)
	c.PC.Set(initPC)
	c.IME = true
	return c
}

// Clock advances the core by a single clock tick. Every countdown ticks it
// fetches, decodes and executes the next instruction; on the ticks in
// between it only decrements the countdown. A non-nil error means the core
// hit an illegal opcode or an internal decode-table inconsistency and must
// not be clocked again.
func (c *Cpu) Clock() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("cpu: panic: %v", r)
		}
	}()

	if c.countdown > 0 {
		c.countdown--
		return nil
	}
	if c.Halted || c.Stopped {
		return nil
	}

	opcode := c.fetchByte()
	entry := primaryTable[opcode]
	extra, err := c.execute(opcode, entry.Instr)
	if err != nil {
		return err
	}
	c.countdown = uint16(entry.Cycles) + extra
	if c.countdown > 0 {
		c.countdown--
	}
	return nil
}

// StepInstruction runs Clock until a full instruction (including any
// conditional-branch or prefixed-instruction penalty) has retired, or an
// error is raised.
func (c *Cpu) StepInstruction() error {
	if err := c.Clock(); err != nil {
		return err
	}
	for c.countdown > 0 {
		if err := c.Clock(); err != nil {
			return err
		}
	}
	return nil
}

// LoadROM copies rom into the bottom of the address space.
func (c *Cpu) LoadROM(rom []byte) error {
	return c.Memory.LoadROM(rom)
}

// PeekNext decodes the instruction sitting at the current PC without
// advancing it or consuming any bus side effects, for front ends that want
// to show what Clock is about to do.
func (c *Cpu) PeekNext() Instruction {
	opcode := c.Memory.Read(c.PC.Value())
	if opcode == 0xCB {
		cbOpcode := c.Memory.Read(c.PC.Value() + 1)
		return prefixedTable[cbOpcode].Instr
	}
	return primaryTable[opcode].Instr
}

// Snapshot is a read-only copy of the core's visible state, suitable for
// logging, tests and the debugger front end without exposing the live
// Registers.
type Snapshot struct {
	AF, BC, DE, HL uint16
	SP, PC         uint16
	IME            bool
	Halted         bool
	Stopped        bool
	Z, N, H, C     bool
}

// Snapshot captures the core's current state.
func (c *Cpu) Snapshot() Snapshot {
	return Snapshot{
		AF:      c.AF.Value(),
		BC:      c.BC.Value(),
		DE:      c.DE.Value(),
		HL:      c.HL.Value(),
		SP:      c.SP.Value(),
		PC:      c.PC.Value(),
		IME:     c.IME,
		Halted:  c.Halted,
		Stopped: c.Stopped,
		Z:       c.flagZ(),
		N:       c.flagN(),
		H:       c.flagH(),
		C:       c.flagC(),
	}
}
