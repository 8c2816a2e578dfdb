// Package mem implements the flat 64 KiB address space shared by the
// interpreter core, the ROM loader and (eventually) a timer/PPU.
package mem

import "fmt"

// Memory-mapped hardware register addresses.
const (
	AddrDIV  = 0xFF04
	AddrTIMA = 0xFF05
	AddrTMA  = 0xFF06
	AddrTAC  = 0xFF07
	AddrIF   = 0xFF0F
	AddrIE   = 0xFFFF
)

// Post-reset values of the hardware registers above.
const (
	resetDIV  = 0xAB
	resetTIMA = 0x00
	resetTMA  = 0x00
	resetTAC  = 0xF8
	resetIF   = 0xE1
	resetIE   = 0x00
)

const romCapacity = 32 * 1024

// RomTooLargeError is returned by LoadROM when the supplied image exceeds
// the 32 KiB this MBC-less core can address.
type RomTooLargeError struct {
	Size int
}

func (e *RomTooLargeError) Error() string {
	return fmt.Sprintf("rom too large: %d bytes exceeds %d byte limit", e.Size, romCapacity)
}

// Addressable supplies a 16-bit address; a register pair satisfies it so
// memory can be indexed directly by (BC), (DE) or (HL) without cpu and mem
// importing each other.
type Addressable interface {
	Address() uint16
}

// Bus is the Game Boy's flat 64 KiB memory map, with the region-dependent
// write policy applied on every store.
type Bus struct {
	data [65536]byte
}

// New returns a Bus with all cells zeroed except the hardware registers,
// which start at their architectural post-reset values.
func New() *Bus {
	b := &Bus{}
	b.data[AddrDIV] = resetDIV
	b.data[AddrTIMA] = resetTIMA
	b.data[AddrTMA] = resetTMA
	b.data[AddrTAC] = resetTAC
	b.data[AddrIF] = resetIF
	b.data[AddrIE] = resetIE
	return b
}

// Read returns the byte at addr. Reads are always side-effect-free.
func (b *Bus) Read(addr uint16) byte {
	return b.data[addr]
}

// ReadAt reads the byte at the address supplied by a.
func (b *Bus) ReadAt(a Addressable) byte {
	return b.Read(a.Address())
}

// Write stores v at addr, applying the region write policy: ROM and echo
// RAM silently drop the write, 0xC000..0xDDFF mirrors into echo RAM, the
// forbidden region drops, and DIV is forced back to zero on any write.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr <= 0x07FF:
		// ROM: not writable in this MBC-less core.
	case addr >= 0xC000 && addr <= 0xDDFF:
		b.data[addr] = v
		b.data[addr+0x2000] = v
	case addr >= 0xE000 && addr <= 0xFDFF:
		// Echo RAM is read-only from the CPU's point of view here.
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		// Forbidden region.
	case addr == AddrDIV:
		b.data[addr] = 0
	default:
		b.data[addr] = v
	}
}

// WriteAt writes v to the address supplied by a.
func (b *Bus) WriteAt(a Addressable, v byte) {
	b.Write(a.Address(), v)
}

// DIV, TIMA, TMA and TAC read the corresponding hardware register directly,
// bypassing the write policy switch above (reads are always unconditional).
func (b *Bus) DIV() byte  { return b.data[AddrDIV] }
func (b *Bus) TIMA() byte { return b.data[AddrTIMA] }
func (b *Bus) TMA() byte  { return b.data[AddrTMA] }
func (b *Bus) TAC() byte  { return b.data[AddrTAC] }

// IncrementDIV bumps DIV without forcing it back to zero, for the eventual
// timer subsystem; the interpreter core itself never calls this.
func (b *Bus) IncrementDIV() { b.data[AddrDIV]++ }

// ResetDIV clears DIV, equivalent to what a CPU-side write already does.
func (b *Bus) ResetDIV() { b.data[AddrDIV] = 0 }

// IncrementTIMA bumps TIMA and reports whether it wrapped past 0xFF, which
// is the timer subsystem's cue to reload TMA and raise the timer interrupt.
func (b *Bus) IncrementTIMA() (overflowed bool) {
	b.data[AddrTIMA]++
	return b.data[AddrTIMA] == 0
}

// LoadROM copies rom into memory starting at address 0. It fails if rom is
// larger than the 32 KiB this MBC-less core can address.
func (b *Bus) LoadROM(rom []byte) error {
	if len(rom) > romCapacity {
		return &RomTooLargeError{Size: len(rom)}
	}
	copy(b.data[:], rom)
	return nil
}
