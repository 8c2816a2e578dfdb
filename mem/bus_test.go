package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetState(t *testing.T) {
	b := New()
	assert.Equal(t, byte(0xF8), b.TAC())
	assert.Equal(t, byte(0xAB), b.DIV())
}

func TestRomRegionDropsWrites(t *testing.T) {
	b := New()
	before := b.Read(0x0200)
	b.Write(0x0200, 0xAB)
	assert.Equal(t, before, b.Read(0x0200), "writes below 0x0800 must be dropped")
}

func TestEchoRamMirror(t *testing.T) {
	b := New()
	b.Write(0xC123, 0x77)
	assert.Equal(t, byte(0x77), b.Read(0xC123))
	assert.Equal(t, byte(0x77), b.Read(0xE123), "0xC000-0xDDFF must mirror into 0xE000-0xFDFF")
}

func TestEchoRamReadOnlyRegionDropsWrites(t *testing.T) {
	b := New()
	b.Write(0xC123, 0x77)
	before := b.Read(0xE123)
	b.Write(0xE123, 0x99)
	assert.Equal(t, before, b.Read(0xE123), "writes directly into the echo window must be dropped")
}

func TestForbiddenRegionDropsWrites(t *testing.T) {
	b := New()
	before := b.Read(0xFEA5)
	b.Write(0xFEA5, 0x55)
	assert.Equal(t, before, b.Read(0xFEA5))
}

func TestDivForcesZeroOnWrite(t *testing.T) {
	b := New()
	b.Write(AddrDIV, 0x42)
	assert.Equal(t, byte(0), b.Read(AddrDIV))
}

func TestLoadROMTooLarge(t *testing.T) {
	b := New()
	rom := make([]byte, romCapacity+1)
	err := b.LoadROM(rom)
	assert.Error(t, err)
	var tooLarge *RomTooLargeError
	assert.ErrorAs(t, err, &tooLarge)
}

func TestLoadROMCopiesIntoLowMemory(t *testing.T) {
	b := New()
	rom := []byte{0x3E, 0x42}
	assert.NoError(t, b.LoadROM(rom))
	assert.Equal(t, byte(0x3E), b.Read(0x0000))
	assert.Equal(t, byte(0x42), b.Read(0x0001))
}

func TestWriteAtAndReadAtAddressable(t *testing.T) {
	b := New()
	a := fakeAddr(0x9000)
	b.WriteAt(a, 0x11)
	assert.Equal(t, byte(0x11), b.ReadAt(a))
}

type fakeAddr uint16

func (f fakeAddr) Address() uint16 { return uint16(f) }
