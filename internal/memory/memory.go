// Package memory implements the flat addressable byte memory of the
// interpreter.
package memory

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/vmerror"
)

// ProgramStart is the address where programs are loaded and start executing.
const ProgramStart = 0x200

// Memory is a fixed size byte array. Addresses used by the executor are
// derived from masked opcode fields or wrapped with Mask, an access outside
// of the memory is a programming error and panics.
type Memory struct {
	data []byte
}

// New returns a new zeroed memory of the given size in bytes.
func New(size int) *Memory {
	return &Memory{
		data: make([]byte, size),
	}
}

// Size returns the memory size in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}

// Mask wraps an address into the memory range. The memory size is a power
// of two.
func (m *Memory) Mask(address int) uint16 {
	return uint16(address & (len(m.data) - 1))
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) byte {
	m.check(address)
	return m.data[address]
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) {
	m.check(address)
	m.data[address] = value
}

// ReadWord returns the big endian 16 bit word at the given address. The
// second byte wraps around at the end of the memory.
func (m *Memory) ReadWord(address uint16) uint16 {
	high := m.Read(address)
	low := m.Read(m.Mask(int(address) + 1))
	return uint16(high)<<8 | uint16(low)
}

// ReadRange returns a copy of length bytes starting at address, wrapping
// around at the end of the memory.
func (m *Memory) ReadRange(address uint16, length int) []byte {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = m.data[m.Mask(int(address)+i)]
	}
	return buf
}

// Load copies data into the memory starting at offset. Data that does not
// fit is rejected with a FileTooBig exception before any byte is copied.
func (m *Memory) Load(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > len(m.data) {
		return vmerror.New(vmerror.FileTooBig, "%d bytes at offset $%04X exceed memory size of %d bytes",
			len(data), offset, len(m.data))
	}
	copy(m.data[offset:], data)
	return nil
}

// MaxProgramSize returns the largest program that can be loaded at
// ProgramStart.
func (m *Memory) MaxProgramSize() int {
	return len(m.data) - ProgramStart
}

// Reset zeroes the memory.
func (m *Memory) Reset() {
	clear(m.data)
}

func (m *Memory) check(address uint16) {
	if int(address) >= len(m.data) {
		panic(fmt.Sprintf("memory address $%04X out of range, size is %d bytes", address, len(m.data)))
	}
}
