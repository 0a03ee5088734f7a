package memory

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/vmerror"
	"github.com/retroenv/retrogolib/assert"
)

func TestReadWrite(t *testing.T) {
	m := New(0x1000)
	assert.Equal(t, 0x1000, m.Size())

	m.Write(0x300, 0xAB)
	assert.Equal(t, byte(0xAB), m.Read(0x300))
	assert.Equal(t, byte(0), m.Read(0x301))
}

func TestReadWord(t *testing.T) {
	m := New(0x1000)
	m.Write(0x200, 0x12)
	m.Write(0x201, 0x34)
	assert.Equal(t, uint16(0x1234), m.ReadWord(0x200))

	m.Write(0xFFF, 0xA0)
	m.Write(0x000, 0x0B)
	assert.Equal(t, uint16(0xA00B), m.ReadWord(0xFFF))
}

func TestMask(t *testing.T) {
	m := New(0x1000)
	assert.Equal(t, uint16(0x000), m.Mask(0x1000))
	assert.Equal(t, uint16(0xFFF), m.Mask(0xFFF))

	x := New(0x10000)
	assert.Equal(t, uint16(0x1000), x.Mask(0x1000))
}

func TestReadRange(t *testing.T) {
	m := New(0x1000)
	assert.NoError(t, m.Load(0xFFE, []byte{1, 2}))
	m.Write(0, 3)
	assert.Equal(t, []byte{1, 2, 3}, m.ReadRange(0xFFE, 3))
}

func TestLoad(t *testing.T) {
	m := New(0x1000)
	program := []byte{0x60, 0x05}
	assert.NoError(t, m.Load(ProgramStart, program))
	assert.Equal(t, uint16(0x6005), m.ReadWord(ProgramStart))

	assert.Equal(t, 0xE00, m.MaxProgramSize())
	assert.NoError(t, m.Load(ProgramStart, make([]byte, m.MaxProgramSize())))
}

func TestLoadTooBig(t *testing.T) {
	m := New(0x1000)
	m.Write(ProgramStart, 0x42)

	data := make([]byte, m.MaxProgramSize()+1)
	data[0] = 0xFF
	err := m.Load(ProgramStart, data)
	assert.True(t, vmerror.Is(err, vmerror.FileTooBig))
	assert.Equal(t, byte(0x42), m.Read(ProgramStart))
}

func TestOutOfRangePanics(t *testing.T) {
	m := New(0x1000)
	defer func() {
		assert.NotNil(t, recover())
	}()
	m.Read(0x1000)
}

func TestReset(t *testing.T) {
	m := New(0x1000)
	m.Write(0x10, 1)
	m.Reset()
	assert.Equal(t, byte(0), m.Read(0x10))
}
