package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrochip8/internal/vmerror"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load chip8 file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x00})

		data, err := New().Load(tmpFile, platform.CHIP8)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x00}, data)
	})

	t.Run("load largest chip8 file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, 0xE00))

		data, err := New().Load(tmpFile, platform.CHIP8)
		assert.NoError(t, err)
		assert.Len(t, data, 0xE00)
	})

	t.Run("file too big for chip8", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, 0xE01))

		_, err := New().Load(tmpFile, platform.CHIP8)
		assert.True(t, vmerror.Is(err, vmerror.FileTooBig))
	})

	t.Run("xochip has extended memory", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, 0xE01))

		data, err := New().Load(tmpFile, platform.XOCHIP)
		assert.NoError(t, err)
		assert.Len(t, data, 0xE01)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8", platform.CHIP8)
		assert.True(t, vmerror.Is(err, vmerror.LoadFileFailure))
	})

	t.Run("error on directory", func(t *testing.T) {
		_, err := New().Load(t.TempDir(), platform.CHIP8)
		assert.True(t, vmerror.Is(err, vmerror.LoadFileFailure))
	})
}

func TestLoadFromBytes(t *testing.T) {
	loader := New()

	data, err := loader.LoadFromBytes([]byte{0x00, 0xE0}, platform.SCHIP)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xE0}, data)

	_, err = loader.LoadFromBytes(make([]byte, 0x10000), platform.XOCHIP)
	assert.True(t, vmerror.Is(err, vmerror.FileTooBig))

	_, err = loader.LoadFromBytes(nil, platform.Platform(42))
	assert.True(t, vmerror.Is(err, vmerror.InvalidArgument))
	assert.ErrorContains(t, err, "loading program")
}

func TestMaxSize(t *testing.T) {
	assert.Equal(t, 0xE00, MaxSize(platform.CHIP8))
	assert.Equal(t, 0xFE00, MaxSize(platform.XOCHIP))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
