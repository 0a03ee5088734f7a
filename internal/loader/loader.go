// Package loader handles program image loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrochip8/internal/vmerror"
)

// Loader handles loading program images from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// MaxSize returns the largest program image that fits into the memory of
// the platform.
func MaxSize(p platform.Platform) int {
	return p.MemorySize() - memory.ProgramStart
}

// Load reads a raw program image from disk. Files that can not be read fail
// with a LoadFileFailure exception, images that do not fit into the memory of
// the platform fail with a FileTooBig exception before the content is read.
func (l *Loader) Load(path string, p platform.Platform) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, vmerror.New(vmerror.LoadFileFailure, "opening file %s: %s", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, vmerror.New(vmerror.LoadFileFailure, "reading file info of %s: %s", path, err)
	}
	if info.IsDir() {
		return nil, vmerror.New(vmerror.LoadFileFailure, "%s is a directory", path)
	}
	if err := checkSize(int(info.Size()), p); err != nil {
		return nil, err
	}

	// the limit guards against files growing after the size check
	data, err := io.ReadAll(io.LimitReader(file, int64(MaxSize(p))+1))
	if err != nil {
		return nil, vmerror.New(vmerror.LoadFileFailure, "reading file %s: %s", path, err)
	}
	return l.LoadFromBytes(data, p)
}

// LoadFromBytes checks an in memory program image and returns it.
func (l *Loader) LoadFromBytes(data []byte, p platform.Platform) ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("loading program: %w",
			vmerror.New(vmerror.InvalidArgument, "unsupported platform %s", p))
	}
	if err := checkSize(len(data), p); err != nil {
		return nil, err
	}
	return data, nil
}

func checkSize(size int, p platform.Platform) error {
	if size > MaxSize(p) {
		return vmerror.New(vmerror.FileTooBig, "program has %d bytes, maximum for %s is %d bytes",
			size, p, MaxSize(p))
	}
	return nil
}
