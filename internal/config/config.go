// Package config handles application configuration and setup
package config

import (
	"slices"

	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/palette"
	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrochip8/internal/stack"
	"github.com/retroenv/retrochip8/internal/vmerror"
	"github.com/retroenv/retrogolib/log"
)

// Clock speed limits in instructions per second.
const (
	DefaultClockSpeed = 1000
	MinClockSpeed     = 1
	MaxClockSpeed     = 1_000_000
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Machine is the validated configuration of a virtual machine. It is
// resolved once before the machine is created and not changed afterwards.
type Machine struct {
	Platform   platform.Platform
	ClockSpeed int // instructions per second
	Quirks     quirks.Quirks
	Palette    palette.Palette
	SmallFont  []byte
	BigFont    []byte
	StackDepth int
}

// Default returns the default configuration for the given platform.
func Default(p platform.Platform) Machine {
	small, big, err := font.ParseNames("")
	if err != nil {
		panic(err) // built-in fonts are always available
	}

	return Machine{
		Platform:   p,
		ClockSpeed: DefaultClockSpeed,
		Quirks:     quirks.Preset(p),
		Palette:    palette.Default(p.Colors()),
		SmallFont:  small,
		BigFont:    big,
		StackDepth: stack.DefaultDepth,
	}
}

// FromOptions builds a machine configuration from the string based program
// options and validates it.
func FromOptions(opts options.Program) (Machine, error) {
	p, err := platform.FromString(opts.Mode)
	if err != nil {
		return Machine{}, vmerror.New(vmerror.InvalidArgument, "%s", err.Error())
	}
	cfg := Default(p)
	cfg.ClockSpeed = opts.ClockSpeed

	if opts.Quirks != "" {
		cfg.Quirks, err = quirks.Parse(opts.Quirks)
		if err != nil {
			return Machine{}, err
		}
	}

	if opts.Palette != "" {
		cfg.Palette, err = palette.Parse(opts.Palette)
		if err != nil {
			return Machine{}, err
		}
	}

	if opts.Fonts != "" {
		cfg.SmallFont, cfg.BigFont, err = font.ParseNames(opts.Fonts)
		if err != nil {
			return Machine{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Machine{}, err
	}
	return cfg, nil
}

// Clone returns a copy of the configuration that shares no slices with m.
func (m Machine) Clone() Machine {
	m.Palette = slices.Clone(m.Palette)
	m.SmallFont = slices.Clone(m.SmallFont)
	m.BigFont = slices.Clone(m.BigFont)
	return m
}

// Validate checks all configuration values and returns the first failure as
// an exception.
func (m Machine) Validate() error {
	if !m.Platform.Valid() {
		return vmerror.New(vmerror.InvalidArgument, "unsupported platform %d", int(m.Platform))
	}
	if m.StackDepth < 1 || m.StackDepth > 0xFF {
		return vmerror.New(vmerror.InvalidArgument, "stack depth %d is out of range", m.StackDepth)
	}
	if m.ClockSpeed < MinClockSpeed || m.ClockSpeed > MaxClockSpeed {
		return vmerror.New(vmerror.InvalidClockSpeed, "clock speed %d is outside of %d..%d",
			m.ClockSpeed, MinClockSpeed, MaxClockSpeed)
	}
	if err := m.Palette.Validate(m.Platform.Colors()); err != nil {
		return err
	}
	return font.Validate(m.SmallFont, m.BigFont)
}
