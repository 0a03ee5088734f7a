package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/palette"
	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrochip8/internal/vmerror"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
	assert.NotNil(t, CreateLogger(false, false))
}

func TestDefaultIsValid(t *testing.T) {
	for _, p := range platform.All() {
		t.Run(p.String(), func(t *testing.T) {
			cfg := Default(p)
			assert.NoError(t, cfg.Validate())
			assert.Equal(t, p.Colors(), len(cfg.Palette))
			assert.Equal(t, quirks.Preset(p), cfg.Quirks)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Machine)
		code   vmerror.Code
	}{
		{"unknown platform", func(m *Machine) { m.Platform = 9 }, vmerror.InvalidArgument},
		{"zero stack depth", func(m *Machine) { m.StackDepth = 0 }, vmerror.InvalidArgument},
		{"zero clock", func(m *Machine) { m.ClockSpeed = 0 }, vmerror.InvalidClockSpeed},
		{"negative clock", func(m *Machine) { m.ClockSpeed = -5 }, vmerror.InvalidClockSpeed},
		{"clock too high", func(m *Machine) { m.ClockSpeed = MaxClockSpeed + 1 }, vmerror.InvalidClockSpeed},
		{"palette too small", func(m *Machine) { m.Palette = palette.Default(1) }, vmerror.InvalidColorPalette},
		{"palette too large", func(m *Machine) { m.Palette = palette.Default(4) }, vmerror.InvalidColorPalette},
		{"small font size", func(m *Machine) { m.SmallFont = m.SmallFont[:10] }, vmerror.InvalidFont},
		{"big font missing", func(m *Machine) { m.BigFont = nil }, vmerror.InvalidFont},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(platform.CHIP8)
			tt.modify(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Equal(t, tt.code, vmerror.CodeOf(err))
		})
	}
}

func TestFromOptions(t *testing.T) {
	opts := options.Program{
		Flags: options.Flags{
			Mode:       "xochip",
			Quirks:     "sl",
			Palette:    "000000,FFFFFF,FF0000,00FF00",
			Fonts:      "vip",
			ClockSpeed: 500,
		},
	}

	cfg, err := FromOptions(opts)
	assert.NoError(t, err)
	assert.Equal(t, platform.XOCHIP, cfg.Platform)
	assert.Equal(t, 500, cfg.ClockSpeed)
	assert.Equal(t, quirks.Quirks{Shift: true, LoadStore: true}, cfg.Quirks)
	assert.Equal(t, 4, len(cfg.Palette))
	assert.Equal(t, byte(0x60), cfg.SmallFont[5])
}

func TestFromOptionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
		code  vmerror.Code
	}{
		{"bad mode", options.Flags{Mode: "nes", ClockSpeed: 1}, vmerror.InvalidArgument},
		{"bad quirk", options.Flags{Quirks: "z", ClockSpeed: 1}, vmerror.InvalidQuirk},
		{"bad clock", options.Flags{ClockSpeed: 0}, vmerror.InvalidClockSpeed},
		{"bad palette", options.Flags{Palette: "xyz", ClockSpeed: 1}, vmerror.InvalidColorPalette},
		{"palette cardinality", options.Flags{Palette: "000000", ClockSpeed: 1}, vmerror.InvalidColorPalette},
		{"bad font", options.Flags{Fonts: "nope", ClockSpeed: 1}, vmerror.InvalidFont},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromOptions(options.Program{Flags: tt.flags})
			assert.Equal(t, tt.code, vmerror.CodeOf(err))
		})
	}
}

func TestClone(t *testing.T) {
	cfg := Default(platform.XOCHIP)
	clone := cfg.Clone()
	assert.Equal(t, cfg, clone)

	clone.SmallFont[0]++
	clone.BigFont[0]++
	clone.Palette[1].G++
	assert.Equal(t, Default(platform.XOCHIP), cfg)
}
