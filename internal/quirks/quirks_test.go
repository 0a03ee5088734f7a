package quirks

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/retroenv/retrochip8/internal/vmerror"
	"github.com/retroenv/retrogolib/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Quirks
		wantErr bool
	}{
		{
			name:  "empty",
			input: "",
			want:  Quirks{},
		},
		{
			name:  "all letters",
			input: "bcdjls",
			want:  Quirks{Shift: true, LoadStore: true, Jump: true, Bitwise: true, Clip: true, Draw: true},
		},
		{
			name:  "upper case with separators",
			input: "S, L",
			want:  Quirks{Shift: true, LoadStore: true},
		},
		{
			name:  "platform preset",
			input: "xochip",
			want:  Preset(platform.XOCHIP),
		},
		{
			name:    "unknown letter",
			input:   "bx",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.True(t, vmerror.Is(err, vmerror.InvalidQuirk))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, p := range platform.All() {
		q := Preset(p)
		parsed, err := Parse(q.String())
		assert.NoError(t, err)
		assert.Equal(t, q, parsed)
	}
	assert.Equal(t, "bcdjls", Preset(platform.SCHIP).String())
	assert.Equal(t, "c", Preset(platform.CHIP8).String())
}

func TestParseLettersStartFromZero(t *testing.T) {
	q, err := Parse("d")
	assert.NoError(t, err)
	assert.Equal(t, Quirks{Draw: true}, q)
	assert.False(t, q.Clip)
	assert.True(t, Preset(platform.CHIP8).Clip)
}
