// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input       string   // program file to run
	Wav         string   // file to record the buzzer to
	Breakpoints []string // addresses to stop at in the debugger
}

// Flags contains machine and behavior options.
type Flags struct {
	Mode       string // platform: chip8, schip, xochip
	Quirks     string // quirk letters or platform preset name
	Fonts      string // small,big font names
	Palette    string // comma separated hex colors
	ClockSpeed int    // instructions per second
	Frames     int    // number of 60 Hz frames to run, 0 runs until cancelled
	Realtime   bool   // pace frames at 60 Hz instead of running as fast as possible
	Trace      bool   // log every executed instruction
	Debugger   bool   // start in the interactive debugger
	Debug      bool   // enable debug logging
	Quiet      bool   // only log errors
	Version    bool   // print the version and exit
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	ANSI     bool // render the final screen with ANSI true color codes
	NoScreen bool // do not print the final screen
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	OutputFlags
}
