// Package cli handles command line interface logic
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const usageLine = "retrochip8 [options] <program file>"

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[1:])
}

func parseArgs(arguments []string) (options.Program, error) {
	var opts options.Program
	var args []string
	executed := false

	cmd := newCommand(&opts, func(_ *cobra.Command, positional []string) error {
		args = positional
		executed = true
		return nil
	})
	if arguments == nil {
		arguments = []string{}
	}
	cmd.SetArgs(arguments)

	if err := cmd.Execute(); err != nil {
		return opts, &UsageError{cmd: cmd, msg: err.Error()}
	}
	if !executed {
		// help was requested
		return opts, &UsageError{cmd: cmd}
	}
	if opts.Version {
		return opts, nil
	}

	if len(args) == 0 {
		return opts, &UsageError{cmd: cmd}
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	cmd *cobra.Command
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and all flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("error: %s\n\n", e.msg)
	}
	fmt.Printf("usage: %s\n\n", usageLine)
	if e.cmd != nil {
		fmt.Print(e.cmd.Flags().FlagUsages())
	}
	fmt.Println()
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	if _, err := platform.FromString(opts.Mode); err != nil {
		return err
	}

	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}

	if _, err := ParseAddresses(opts.Breakpoints); err != nil {
		return err
	}
	return nil
}

// ParseAddresses parses hexadecimal breakpoint addresses with an optional
// $ or 0x prefix.
func ParseAddresses(values []string) ([]uint16, error) {
	addresses := make([]uint16, 0, len(values))
	for _, value := range values {
		digits := strings.TrimPrefix(strings.ToLower(value), "$")
		digits = strings.TrimPrefix(digits, "0x")
		address, err := strconv.ParseUint(digits, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid breakpoint address '%s'", value)
		}
		addresses = append(addresses, uint16(address))
	}
	return addresses, nil
}

func newCommand(opts *options.Program, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           usageLine,
		Short:         "CHIP-8, SUPER-CHIP and XO-CHIP interpreter",
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	// usage is printed by UsageError.ShowUsage
	cmd.SetHelpFunc(func(*cobra.Command, []string) {})

	flags := cmd.Flags()
	flags.SortFlags = false
	readOptionFlags(flags, opts)
	readOutputFlags(flags, opts)
	return cmd
}

func readOptionFlags(flags *pflag.FlagSet, opts *options.Program) {
	flags.StringVarP(&opts.Mode, "mode", "m", platform.CHIP8.String(), "platform to emulate (chip8, schip, xochip)")
	flags.IntVarP(&opts.ClockSpeed, "clock", "c", config.DefaultClockSpeed, "instructions executed per second")
	flags.StringVarP(&opts.Quirks, "quirks", "q", "", "quirk letters (s, l, j, b, c, d) or a platform preset name, defaults to the platform preset")
	flags.StringVarP(&opts.Fonts, "fonts", "f", "", "small and big font names separated by comma")
	flags.StringVarP(&opts.Palette, "palette", "P", "", "comma separated hex colors, 2 for chip8 and schip, 4 for xochip")
	flags.IntVar(&opts.Frames, "frames", 0, "number of 60 Hz frames to run, 0 runs until interrupted")
	flags.BoolVar(&opts.Realtime, "realtime", false, "pace frames at 60 Hz instead of running as fast as possible")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires --verbose")
	flags.BoolVar(&opts.Debugger, "debug", false, "start in the interactive debugger reading commands from stdin")
	flags.StringSliceVarP(&opts.Breakpoints, "break", "b", nil, "hex address to stop at in the debugger, can be repeated")
	flags.StringVar(&opts.Wav, "wav", "", "name of the .wav file to record the buzzer to")
	flags.BoolVar(&opts.Debug, "verbose", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "quiet", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")
}

func readOutputFlags(flags *pflag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.ANSI, "ansi", false, "render the final screen with ANSI true color codes")
	flags.BoolVar(&opts.NoScreen, "noscreen", false, "do not print the final screen")
}
