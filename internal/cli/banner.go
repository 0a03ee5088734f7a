package cli

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
)

// PrintBanner prints the application name and version information.
func PrintBanner(opts options.Program, version, commit, date string) {
	if opts.Quiet && !opts.Version {
		return
	}

	fmt.Println("[--------------------------------------------]")
	fmt.Println("[ retrochip8 - CHIP-8/SCHIP/XO-CHIP emulator ]")
	fmt.Printf("[--------------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
