// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			cli.PrintBanner(opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	cli.PrintBanner(opts, version, commit, date)
	if opts.Version {
		return
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Running program failed", log.Err(err))
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	cfg, err := config.FromOptions(opts)
	if err != nil {
		return fmt.Errorf("creating machine configuration: %w", err)
	}

	program, err := loader.New().Load(opts.Input, cfg.Platform)
	if err != nil {
		return err
	}
	logger.Info("Loaded program", log.String("file", opts.Input), log.Int("size", len(program)))

	machine, err := vm.New(logger, cfg, program, vm.Options{Trace: opts.Trace})
	if err != nil {
		return fmt.Errorf("creating machine: %w", err)
	}

	breakpoints, err := cli.ParseAddresses(opts.Breakpoints)
	if err != nil {
		return err
	}

	runnerOptions := runner.Options{
		Frames:      opts.Frames,
		Realtime:    opts.Realtime,
		Debug:       opts.Debugger,
		Breakpoints: breakpoints,
		Input:       os.Stdin,
		Output:      os.Stdout,
		WavFile:     opts.Wav,
	}
	if !opts.NoScreen {
		runnerOptions.Renderer = render.New(os.Stdout, cfg.Palette, render.Options{ANSI: opts.ANSI})
	}

	r := runner.New(logger, machine, runnerOptions)
	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
