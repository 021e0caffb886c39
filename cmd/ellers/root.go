package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/ellers/audit"
	"github.com/katalvlaran/ellers/config"
	"github.com/katalvlaran/ellers/maze"
	"github.com/katalvlaran/ellers/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit statuses.
const (
	exitOK       = 0
	exitFailure  = 1  // output or verification failed
	exitUsage    = 2  // bad arguments, flags or configuration
	exitSoftware = 70 // internal error (EX_SOFTWARE)
)

const helpText = `Eller's maze generation algorithm implementation.

USAGE:
      ellers [width] [iterations]

  width       cells per row (≥ 1)
  iterations  rows, including the first and the closing row (≥ 2)
`

const helpTemplate = `{{.Long}}
FLAGS:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`

// options collects the command-line flags.
type options struct {
	seed     int64
	style    string
	verify   bool
	logLevel string
	envFile  string
}

// run executes the command with args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(normalizeArgs(args))

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)

	code := exitCode(err)
	if code == exitUsage {
		fmt.Fprintln(stderr, "Run 'ellers --help' for usage.")
	}
	return code
}

// exitCode maps a command error onto the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, maze.ErrInvalidArgument),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, render.ErrUnknownStyle):
		return exitUsage
	case errors.Is(err, maze.ErrInvariantViolation):
		return exitSoftware
	}
	return exitFailure
}

// valueFlags read their value from the next token unless written --flag=value.
var valueFlags = map[string]bool{
	"--seed":      true,
	"--style":     true,
	"--log-level": true,
	"--env-file":  true,
}

// normalizeArgs accepts the single-dash -help spelling. A negative number in
// a positional slot would otherwise parse as a shorthand flag; when one is
// present the positionals are moved behind a "--" terminator so the size
// checks report it.
func normalizeArgs(args []string) []string {
	var flags, positional []string
	negative := false
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case a == "-help":
			flags = append(flags, "--help")
		case isNegativeNumber(a):
			negative = true
			positional = append(positional, a)
		case valueFlags[a] && i+1 < len(args):
			flags = append(flags, a, args[i+1])
			i++
		case strings.HasPrefix(a, "-"):
			flags = append(flags, a)
		default:
			positional = append(positional, a)
		}
	}
	if negative {
		return append(append(flags, "--"), positional...)
	}

	out := make([]string, len(args))
	for i, a := range args {
		if a == "-help" {
			a = "--help"
		}
		out[i] = a
	}
	return out
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "ellers [width] [iterations]",
		Short:         "Eller's maze generation algorithm implementation.",
		Long:          helpText,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, args, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetHelpTemplate(helpTemplate)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", maze.ErrInvalidArgument, err)
	})

	f := cmd.Flags()
	f.Int64Var(&opts.seed, "seed", 0, "random seed; the same seed and size always yield the same maze")
	f.StringVar(&opts.style, "style", render.StyleSets.String(), `output style: "sets" or "box"`)
	f.BoolVar(&opts.verify, "verify", false, "check the maze is perfect while it streams")
	f.StringVar(&opts.logLevel, "log-level", logrus.WarnLevel.String(), "diagnostics level on stderr")
	f.StringVar(&opts.envFile, "env-file", "", "read settings from this .env file")

	return cmd
}

// parseArgs reads the two positional arguments.
func parseArgs(args []string) (width, iterations int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 arguments [width] [iterations], got %d", maze.ErrInvalidArgument, len(args))
	}
	if width, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: width %q is not an integer", maze.ErrInvalidArgument, args[0])
	}
	if iterations, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: iterations %q is not an integer", maze.ErrInvalidArgument, args[1])
	}
	return width, iterations, nil
}

// resolveConfig loads the environment and applies the flags the user set.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, cfg.SeedSet = opts.seed, true
	}
	if flags.Changed("style") {
		if cfg.Style, err = render.ParseStyle(opts.style); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("verify") {
		cfg.Verify = opts.verify
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = logrus.ParseLevel(opts.logLevel); err != nil {
			return cfg, fmt.Errorf("%w: --log-level: %v", maze.ErrInvalidArgument, err)
		}
	}
	return cfg, nil
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l.WithField("run_id", uuid.NewString())
}

// generate builds the maze and streams it to stdout.
func generate(cmd *cobra.Command, args []string, opts options, stdout, stderr io.Writer) error {
	// 1. Arguments and settings; nothing is printed when they are invalid.
	width, iterations, err := parseArgs(args)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	log := newLogger(stderr, cfg.LogLevel)
	log.WithFields(cfg.Fields()).Debug("configuration resolved")

	// 2. Engine, renderer and optional verifier.
	mopts := []maze.Option{maze.WithLogger(log)}
	if cfg.SeedSet {
		mopts = append(mopts, maze.WithSeed(cfg.Seed))
	}
	b, err := maze.New(width, iterations, mopts...)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(stdout)
	r, err := render.New(out, width, iterations, render.WithStyle(cfg.Style))
	if err != nil {
		return err
	}
	var a *audit.Auditor
	if cfg.Verify {
		if a, err = audit.New(width); err != nil {
			return err
		}
	}

	// 3. Stream.
	err = b.Run(func(row []maze.Cell, last bool) error {
		if a != nil {
			if err := a.Observe(row); err != nil {
				return err
			}
		}
		return r.WriteRow(row, last)
	})
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("flush output: %w", ferr)
	}
	if err != nil {
		return err
	}

	fields := logrus.Fields{
		"width":           width,
		"iterations":      iterations,
		"seed":            b.Seed(),
		"peak_live_cells": b.PeakLiveCells(),
	}
	// 4. Verdict.
	if a != nil {
		rep, err := a.Finish()
		if err != nil {
			return err
		}
		fields["passages"] = rep.Passages
		log.WithFields(fields).Info("maze verified")
		return nil
	}
	log.WithFields(fields).Info("maze generated")

	return nil
}
