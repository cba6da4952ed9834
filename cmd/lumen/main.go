// Package main is the entry point for the lumen editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"lumen/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	editor, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer editor.Close()

	if err := editor.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.Theme, "theme", "", "Color theme name")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Lumen - terminal editor with incremental syntax highlighting\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lumen [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-Q quit   Ctrl-S save   Ctrl-N next tab\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-T cycle theme   Ctrl-E toggle highlighting\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("lumen %s (%s)\n", version, commit)
		os.Exit(0)
	}

	opts.Files = flag.Args()
	return opts
}
