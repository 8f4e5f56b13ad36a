package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/messengerbot/mbuild/internal"
	"github.com/messengerbot/mbuild/internal/cli"
	"github.com/messengerbot/mbuild/internal/docker"
)

// The entry point for the mbuild CLI.
//
// Initializes logging, displays startup information, and executes the root
// command. If the external build tool fails, the process exits with the
// tool's own exit code; any other error exits with code 1.
func main() {
	slog.SetDefault(slog.New(logger()))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("mbuild is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(exitCode(err))
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is reconfigured after flag parsing via cli.Execute.
func logger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           logLevel(),
		Prefix:          internal.Name,
		ReportTimestamp: false,
	})
}

// Returns the log level derived from build-time linker flags.
func logLevel() log.Level {
	if internal.IsDebug() {
		return log.DebugLevel
	}
	if internal.IsQuiet() {
		return log.WarnLevel
	}
	return log.InfoLevel
}

// Returns the process exit code for an error.
//
// A build tool exit code is propagated unchanged; everything else maps
// to 1.
func exitCode(err error) int {
	var xerr *docker.ExitError
	if errors.As(err, &xerr) && xerr.Code > 0 {
		return xerr.Code
	}
	return 1
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
