package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/messengerbot/mbuild/internal"
)

// Represents the root command for the mbuild CLI.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Config  string     `short:"c" help:"Path to a config file." placeholder:"PATH"`
	Build   BuildCmd   `cmd:"" default:"withargs" help:"Build the facebook-messenger image."`
	Push    PushCmd    `cmd:"" help:"Push the built image to a registry."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Build tool for the facebook-messenger container image.\n\nWith no arguments, builds facebook-messenger:latest for linux/amd64 from the current directory."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	logger, ok := slog.Default().Handler().(*log.Logger)
	if !ok {
		return // Not a charm handler, nothing to configure
	}

	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	if debug {
		logger.SetLevel(log.DebugLevel)
	} else if quiet {
		logger.SetLevel(log.WarnLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	logger.SetReportTimestamp(verbose)
	logger.SetReportCaller(debug)
	logger.SetOutput(os.Stderr)
}
