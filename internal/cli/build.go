package cli

import (
	"context"
	"log/slog"

	"github.com/messengerbot/mbuild/internal/builder"
	"github.com/messengerbot/mbuild/internal/config"
	"github.com/messengerbot/mbuild/internal/docker"
)

// Represents the 'mbuild build' command.
//
// All flags are optional; left unset, the build uses the fixed defaults
// (facebook-messenger:latest, linux/amd64, current directory).
type BuildCmd struct {
	Tag      string `short:"t" help:"Override the image reference." placeholder:"REF"`
	Platform string `help:"Override the target platform." placeholder:"OS/ARCH"`
	Context  string `help:"Override the build context directory." placeholder:"DIR"`
	File     string `short:"f" help:"Dockerfile path." placeholder:"PATH"`
	NoCache  bool   `help:"Build without using the cache."`
	Pull     bool   `help:"Always pull newer base images."`
}

// Executes the build command.
//
// Loads the configuration, applies flag overrides, and runs the single
// build invocation. The error from a failed build carries the external
// tool's exit code.
func (c *BuildCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(RootCmd.Config)
	if err != nil {
		return err
	}

	opts := c.options(cfg)
	if err := validate(opts, cfg); err != nil {
		return err
	}

	result, err := builder.Run(ctx, docker.New(), opts)
	if err != nil {
		return err
	}

	slog.Debug("build finished",
		"ref", result.Ref,
		"digest", result.Image.ID,
		"log", result.LogPath,
	)
	return nil
}

// Overlays flag values on the loaded configuration.
func (c *BuildCmd) options(cfg config.Config) builder.Options {
	opts := builder.Options{
		Ref:      cfg.Ref(),
		Platform: cfg.Platform,
		Context:  cfg.Context,
		File:     cfg.Dockerfile,
		NoCache:  c.NoCache,
		Pull:     c.Pull,
		Registry: cfg.Registry,
	}

	if c.Tag != "" {
		opts.Ref = c.Tag
	}
	if c.Platform != "" {
		opts.Platform = c.Platform
	}
	if c.Context != "" {
		opts.Context = c.Context
	}
	if c.File != "" {
		opts.File = c.File
	}

	return opts
}

// Validates the effective build settings, including flag overrides.
func validate(opts builder.Options, cfg config.Config) error {
	cfg.Platform = opts.Platform
	cfg.Context = opts.Context
	return cfg.Validate()
}
