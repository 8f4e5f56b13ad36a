package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/messengerbot/mbuild/internal/config"
	"github.com/messengerbot/mbuild/internal/docker"
)

// Represents the 'mbuild push' command.
type PushCmd struct {
	Registry string `arg:"" optional:"" help:"Registry host to push to. Defaults to the configured registry."`
}

// Executes the push command.
//
// Tags the locally built image with the registry-qualified reference and
// pushes it. The image must have been built first.
func (c *PushCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(RootCmd.Config)
	if err != nil {
		return err
	}
	if c.Registry != "" {
		cfg.Registry = c.Registry
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := docker.New()
	remote := cfg.RemoteRef()

	if err := client.Tag(ctx, cfg.Ref(), remote); err != nil {
		return err
	}

	if err := client.Push(ctx, remote, os.Stdout, os.Stderr); err != nil {
		return err
	}

	slog.Info("image pushed", "ref", remote)
	return nil
}
