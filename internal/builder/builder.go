package builder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/messengerbot/mbuild/internal/docker"
	"github.com/messengerbot/mbuild/internal/paths"
	"github.com/messengerbot/mbuild/internal/ui"
)

// Controls a build run.
type Options struct {
	Ref      string    // Image reference to build (e.g., "facebook-messenger:latest").
	Platform string    // Target platform (e.g., "linux/amd64").
	Context  string    // Build context directory.
	File     string    // Dockerfile path. Empty uses the context default.
	NoCache  bool      // Disable the build cache.
	Pull     bool      // Always pull newer base images.
	Registry string    // Registry host used in the printed push example.
	Stdout   io.Writer // Destination for banners and tool output. Defaults to os.Stdout.
	Stderr   io.Writer // Destination for the tool's stderr. Defaults to os.Stderr.
	LogDir   string    // Directory for build logs. Defaults to [paths.Logs].
}

// Returned after a successful build.
type Result struct {
	Ref     string            // Reference the image was tagged with.
	Image   *docker.ImageInfo // Identity of the built image.
	LogPath string            // Path of the build log, empty if logging failed.
}

// Runs the build sequence end-to-end.
//
// The start banner is written before the build, exactly once. On success
// the image is inspected and the completion banner and usage block are
// written, exactly once, after all tool output. On failure nothing after
// the tool output is written and the error carries the tool's exit code.
func Run(ctx context.Context, client *docker.Client, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	slog.Info("building image",
		"ref", opts.Ref,
		"platform", opts.Platform,
		"context", opts.Context,
	)

	stdout := opts.Stdout
	stderr := opts.Stderr

	// The log file is best-effort; a build must not fail because the
	// state directory is unavailable.
	logFile, logPath := openLog(opts.LogDir)
	if logFile != nil {
		defer logFile.Close()
		stdout = io.MultiWriter(stdout, logFile)
		stderr = io.MultiWriter(stderr, logFile)
	}

	fmt.Fprintln(opts.Stdout, ui.StartBanner(opts.Ref, opts.Platform))

	err := client.Build(ctx, docker.BuildOptions{
		Ref:      opts.Ref,
		Platform: opts.Platform,
		Context:  opts.Context,
		File:     opts.File,
		NoCache:  opts.NoCache,
		Pull:     opts.Pull,
		Stdout:   stdout,
		Stderr:   stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	info, err := client.Inspect(ctx, opts.Ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	slog.Debug("image built",
		"digest", info.ID,
		"size", info.Size,
		"arch", info.Platform.Architecture,
	)

	fmt.Fprintln(opts.Stdout, ui.CompletionBanner(opts.Ref))
	fmt.Fprintln(opts.Stdout)
	fmt.Fprint(opts.Stdout, ui.Usage(opts.Ref, opts.Registry))

	return &Result{
		Ref:     opts.Ref,
		Image:   info,
		LogPath: logPath,
	}, nil
}

// Fills unset writers and the log directory with their defaults.
func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.LogDir == "" {
		o.LogDir = paths.Logs()
	}
	return o
}

// Creates a timestamped log file in dir.
//
// Returns nil and an empty path if the directory or file cannot be
// created; the failure is logged but does not abort the build.
func openLog(dir string) (*os.File, string) {
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		slog.Warn("failed to create log directory", "dir", dir, "error", err)
		return nil, ""
	}

	name := fmt.Sprintf("build-%s.log", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, paths.DefaultFileMode)
	if err != nil {
		slog.Warn("failed to create log file", "path", path, "error", err)
		return nil, ""
	}

	return f, path
}
