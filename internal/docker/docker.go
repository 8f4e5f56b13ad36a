package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Name of the docker binary resolved via PATH.
const defaultBinary = "docker"

// Invokes the external docker CLI.
type Client struct {
	bin string // Path or name of the docker binary.
}

// Creates a client using the docker binary from PATH.
func New() *Client {
	return &Client{bin: defaultBinary}
}

// Creates a client using an explicit docker binary path.
func NewWithBinary(bin string) *Client {
	return &Client{bin: bin}
}

// Controls a single image build invocation.
type BuildOptions struct {
	Ref      string    // Image reference to tag the result with.
	Platform string    // Target platform (e.g., "linux/amd64").
	Context  string    // Build context directory.
	File     string    // Dockerfile path. Empty uses the context default.
	NoCache  bool      // Disable the build cache.
	Pull     bool      // Always pull newer base images.
	Stdout   io.Writer // Destination for the tool's stdout. Nil discards.
	Stderr   io.Writer // Destination for the tool's stderr. Nil discards.
}

// Returns the argument vector for the build invocation.
func (o BuildOptions) args() []string {
	args := []string{"build", "--platform", o.Platform, "-t", o.Ref}
	if o.File != "" {
		args = append(args, "-f", o.File)
	}
	if o.NoCache {
		args = append(args, "--no-cache")
	}
	if o.Pull {
		args = append(args, "--pull")
	}
	return append(args, o.Context)
}

// Builds an image by invoking "docker build" with the given options.
//
// Tool output is streamed to the configured writers as it is produced. A
// non-zero exit is returned as an [*ExitError] with the tool's code.
func (c *Client) Build(ctx context.Context, opts BuildOptions) error {
	slog.Debug("build", "ref", opts.Ref, "platform", opts.Platform, "context", opts.Context)
	return c.run(ctx, opts.Stdout, opts.Stderr, opts.args()...)
}

// Applies an additional tag to an existing image.
func (c *Client) Tag(ctx context.Context, src, dst string) error {
	slog.Debug("tag", "src", src, "dst", dst)
	return c.run(ctx, nil, nil, "tag", src, dst)
}

// Pushes an image reference to its registry.
func (c *Client) Push(ctx context.Context, ref string, stdout, stderr io.Writer) error {
	slog.Debug("push", "ref", ref)
	return c.run(ctx, stdout, stderr, "push", ref)
}

// Identity and platform details of a local image.
type ImageInfo struct {
	ID       digest.Digest    // Content digest of the image config.
	Size     int64            // Image size in bytes.
	Platform ocispec.Platform // Architecture and OS the image was built for.
}

// Shape of a "docker image inspect" record. Only the fields mbuild reads.
type inspectRecord struct {
	ID           string `json:"Id"`
	Size         int64  `json:"Size"`
	Architecture string `json:"Architecture"`
	Os           string `json:"Os"`
}

// Queries a local image via "docker image inspect".
//
// The reported image ID is validated as an OCI digest before being
// returned.
func (c *Client) Inspect(ctx context.Context, ref string) (*ImageInfo, error) {
	var out bytes.Buffer
	if err := c.run(ctx, &out, nil, "image", "inspect", "--format", "{{json .}}", ref); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInspect, err)
	}

	var record inspectRecord
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInspect, err)
	}

	id, err := digest.Parse(record.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: image ID %q: %w", ErrInspect, record.ID, err)
	}

	return &ImageInfo{
		ID:   id,
		Size: record.Size,
		Platform: ocispec.Platform{
			Architecture: record.Architecture,
			OS:           record.Os,
		},
	}, nil
}

// Runs the docker binary with the given arguments.
//
// Nil writers discard the corresponding stream. Exit codes are surfaced as
// [*ExitError]; a binary that cannot be found or started is reported as
// [ErrToolNotFound].
func (c *Client) run(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	cmd := exec.CommandContext(ctx, c.bin, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var xerr *exec.ExitError
		if errors.As(err, &xerr) {
			return &ExitError{Code: xerr.ExitCode()}
		}
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrToolNotFound, c.bin)
		}
		return fmt.Errorf("%w: %w", ErrDocker, err)
	}

	return nil
}
