package docker

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Writes a stub docker executable running the given shell script and
// returns a client bound to it.
func stubClient(t *testing.T, script string) *Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "docker")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatal(err)
	}

	return NewWithBinary(path)
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		opts BuildOptions
		want []string
	}{
		{
			name: "fixed defaults",
			opts: BuildOptions{
				Ref:      "facebook-messenger:latest",
				Platform: "linux/amd64",
				Context:  ".",
			},
			want: []string{"build", "--platform", "linux/amd64", "-t", "facebook-messenger:latest", "."},
		},
		{
			name: "dockerfile override",
			opts: BuildOptions{
				Ref:      "facebook-messenger:latest",
				Platform: "linux/amd64",
				Context:  ".",
				File:     "docker/Dockerfile.prod",
			},
			want: []string{"build", "--platform", "linux/amd64", "-t", "facebook-messenger:latest", "-f", "docker/Dockerfile.prod", "."},
		},
		{
			name: "no cache and pull",
			opts: BuildOptions{
				Ref:      "img:tag",
				Platform: "linux/arm64",
				Context:  "/src",
				NoCache:  true,
				Pull:     true,
			},
			want: []string{"build", "--platform", "linux/arm64", "-t", "img:tag", "--no-cache", "--pull", "/src"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.args()
			if len(got) != len(tt.want) {
				t.Fatalf("args = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("args[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildStreamsOutput(t *testing.T) {
	client := stubClient(t, `echo "step 1/1 : FROM base"; echo "warning" >&2`)

	var stdout, stderr bytes.Buffer
	err := client.Build(context.Background(), BuildOptions{
		Ref:      "facebook-messenger:latest",
		Platform: "linux/amd64",
		Context:  ".",
		Stdout:   &stdout,
		Stderr:   &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "step 1/1") {
		t.Errorf("stdout = %q, missing tool output", stdout.String())
	}
	if !strings.Contains(stderr.String(), "warning") {
		t.Errorf("stderr = %q, missing tool output", stderr.String())
	}
}

func TestBuildExitCodePreserved(t *testing.T) {
	client := stubClient(t, `exit 3`)

	err := client.Build(context.Background(), BuildOptions{
		Ref:      "facebook-messenger:latest",
		Platform: "linux/amd64",
		Context:  ".",
	})

	var xerr *ExitError
	if !errors.As(err, &xerr) {
		t.Fatalf("err = %v, want *ExitError", err)
	}
	if xerr.Code != 3 {
		t.Fatalf("Code = %d, want 3", xerr.Code)
	}
}

func TestToolNotFound(t *testing.T) {
	client := NewWithBinary(filepath.Join(t.TempDir(), "missing-docker"))

	err := client.Build(context.Background(), BuildOptions{
		Ref:      "facebook-messenger:latest",
		Platform: "linux/amd64",
		Context:  ".",
	})
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("err = %v, want ErrToolNotFound", err)
	}
}

func TestInspect(t *testing.T) {
	id := "sha256:" + strings.Repeat("a", 64)
	client := stubClient(t,
		`echo '{"Id":"`+id+`","Size":4242,"Architecture":"amd64","Os":"linux"}'`)

	info, err := client.Inspect(context.Background(), "facebook-messenger:latest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.ID.String() != id {
		t.Errorf("ID = %q, want %q", info.ID, id)
	}
	if info.Size != 4242 {
		t.Errorf("Size = %d, want 4242", info.Size)
	}
	if info.Platform.OS != "linux" || info.Platform.Architecture != "amd64" {
		t.Errorf("platform = %s/%s, want linux/amd64", info.Platform.OS, info.Platform.Architecture)
	}
}

func TestInspectBadDigest(t *testing.T) {
	client := stubClient(t, `echo '{"Id":"not-a-digest","Size":1,"Architecture":"amd64","Os":"linux"}'`)

	_, err := client.Inspect(context.Background(), "facebook-messenger:latest")
	if !errors.Is(err, ErrInspect) {
		t.Fatalf("err = %v, want ErrInspect", err)
	}
}

func TestInspectMissingImage(t *testing.T) {
	client := stubClient(t, `echo "No such image" >&2; exit 1`)

	_, err := client.Inspect(context.Background(), "facebook-messenger:latest")
	if !errors.Is(err, ErrInspect) {
		t.Fatalf("err = %v, want ErrInspect", err)
	}

	var xerr *ExitError
	if !errors.As(err, &xerr) || xerr.Code != 1 {
		t.Fatalf("err = %v, want wrapped *ExitError with code 1", err)
	}
}

func TestTagAndPush(t *testing.T) {
	client := stubClient(t, `[ "$1" = tag ] || [ "$1" = push ] || exit 9`)

	ctx := context.Background()
	if err := client.Tag(ctx, "facebook-messenger:latest", "registry.example.com/facebook-messenger:latest"); err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if err := client.Push(ctx, "registry.example.com/facebook-messenger:latest", nil, nil); err != nil {
		t.Fatalf("Push: %v", err)
	}
}
