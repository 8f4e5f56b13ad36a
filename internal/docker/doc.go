// Package docker is a thin client for the external docker CLI.
//
// mbuild never constructs images itself; it invokes the docker binary and
// surfaces its exit status unchanged. A non-zero exit from any invocation
// is returned as an [*ExitError] carrying the tool's code, so callers can
// propagate it as the process exit code. A missing binary is reported as
// [ErrToolNotFound] before any build output is produced.
//
// Example usage:
//
//	client := docker.New()
//
//	err := client.Build(ctx, docker.BuildOptions{
//	    Ref:      "facebook-messenger:latest",
//	    Platform: "linux/amd64",
//	    Context:  ".",
//	    Stdout:   os.Stdout,
//	    Stderr:   os.Stderr,
//	})
//	if err != nil {
//	    return err
//	}
//
//	info, err := client.Inspect(ctx, "facebook-messenger:latest")
//	if err != nil {
//	    return err
//	}
package docker
