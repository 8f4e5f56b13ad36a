// Package builder runs the fixed build sequence for the facebook-messenger
// image.
//
// The sequence is linear and strict: print the start banner, invoke the
// external build tool once, and only after a successful exit print the
// completion banner and usage text. The first error aborts the run
// immediately with no retries; the tool's non-zero exit code travels up
// unchanged so the process can exit with it. Tool output is streamed to
// the caller's writer and mirrored into a log file under the XDG state
// directory.
//
// Example usage:
//
//	result, err := builder.Run(ctx, docker.New(), builder.Options{
//	    Ref:      "facebook-messenger:latest",
//	    Platform: "linux/amd64",
//	    Context:  ".",
//	    Registry: "registry.example.com",
//	})
//	if err != nil {
//	    return err
//	}
package builder
