package docker

import (
	"errors"
	"fmt"
)

var (
	ErrDocker       = errors.New("docker command failed")
	ErrToolNotFound = errors.New("build tool not found")
	ErrInspect      = errors.New("image inspect failed")
)

// Reports a docker invocation that ran and exited with a non-zero code.
//
// The code is preserved so the caller can exit the process with the same
// value the tool produced.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("docker exited with code %d", e.Code)
}
