package builder

import "errors"

var ErrBuild = errors.New("build failed")
