package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "mbuild"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for persistent state.
//
//	Linux:   ~/.local/state/mbuild
//	macOS:   ~/Library/Application Support/mbuild
func State() string {
	return filepath.Join(xdg.StateHome, toolName)
}

// Path to the directory for build logs.
//
//	Linux:   ~/.local/state/mbuild/logs
//	macOS:   ~/Library/Application Support/mbuild/logs
func Logs() string {
	return filepath.Join(State(), "logs")
}
