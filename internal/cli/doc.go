// Parses flags and configures logging for the mbuild CLI.
//
// The tool accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//	-c, --config    Config file path.
//
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// selected subcommand runs. Running mbuild with no arguments executes the
// build command with its compiled-in defaults.
package cli
