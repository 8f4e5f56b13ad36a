// Package config holds the build defaults for the facebook-messenger image
// and loads optional overrides from a YAML file.
//
// The defaults reproduce the fixed values of the original build invocation:
// image facebook-messenger:latest, platform linux/amd64, and the current
// directory as build context. A config file is never required; running
// mbuild with no file present uses the defaults unchanged.
//
// Search order for overrides:
//
//  1. An explicit path passed via --config. A missing or malformed file
//     at an explicit path is an error.
//  2. mbuild.yaml in the working directory, if present.
//  3. Compiled-in defaults.
package config
