// Package paths centralizes filesystem locations and permission modes
// used across mbuild.
package paths
