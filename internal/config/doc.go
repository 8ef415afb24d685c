// Package config holds the settings a pushit run is built from.
//
// It handles:
//   - Invocation options parsed from the command line
//   - Repository-specific defaults stored in .git/.pushit_config
package config
