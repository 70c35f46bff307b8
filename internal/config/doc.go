// Package config resolves analysis inputs and output settings from defaults,
// MOVLOAD_* environment variables, an optional YAML file and CLI flags.
package config
