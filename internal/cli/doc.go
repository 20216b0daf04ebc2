// Package cli defines the Cobra command tree for the Go skill bridge. Each
// file in this package registers one top-level command (run, validate,
// actions, etc.) with the root command. Command implementations delegate to
// internal packages and only handle flag parsing and output formatting.
package cli
