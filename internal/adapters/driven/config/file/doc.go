// Package file provides a TOML-backed configuration store.
//
// Configuration lives in ~/.brief/config.toml. Recognised keys:
//
//	endpoint   backend base URL including the API prefix
//	threshold  default consolidation threshold
//	verbose    enable verbose logging
//
// The store can watch its file for changes so a long-running TUI picks up
// endpoint edits without a restart.
package file
