// Package project resolves the paths and configuration a venvman
// invocation operates on. Settings come from venvman.yaml at the project
// root, overridden by command-line flags, with defaults for everything
// else.
package project
