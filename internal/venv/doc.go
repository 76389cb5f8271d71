// Package venv manages a virtual environment for a configured base
// interpreter. The Reconciler verifies or rebuilds the environment
// directory and the Synchronizer reconciles a requirements file against
// the environment's installed package set.
package venv
