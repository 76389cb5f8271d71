package venv

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Reconciler verifies or (re)builds a virtual environment for a base
// interpreter. It manages exactly one environment and is safe to run on
// every startup.
type Reconciler struct {
	// Python is the base interpreter executable the environment must
	// match.
	Python string
	// Log receives progress messages. Nil falls back to a default logger
	// writing to stderr.
	Log *logrus.Logger
}

func (r *Reconciler) logger() *logrus.Logger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}

// Reconcile verifies the environment at root, rebuilding it when it is
// missing, incomplete, or built against a different interpreter. A partial
// environment is never repaired in place: once the interpreter check
// fails, pip presence cannot be trusted either, so the directory is
// deleted and recreated. Returns a ProvisionError if directory handling or
// the environment build fails.
func (r *Reconciler) Reconcile(root string) (*Env, error) {
	log := r.logger()

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, &ProvisionError{Root: root, Err: err}
	}

	env := New(root)
	log.Infof("Checking virtual environment at %s", root)

	if r.verify(env) {
		log.Info("Virtual environment verified")
		env.Valid = true
		return env, nil
	}

	if _, err := os.Stat(root); err == nil {
		log.Info("Virtual environment exists, but is incomplete")
		log.Info("Deleting virtual environment")
		if err := os.RemoveAll(root); err != nil {
			return nil, &ProvisionError{Root: root, Err: err}
		}
	}

	log.Info("Creating virtual environment")
	if err := os.MkdirAll(filepath.Dir(root), 0755); err != nil {
		return nil, &ProvisionError{Root: root, Err: err}
	}
	if err := r.create(root); err != nil {
		return nil, &ProvisionError{Root: root, Err: err}
	}

	env = New(root)
	env.Valid = true
	return env, nil
}

// Check derives the handle for root and verifies it without side effects.
// Unlike Reconcile it never deletes or builds anything, so it is safe for
// read-only inspection.
func (r *Reconciler) Check(root string) *Env {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	env := New(root)
	env.Valid = r.verify(env)
	return env
}

// verify reports whether the environment is complete: pip exists and the
// environment interpreter resolves, symlinks followed, to the same
// physical file as the base interpreter.
func (r *Reconciler) verify(env *Env) bool {
	if _, err := os.Stat(env.Pip); err != nil {
		return false
	}
	resolved, err := filepath.EvalSymlinks(env.Python)
	if err != nil {
		return false
	}
	base, err := filepath.EvalSymlinks(r.Python)
	if err != nil {
		return false
	}
	return resolved == base
}

// create builds the environment with the interpreter's venv module, which
// also provisions pip.
func (r *Reconciler) create(root string) error {
	cmd := exec.Command(r.Python, "-m", "venv", root)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s -m venv: %w: %s", r.Python, err, msg)
		}
		return fmt.Errorf("%s -m venv: %w", r.Python, err)
	}
	return nil
}
