package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Env is the handle for a virtual environment. It is created by a
// Reconciler and never mutated afterwards; a rebuild yields a new handle.
type Env struct {
	Root   string // environment root directory
	Python string // interpreter executable inside the environment
	Pip    string // pip executable inside the environment
	// Valid reports that both executables exist and the interpreter
	// resolves to the same physical file as the base interpreter.
	Valid bool
}

// New returns the handle for an environment rooted at root, with the
// expected executable paths derived. Valid is left false until a
// Reconciler has verified the environment.
func New(root string) *Env {
	bin := binDir(root)
	return &Env{
		Root:   root,
		Python: filepath.Join(bin, exeName("python")),
		Pip:    filepath.Join(bin, exeName("pip")),
	}
}

// BinDir returns the environment's executable directory.
func (e *Env) BinDir() string { return binDir(e.Root) }

// Environ derives a child-process environment from base: VIRTUAL_ENV is
// set to the environment root and the executable directory is prepended to
// PATH. The base slice is not modified; callers pass the result to spawned
// processes instead of mutating process-global state.
func (e *Env) Environ(base []string) []string {
	env := make([]string, 0, len(base)+2)
	sawPath := false
	for _, kv := range base {
		switch {
		case strings.HasPrefix(kv, "VIRTUAL_ENV="):
			continue
		case strings.HasPrefix(kv, "PATH="):
			sawPath = true
			env = append(env, "PATH="+e.BinDir()+string(os.PathListSeparator)+strings.TrimPrefix(kv, "PATH="))
		default:
			env = append(env, kv)
		}
	}
	if !sawPath {
		env = append(env, "PATH="+e.BinDir())
	}
	env = append(env, "VIRTUAL_ENV="+e.Root)
	return env
}

func binDir(root string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(root, "Scripts")
	}
	return filepath.Join(root, "bin")
}

func exeName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
