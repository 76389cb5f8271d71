package project

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Defaults applied when neither venvman.yaml nor flags specify a value.
const (
	DefaultVenv         = ".venv"
	DefaultRequirements = "requirements.txt"
	DefaultPython       = "python3"
)

// Overrides carries command-line flag values that take precedence over
// venvman.yaml. Empty fields fall through to the config file and defaults.
type Overrides struct {
	Venv         string
	Requirements string
	Python       string
}

// Context holds the resolved paths for one project.
type Context struct {
	Root             string
	ConfigPath       string
	VenvDir          string
	RequirementsPath string // empty when no requirements file is configured
	Python           string // base interpreter executable
}

// Load resolves the project root and loads venvman.yaml if present.
// The requirements path is only configured when explicitly set (flag or
// config) or when the default requirements.txt exists in the project root:
// sync operations on an unconfigured manifest are documented no-ops, not
// errors. The base interpreter is looked up on PATH when given as a bare
// command name.
func Load(root string, ov Overrides) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	ctx := &Context{
		Root:       root,
		ConfigPath: filepath.Join(root, ConfigFile),
	}

	cfg := &Config{Version: 1}
	if _, statErr := os.Stat(ctx.ConfigPath); statErr == nil {
		cfg, err = LoadConfig(ctx.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	venv := firstOf(ov.Venv, cfg.Venv, DefaultVenv)
	ctx.VenvDir = absJoin(root, venv)

	switch req := firstOf(ov.Requirements, cfg.Requirements, ""); {
	case req != "":
		ctx.RequirementsPath = absJoin(root, req)
	default:
		// Unconfigured: pick up the conventional file only if it exists.
		def := filepath.Join(root, DefaultRequirements)
		if _, statErr := os.Stat(def); statErr == nil {
			ctx.RequirementsPath = def
		}
	}

	python := firstOf(ov.Python, cfg.Python, DefaultPython)
	ctx.Python, err = resolvePython(python)
	if err != nil {
		return nil, err
	}

	return ctx, nil
}

// resolvePython resolves a bare interpreter command name through PATH;
// explicit paths are used as given.
func resolvePython(python string) (string, error) {
	if filepath.Base(python) != python {
		return python, nil
	}
	path, err := exec.LookPath(python)
	if err != nil {
		return "", fmt.Errorf("interpreter %q not found on PATH: %w", python, err)
	}
	return path, nil
}

func absJoin(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
