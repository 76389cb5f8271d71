package venv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnviron_setsMarkerAndPath(t *testing.T) {
	env := New("/srv/app/.venv")
	base := []string{"HOME=/home/u", "PATH=/usr/bin:/bin", "VIRTUAL_ENV=/old/env"}

	got := env.Environ(base)

	var path, marker string
	for _, kv := range got {
		switch {
		case strings.HasPrefix(kv, "PATH="):
			path = kv
		case strings.HasPrefix(kv, "VIRTUAL_ENV="):
			marker = kv
		}
	}
	wantPath := "PATH=" + env.BinDir() + string(os.PathListSeparator) + "/usr/bin:/bin"
	if path != wantPath {
		t.Errorf("PATH = %q, want %q", path, wantPath)
	}
	if marker != "VIRTUAL_ENV=/srv/app/.venv" {
		t.Errorf("VIRTUAL_ENV = %q", marker)
	}

	// Old marker must be replaced, not duplicated.
	count := 0
	for _, kv := range got {
		if strings.HasPrefix(kv, "VIRTUAL_ENV=") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("VIRTUAL_ENV count = %d, want 1", count)
	}
}

func TestEnviron_missingPath(t *testing.T) {
	env := New("/srv/app/.venv")
	got := env.Environ([]string{"HOME=/home/u"})

	want := "PATH=" + env.BinDir()
	found := false
	for _, kv := range got {
		if kv == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in %v", want, got)
	}
}

func TestEnviron_doesNotMutateBase(t *testing.T) {
	env := New("/srv/app/.venv")
	base := []string{"PATH=/usr/bin"}
	_ = env.Environ(base)
	if base[0] != "PATH=/usr/bin" {
		t.Errorf("base slice mutated: %v", base)
	}
}

func TestNew_derivesExecutablePaths(t *testing.T) {
	env := New("/srv/app/.venv")
	if env.Valid {
		t.Error("fresh handle must not be valid")
	}
	if filepath.Dir(env.Python) != env.BinDir() || filepath.Dir(env.Pip) != env.BinDir() {
		t.Errorf("executables not under bin dir: %s, %s", env.Python, env.Pip)
	}
}
