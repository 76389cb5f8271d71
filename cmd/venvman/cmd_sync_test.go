package main

import (
	"strings"
	"testing"

	"github.com/Plyrolith/venvman/internal/testutil"
)

func hasInvocation(invocations []string, want string) bool {
	for _, inv := range invocations {
		if inv == want {
			return true
		}
	}
	return false
}

func TestRunSync_installsMissing(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := t.TempDir()
	writeRequirements(t, dir, "alpha\n\nbeta==2.0\n")
	f.SetFreeze(t, "alpha==1.0\n")

	out, err := execute(t, dir, f, "sync")
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if !strings.Contains(out, "Installed beta==2.0") {
		t.Errorf("output = %q", out)
	}
	inv := f.Invocations(t)
	if !hasInvocation(inv, "pip install beta==2.0") {
		t.Errorf("invocations = %v", inv)
	}
	if hasInvocation(inv, "pip install alpha") {
		t.Errorf("alpha is satisfied, invocations = %v", inv)
	}
}

func TestRunSync_allSatisfied(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := t.TempDir()
	writeRequirements(t, dir, "alpha\n")
	f.SetFreeze(t, "alpha==1.0\n")

	out, err := execute(t, dir, f, "sync")
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if !strings.Contains(out, "All dependencies satisfied.") {
		t.Errorf("output = %q", out)
	}
}

func TestRunSync_noRequirements(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := t.TempDir()

	out, err := execute(t, dir, f, "sync")
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if !strings.Contains(out, "nothing to sync") {
		t.Errorf("output = %q", out)
	}
	if inv := f.Invocations(t); len(inv) != 0 {
		t.Errorf("no pip invocation expected, got %v", inv)
	}
}
