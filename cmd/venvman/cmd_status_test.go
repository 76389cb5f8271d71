package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Plyrolith/venvman/internal/testutil"
)

func TestRunStatus_json(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := t.TempDir()
	writeRequirements(t, dir, "alpha==1.0\nbeta\ngamma==2.0\n")
	f.SetFreeze(t, "alpha==1.0\nbeta==3.0\n")

	if _, err := execute(t, dir, f, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	out, err := execute(t, dir, f, "status", "--json")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}

	var statuses []packageStatus
	if err := json.Unmarshal([]byte(out), &statuses); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(statuses) != 3 {
		t.Fatalf("statuses = %+v, want 3 entries", statuses)
	}
	if statuses[0].State != "ok" || statuses[0].Installed != "1.0" {
		t.Errorf("alpha = %+v", statuses[0])
	}
	if statuses[1].State != "ok" || statuses[1].Installed != "3.0" {
		t.Errorf("beta = %+v", statuses[1])
	}
	if statuses[2].State != "missing" {
		t.Errorf("gamma = %+v", statuses[2])
	}
}

func TestRunStatus_invalidEnv(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := t.TempDir()
	writeRequirements(t, dir, "alpha\n")

	out, err := execute(t, dir, f, "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(out, "missing or invalid") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "missing") {
		t.Errorf("alpha should report missing, output = %q", out)
	}
}

func TestRunStatus_noRequirements(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := t.TempDir()

	out, err := execute(t, dir, f, "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(out, "No requirements file configured.") {
		t.Errorf("output = %q", out)
	}
}
