package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgress_Step(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 2)

	p.Step("alpha==1.0 installed")
	p.Step("beta installed")

	out := buf.String()
	if !strings.Contains(out, "[1/2] alpha==1.0 installed") {
		t.Errorf("missing first step line: %s", out)
	}
	if !strings.Contains(out, "[2/2] beta installed") {
		t.Errorf("missing second step line: %s", out)
	}
}

func TestProgress_Log(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 1)

	p.Log("resolving %s", "alpha")

	if !strings.Contains(buf.String(), "resolving alpha") {
		t.Errorf("missing log message: %s", buf.String())
	}
}

func TestTable_render(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "PACKAGE", "PINNED", "STATE")
	tbl.Row("alpha", "1.0", "ok")
	tbl.Row("beta", "-", "missing")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines (header + 2 rows), got %d", len(lines))
	}
	if !strings.Contains(lines[0], "PACKAGE") {
		t.Errorf("header missing PACKAGE: %q", lines[0])
	}
	if !strings.Contains(lines[2], "missing") {
		t.Errorf("row 2 missing state: %q", lines[2])
	}
}
