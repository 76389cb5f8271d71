package pip

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pip")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietClient(path string) *Client {
	c := New(path)
	c.Out = io.Discard
	log := logrus.New()
	log.SetOutput(io.Discard)
	c.Log = log
	return c
}

func TestRun_capturesBothStreams(t *testing.T) {
	c := quietClient(writeScript(t, `echo out-line
echo err-line >&2
`))
	stdout, stderr, err := c.run(false, "freeze")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout != "out-line\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "err-line\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_failureIncludesStderr(t *testing.T) {
	c := quietClient(writeScript(t, `echo broken >&2
exit 3
`))
	_, _, err := c.run(false, "install", "alpha")
	if err == nil {
		t.Fatal("expected error for exit 3")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should carry stderr, got: %v", err)
	}
	if code := ExitCode(err); code != 3 {
		t.Errorf("ExitCode = %d, want 3", code)
	}
}

func TestExitCode_nonExitError(t *testing.T) {
	c := quietClient(filepath.Join(t.TempDir(), "no-such-pip"))
	_, _, err := c.run(false, "freeze")
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	if code := ExitCode(err); code != -1 {
		t.Errorf("ExitCode = %d, want -1", code)
	}
}

// A process interleaving far more than a pipe buffer's worth of output on
// both streams only completes if both are drained concurrently.
func TestRun_drainsInterleavedOutput(t *testing.T) {
	c := quietClient(writeScript(t, `i=0
while [ $i -lt 4096 ]; do
	echo "oooooooooooooooooooooooooooooooooooooooooooooooooooooooooooooooo"
	echo "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee" >&2
	i=$((i + 1))
done
`))
	stdout, stderr, err := c.run(false, "install", "big")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(stdout) < 4096*65 || len(stderr) < 4096*65 {
		t.Errorf("truncated drain: stdout=%d stderr=%d bytes", len(stdout), len(stderr))
	}
}

func TestInstall_streamsOutput(t *testing.T) {
	c := quietClient(writeScript(t, `echo installing things
`))
	var buf bytes.Buffer
	c.Out = &buf
	if err := c.Install("alpha==1.0"); err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if !strings.Contains(buf.String(), "installing things") {
		t.Errorf("streamed output = %q", buf.String())
	}
}

func TestVersion(t *testing.T) {
	c := quietClient(writeScript(t, `echo "pip 24.0 from /x"
`))
	v, err := c.Version()
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if v != "pip 24.0 from /x" {
		t.Errorf("version = %q", v)
	}
}
