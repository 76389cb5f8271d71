package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixture provides a scripted stand-in for a Python interpreter and pip so
// tests run hermetically, without a real interpreter or network access.
// The interpreter script understands "-m venv <dir>" and builds a minimal
// environment whose bin/python symlinks back to the base interpreter.
// The pip script logs every invocation and is steered through environment
// variables: VENVMAN_TEST_PIP_FREEZE points at a file whose content is the
// freeze output, and VENVMAN_TEST_PIP_FAIL lists arguments that should fail.
type Fixture struct {
	Dir        string // directory holding the python3 and pip scripts
	Python     string // fake base interpreter
	Pip        string // fake pip, directly invocable
	LogPath    string // file recording pip invocations, one per line
	FreezePath string // file whose content the fake pip emits on freeze
}

const pythonScript = `#!/bin/sh
SELF=$(readlink -f "$0")
BASE=$(dirname "$SELF")
if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
	DEST="$3"
	mkdir -p "$DEST/bin"
	ln -s "$SELF" "$DEST/bin/python"
	cp "$BASE/pip" "$DEST/bin/pip"
	chmod +x "$DEST/bin/pip"
	exit 0
fi
if [ "$1" = "--version" ]; then
	echo "Python 3.12.0"
	exit 0
fi
exit 0
`

const pipScript = `#!/bin/sh
if [ -n "$VENVMAN_TEST_PIP_LOG" ]; then
	echo "pip $*" >> "$VENVMAN_TEST_PIP_LOG"
fi
fails=" $VENVMAN_TEST_PIP_FAIL "
case "$1" in
freeze)
	if [ -n "$VENVMAN_TEST_PIP_FREEZE" ] && [ -f "$VENVMAN_TEST_PIP_FREEZE" ]; then
		cat "$VENVMAN_TEST_PIP_FREEZE"
	fi
	;;
install|show)
	for arg in "$@"; do
		case "$fails" in
		*" $arg "*)
			echo "fake pip: refusing $*" >&2
			exit 1
			;;
		esac
	done
	echo "fake pip: $*"
	;;
--version)
	echo "pip 24.0 (fake)"
	;;
esac
exit 0
`

// NewFixture writes the fake interpreter and pip scripts into a temp
// directory and wires the steering environment variables for the test.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	dir := t.TempDir()

	f := &Fixture{
		Dir:        dir,
		Python:     filepath.Join(dir, "python3"),
		Pip:        filepath.Join(dir, "pip"),
		LogPath:    filepath.Join(dir, "pip.log"),
		FreezePath: filepath.Join(dir, "freeze.txt"),
	}

	writeScript(t, f.Python, pythonScript)
	writeScript(t, f.Pip, pipScript)

	t.Setenv("VENVMAN_TEST_PIP_LOG", f.LogPath)
	t.Setenv("VENVMAN_TEST_PIP_FREEZE", f.FreezePath)
	t.Setenv("VENVMAN_TEST_PIP_FAIL", "")

	return f
}

// SetFreeze sets the content the fake pip returns for freeze calls.
func (f *Fixture) SetFreeze(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(f.FreezePath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// FailOn makes the fake pip exit non-zero for install/show invocations that
// mention any of the given arguments.
func (f *Fixture) FailOn(t *testing.T, args ...string) {
	t.Helper()
	t.Setenv("VENVMAN_TEST_PIP_FAIL", strings.Join(args, " "))
}

// Invocations returns the pip invocations recorded so far.
func (f *Fixture) Invocations(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

func writeScript(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
}
