package manifest

import (
	"fmt"
	"os"
	"strings"
)

// Parse parses requirements file content, one spec per line. Blank lines are
// skipped. Duplicate package names are kept in file order and not
// deduplicated; callers that replay the list install later entries last, so
// the last-listed pin wins.
func Parse(data []byte) []Entry {
	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		if e, ok := ParseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Load reads and parses a requirements file.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading requirements: %w", err)
	}
	return Parse(data), nil
}

// Save writes the entries to the requirements file, one spec per line,
// replacing any previous content.
func Save(path string, entries []Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Spec())
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing requirements: %w", err)
	}
	return nil
}

// Append adds an entry to the end of the requirements file, creating the file
// if it does not exist. A hand-edited file may lack a trailing newline; the
// entry starts on its own line either way.
func Append(path string, e Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("opening requirements: %w", err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("appending to requirements: %w", err)
	}
	spec := e.Spec() + "\n"
	if fi.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, fi.Size()-1); err != nil {
			return fmt.Errorf("appending to requirements: %w", err)
		}
		if last[0] != '\n' {
			spec = "\n" + spec
		}
	}
	if _, err := f.WriteString(spec); err != nil {
		return fmt.Errorf("appending to requirements: %w", err)
	}
	return nil
}
