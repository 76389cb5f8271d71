package manifest

import "strings"

// Entry represents a single requirement: a package name with an optional
// exact version pin.
type Entry struct {
	Name    string
	Version string
}

// Spec returns the pip install spec for the entry: "name" or "name==version".
func (e Entry) Spec() string {
	if e.Version == "" {
		return e.Name
	}
	return e.Name + "==" + e.Version
}

// ParseLine parses a single requirements line. Returns ok=false for blank
// lines. The version is everything after the first "==".
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}
	name, version, _ := strings.Cut(line, "==")
	return Entry{Name: strings.TrimSpace(name), Version: strings.TrimSpace(version)}, true
}

// Names returns the set of bare package names in the given entries.
func Names(entries []Entry) map[string]bool {
	m := make(map[string]bool, len(entries))
	for _, e := range entries {
		m[e.Name] = true
	}
	return m
}
