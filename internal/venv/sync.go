package venv

import (
	"os"
	"strings"

	"github.com/Plyrolith/venvman/internal/manifest"
	"github.com/Plyrolith/venvman/internal/pip"
	"github.com/sirupsen/logrus"
)

// Synchronizer reconciles a requirements file against the installed
// package set of one environment. It never touches the environment's
// existence, only its package contents and the requirements file.
//
// Operations are not safe for concurrent use against the same environment:
// pip itself is not guaranteed safe for concurrent invocation, so callers
// must keep at most one operation in flight per environment root.
type Synchronizer struct {
	// Env is the verified environment handle the synchronizer is bound to.
	Env *Env
	// Pip is the package manager client. NewSynchronizer binds it to the
	// environment's pip executable and derived process environment.
	Pip *pip.Client
	// Requirements is the manifest path. Empty disables all operations:
	// they become no-ops returning empty results.
	Requirements string
	// Log receives progress messages. Nil falls back to a default logger
	// writing to stderr.
	Log *logrus.Logger
}

// NewSynchronizer creates a synchronizer bound to the given environment.
// The pip client inherits the current process environment with the
// environment marker applied.
func NewSynchronizer(env *Env, requirements string, log *logrus.Logger) *Synchronizer {
	client := pip.New(env.Pip)
	client.Env = env.Environ(os.Environ())
	client.Log = log
	return &Synchronizer{
		Env:          env,
		Pip:          client,
		Requirements: requirements,
		Log:          log,
	}
}

func (s *Synchronizer) logger() *logrus.Logger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}

// noRequirements logs the documented no-op when no requirements file is
// configured.
func (s *Synchronizer) noRequirements() bool {
	if s.Requirements != "" {
		return false
	}
	s.logger().Info("No requirements file specified")
	return true
}

// InstallMissing installs every requirements entry not already present in
// the environment and returns the specs actually installed this call.
//
// Presence is a raw substring test of each entry's spec against the full
// freeze output. This is a deliberately cheap "already satisfied"
// heuristic, not exact matching: an unpinned entry "foo" is satisfied by a
// freeze line "foobar==1.0". A failed individual install is logged and
// that entry skipped; the operation continues with the remaining entries.
func (s *Synchronizer) InstallMissing() ([]string, error) {
	if s.noRequirements() {
		return nil, nil
	}
	log := s.logger()
	log.Info("Checking/installing dependencies using pip")

	freeze, err := s.Pip.Freeze()
	if err != nil {
		return nil, err
	}

	entries, err := manifest.Load(s.Requirements)
	if err != nil {
		return nil, &ManifestError{Path: s.Requirements, Err: err}
	}

	var installed []string
	for _, e := range entries {
		spec := e.Spec()
		if strings.Contains(freeze, spec) {
			log.Infof("Dependency %s satisfied", spec)
			continue
		}
		if err := s.Pip.Install(spec); err != nil {
			log.Warnf("%v (skipping)", &InstallError{Spec: spec, Err: err})
			continue
		}
		installed = append(installed, spec)
	}
	return installed, nil
}

// UpgradeAll upgrades every requirements entry to its latest release and
// returns the bare names processed.
//
// The upgrade install's exit status is deliberately ignored: pip's exit
// code semantics are unreliable here. The follow-up Show call is the real
// verification, and its failure propagates since it means the package is
// genuinely missing after the upgrade.
func (s *Synchronizer) UpgradeAll() ([]string, error) {
	if s.noRequirements() {
		return nil, nil
	}
	log := s.logger()
	log.Info("Updating dependencies using pip")

	entries, err := manifest.Load(s.Requirements)
	if err != nil {
		return nil, &ManifestError{Path: s.Requirements, Err: err}
	}

	var processed []string
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if err := s.Pip.InstallUpgrade(e.Name); err != nil {
			log.Debugf("ignoring upgrade exit status for %s: %v", e.Name, err)
		}
		processed = append(processed, e.Name)

		info, err := s.Pip.Show(e.Name)
		if err != nil {
			return nil, err
		}
		log.Info(strings.TrimSpace(info))
	}
	return processed, nil
}

// Freeze rewrites the requirements file from the installed snapshot and
// returns the file path. Only packages already named in the file are kept
// ("tracked"); untracked installed packages are dropped and tracked
// packages no longer installed vanish from the file. Output follows
// snapshot order, not the file's previous order. The file is truncated
// only after the tracked set has been computed from the old content.
func (s *Synchronizer) Freeze() (string, error) {
	if s.noRequirements() {
		return "", nil
	}
	log := s.logger()
	log.Info("Freezing current dependency versions to requirements file")

	freeze, err := s.Pip.Freeze()
	if err != nil {
		return "", err
	}

	old, err := manifest.Load(s.Requirements)
	if err != nil {
		return "", &ManifestError{Path: s.Requirements, Err: err}
	}
	tracked := manifest.Names(old)

	var kept []manifest.Entry
	for _, line := range strings.Split(freeze, "\n") {
		e, ok := manifest.ParseLine(line)
		if !ok || !tracked[e.Name] {
			continue
		}
		log.Infof("Writing %s", e.Spec())
		kept = append(kept, e)
	}

	if err := manifest.Save(s.Requirements, kept); err != nil {
		return "", &ManifestError{Path: s.Requirements, Err: err}
	}
	return s.Requirements, nil
}

// InstallPackage installs a single package ad hoc, independent of the
// requirements file content. A failure propagates as-is: this is an
// explicit, caller-driven action with no partial-failure policy.
func (s *Synchronizer) InstallPackage(name, version string) error {
	if s.noRequirements() {
		return nil
	}
	spec := manifest.Entry{Name: name, Version: version}.Spec()
	if err := s.Pip.Install(spec); err != nil {
		return &InstallError{Spec: spec, Err: err}
	}
	return nil
}
