package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Plyrolith/venvman/internal/manifest"
	"github.com/Plyrolith/venvman/internal/pip"
	"github.com/Plyrolith/venvman/internal/ui"
	"github.com/Plyrolith/venvman/internal/venv"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show requirements vs installed packages",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type packageStatus struct {
	Name      string `json:"name"`
	Pinned    string `json:"pinned,omitempty"`
	Installed string `json:"installed,omitempty"`
	State     string `json:"state"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	// Status is read-only: check the environment without rebuilding it.
	rec := &venv.Reconciler{Python: ctx.Python, Log: newLogger(cmd)}
	env := rec.Check(ctx.VenvDir)

	out := cmd.OutOrStdout()
	if !asJSON {
		state := "valid"
		if !env.Valid {
			state = "missing or invalid (run venvman init)"
		}
		_, _ = fmt.Fprintf(out, "Environment: %s (%s)\n", env.Root, state)
	}

	if ctx.RequirementsPath == "" {
		if !asJSON {
			_, _ = fmt.Fprintln(out, "No requirements file configured.")
			return nil
		}
		return json.NewEncoder(out).Encode([]packageStatus{})
	}

	entries, err := manifest.Load(ctx.RequirementsPath)
	if err != nil {
		return err
	}

	installed := map[string]string{}
	if env.Valid {
		client := pip.New(env.Pip)
		client.Env = env.Environ(os.Environ())
		client.Log = newLogger(cmd)
		freeze, err := client.Freeze()
		if err != nil {
			return err
		}
		installed = parseFreeze(freeze)
	}

	statuses := make([]packageStatus, 0, len(entries))
	for _, e := range entries {
		statuses = append(statuses, collectPackageStatus(e, installed))
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "PACKAGE", "PINNED", "INSTALLED", "STATE")
	for _, s := range statuses {
		tbl.Row(s.Name, orDash(s.Pinned), orDash(s.Installed), s.State)
	}
	return tbl.Flush()
}

// parseFreeze maps package names to installed versions. Unlike the sync
// heuristic this is exact parsing, used for display only.
func parseFreeze(freeze string) map[string]string {
	m := make(map[string]string)
	for _, line := range strings.Split(freeze, "\n") {
		if e, ok := manifest.ParseLine(line); ok {
			m[e.Name] = e.Version
		}
	}
	return m
}

func collectPackageStatus(e manifest.Entry, installed map[string]string) packageStatus {
	s := packageStatus{Name: e.Name, Pinned: e.Version}
	version, ok := installed[e.Name]
	if !ok {
		s.State = "missing"
		return s
	}
	s.Installed = version
	switch {
	case e.Version == "" || e.Version == version:
		s.State = "ok"
	default:
		s.State = "pin mismatch"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
