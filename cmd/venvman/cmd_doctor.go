package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Plyrolith/venvman/internal/manifest"
	"github.com/Plyrolith/venvman/internal/pip"
	"github.com/Plyrolith/venvman/internal/venv"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose interpreter and environment issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	ctx, err := loadProject(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Checking base interpreter... NOT FOUND\n  %v\n", err)
		return fmt.Errorf("doctor checks failed")
	}

	_, _ = fmt.Fprintf(out, "Checking base interpreter... %s\n", ctx.Python)

	_, _ = fmt.Fprint(out, "Checking interpreter version... ")
	if versionOut, verr := exec.Command(ctx.Python, "--version").CombinedOutput(); verr != nil {
		_, _ = fmt.Fprintln(out, "ERROR")
		ok = false
	} else {
		_, _ = fmt.Fprintln(out, strings.TrimSpace(string(versionOut)))
	}

	_, _ = fmt.Fprint(out, "Checking venv module... ")
	if exec.Command(ctx.Python, "-m", "venv", "--help").Run() != nil {
		_, _ = fmt.Fprintln(out, "NOT AVAILABLE")
		_, _ = fmt.Fprintln(out, "  The interpreter cannot build environments (venv module missing).")
		ok = false
	} else {
		_, _ = fmt.Fprintln(out, "OK")
	}

	rec := &venv.Reconciler{Python: ctx.Python, Log: newLogger(cmd)}
	env := rec.Check(ctx.VenvDir)
	_, _ = fmt.Fprintf(out, "Checking environment at %s... ", env.Root)
	if env.Valid {
		_, _ = fmt.Fprintln(out, "valid")
		client := pip.New(env.Pip)
		client.Log = newLogger(cmd)
		_, _ = fmt.Fprint(out, "Checking pip... ")
		if pipVersion, perr := client.Version(); perr != nil {
			_, _ = fmt.Fprintln(out, "ERROR")
			ok = false
		} else {
			_, _ = fmt.Fprintln(out, pipVersion)
		}
	} else {
		_, _ = fmt.Fprintln(out, "missing or invalid (venvman init will rebuild it)")
	}

	if ctx.RequirementsPath == "" {
		_, _ = fmt.Fprintln(out, "No requirements file configured (sync operations are no-ops)")
	} else {
		_, _ = fmt.Fprintf(out, "Checking requirements at %s... ", ctx.RequirementsPath)
		if entries, rerr := manifest.Load(ctx.RequirementsPath); rerr != nil {
			_, _ = fmt.Fprintln(out, "UNREADABLE")
			ok = false
		} else {
			_, _ = fmt.Fprintf(out, "%d entries\n", len(entries))
		}
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
