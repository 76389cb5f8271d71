package main

import (
	"fmt"
	"os"

	"github.com/Plyrolith/venvman/internal/manifest"
	"github.com/Plyrolith/venvman/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [package]",
		Short: "Install a single package ad hoc",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAdd,
	}
	cmd.Flags().String("pin", "", "Exact version to install")
	cmd.Flags().Bool("save", false, "Append the package to the requirements file")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, ctx, err := newSynchronizer(cmd)
	if err != nil {
		return err
	}
	save, _ := cmd.Flags().GetBool("save")

	out := cmd.OutOrStdout()
	if ctx.RequirementsPath == "" {
		_, _ = fmt.Fprintln(out, "No requirements file configured; nothing to do.")
		return nil
	}

	var entries []manifest.Entry
	if len(args) == 1 {
		pin, _ := cmd.Flags().GetString("pin")
		entries = append(entries, manifest.Entry{Name: args[0], Version: pin})
	} else {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("package name required (interactive mode needs a terminal)")
		}
		entries, err = collectPackagesInteractive()
		if err != nil {
			return err
		}
	}

	progress := ui.NewProgress(cmd.ErrOrStderr(), len(entries))
	for _, e := range entries {
		// An explicit single-package install has no partial-failure
		// tolerance: the first failure aborts.
		if err := s.InstallPackage(e.Name, e.Version); err != nil {
			return err
		}
		if save {
			if err := manifest.Append(ctx.RequirementsPath, e); err != nil {
				return err
			}
		}
		progress.Step(e.Spec() + " installed")
	}
	return nil
}
