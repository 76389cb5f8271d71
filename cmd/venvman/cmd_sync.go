package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Install requirements missing from the environment",
		RunE:  runSync,
	}
}

func runSync(cmd *cobra.Command, _ []string) error {
	s, ctx, err := newSynchronizer(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if ctx.RequirementsPath == "" {
		_, _ = fmt.Fprintln(out, "No requirements file configured; nothing to sync.")
		return nil
	}

	installed, err := s.InstallMissing()
	if err != nil {
		return err
	}

	if len(installed) == 0 {
		_, _ = fmt.Fprintln(out, "All dependencies satisfied.")
		return nil
	}
	for _, spec := range installed {
		_, _ = fmt.Fprintf(out, "Installed %s\n", spec)
	}
	_, _ = fmt.Fprintf(out, "Installed %d package(s).\n", len(installed))
	return nil
}
