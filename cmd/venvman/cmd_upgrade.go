package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade all requirements to their latest releases",
		RunE:  runUpgrade,
	}
}

func runUpgrade(cmd *cobra.Command, _ []string) error {
	s, ctx, err := newSynchronizer(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if ctx.RequirementsPath == "" {
		_, _ = fmt.Fprintln(out, "No requirements file configured; nothing to upgrade.")
		return nil
	}

	processed, err := s.UpgradeAll()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Processed %d package(s).\n", len(processed))
	return nil
}
