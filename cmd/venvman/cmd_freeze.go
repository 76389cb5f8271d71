package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFreezeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freeze",
		Short: "Pin installed versions back into the requirements file",
		RunE:  runFreeze,
	}
}

func runFreeze(cmd *cobra.Command, _ []string) error {
	s, ctx, err := newSynchronizer(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if ctx.RequirementsPath == "" {
		_, _ = fmt.Fprintln(out, "No requirements file configured; nothing to freeze.")
		return nil
	}

	path, err := s.Freeze()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Requirements written to %s\n", path)
	return nil
}
