package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "run -- <command...>",
		Short:              "Run a command inside the virtual environment",
		DisableFlagParsing: true,
		RunE:               runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: venvman run -- <command...>")
	}

	// Strip leading "--" if present.
	if args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("no command specified after --")
	}

	// Flag parsing is disabled on this command; read the persistent
	// flags from the root command instead.
	ctx, err := loadProject(cmd.Root())
	if err != nil {
		return err
	}
	env, err := reconcileEnv(ctx, newLogger(cmd.Root()))
	if err != nil {
		return err
	}

	c := exec.Command(args[0], args[1:]...)
	c.Dir = ctx.Root
	c.Env = env.Environ(os.Environ())
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
