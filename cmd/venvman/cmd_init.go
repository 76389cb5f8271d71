package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Plyrolith/venvman/internal/project"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or verify the virtual environment",
		RunE:  runInit,
	}
	cmd.Flags().Bool("save-config", false, "Write venvman.yaml with the resolved settings")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	env, err := reconcileEnv(ctx, newLogger(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Virtual environment ready at %s\n", env.Root)

	if save, _ := cmd.Flags().GetBool("save-config"); save {
		if err := saveConfig(ctx); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Config written to %s\n", ctx.ConfigPath)
	}
	return nil
}

// saveConfig persists the resolved settings as venvman.yaml. Paths are
// stored relative to the project root; a venv outside the root cannot be
// expressed in the config.
func saveConfig(ctx *project.Context) error {
	cfg := &project.Config{Version: 1, Python: ctx.Python}

	venvRel, err := relInsideRoot(ctx.Root, ctx.VenvDir)
	if err != nil {
		return fmt.Errorf("cannot save config: venv %s is outside project root", ctx.VenvDir)
	}
	cfg.Venv = venvRel

	if ctx.RequirementsPath != "" {
		reqRel, err := relInsideRoot(ctx.Root, ctx.RequirementsPath)
		if err != nil {
			return fmt.Errorf("cannot save config: requirements %s is outside project root", ctx.RequirementsPath)
		}
		cfg.Requirements = reqRel
	}

	return project.SaveConfig(ctx.ConfigPath, cfg)
}

func relInsideRoot(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root")
	}
	return rel, nil
}
