package main

import (
	"github.com/Plyrolith/venvman/internal/project"
	"github.com/Plyrolith/venvman/internal/venv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "venvman",
		Short:   "Virtual environment and requirements manager",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Project root directory")
	cmd.PersistentFlags().String("venv", "", "Virtual environment directory (default: .venv)")
	cmd.PersistentFlags().String("requirements", "", "Requirements file (default: requirements.txt if present)")
	cmd.PersistentFlags().String("python", "", "Base interpreter executable (default: python3 from PATH)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	cmd.AddCommand(
		newInitCmd(),
		newSyncCmd(),
		newUpgradeCmd(),
		newFreezeCmd(),
		newAddCmd(),
		newStatusCmd(),
		newDoctorCmd(),
		newRunCmd(),
	)

	return cmd
}

// loadProject resolves the project context from the persistent flags.
func loadProject(cmd *cobra.Command) (*project.Context, error) {
	root, _ := cmd.Flags().GetString("root")
	venvDir, _ := cmd.Flags().GetString("venv")
	requirements, _ := cmd.Flags().GetString("requirements")
	python, _ := cmd.Flags().GetString("python")
	return project.Load(root, project.Overrides{
		Venv:         venvDir,
		Requirements: requirements,
		Python:       python,
	})
}

// newLogger builds the logger library calls report through. Output goes to
// the command's error stream so stdout stays parseable.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// reconcileEnv verifies or rebuilds the project's environment.
func reconcileEnv(ctx *project.Context, log *logrus.Logger) (*venv.Env, error) {
	rec := &venv.Reconciler{Python: ctx.Python, Log: log}
	return rec.Reconcile(ctx.VenvDir)
}

// newSynchronizer loads the project, reconciles its environment and binds
// a synchronizer to it. Shared by every sync-style command.
func newSynchronizer(cmd *cobra.Command) (*venv.Synchronizer, *project.Context, error) {
	ctx, err := loadProject(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := newLogger(cmd)
	env, err := reconcileEnv(ctx, log)
	if err != nil {
		return nil, nil, err
	}
	s := venv.NewSynchronizer(env, ctx.RequirementsPath, log)
	s.Pip.Out = cmd.OutOrStdout()
	return s, ctx, nil
}
