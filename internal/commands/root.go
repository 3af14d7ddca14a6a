package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/qbtypes/internal/buildinfo"
	"github.com/cleared-dev/qbtypes/internal/config"
)

// globals holds state shared by every subcommand, filled in before any of
// them runs.
type globals struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "qbtypes",
		Short:   "Check accounting platform records before they are sent",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log decisions at debug level")

	rootCmd.AddCommand(newKindsCommand(g))
	rootCmd.AddCommand(newCheckCommand(g))
	rootCmd.AddCommand(newRefCommand(g))
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

func (g *globals) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default()
	default:
		return err
	}
	g.cfg = cfg

	g.log = logrus.New()
	g.log.SetOutput(cmd.ErrOrStderr())
	g.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if g.verbose {
		level = logrus.DebugLevel
	}
	g.log.SetLevel(level)
	return nil
}
