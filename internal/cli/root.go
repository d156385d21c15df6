package cli

import (
	"io"
	"log/slog"

	"github.com/farmstand/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds all global flags for the root command.
type RootOptions struct {
	Verbose bool
}

// NewRootCmd creates the root command with dependency injection. v carries
// flag bindings into config.Load.
func NewRootCmd(logger *slog.Logger, levelVar *slog.LevelVar, v *viper.Viper, stdout io.Writer) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "farmstand",
		Short:         "Farm stand products catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.Verbose {
				levelVar.Set(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging (debug level)")

	load := func() *config.Config { return config.Load(v) }

	cmd.AddCommand(
		newServeCmd(logger, v, load),
		newMigrateCmd(logger, load),
		newSeedCmd(logger, load, stdout),
	)
	return cmd
}
