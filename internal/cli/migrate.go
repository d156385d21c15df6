package cli

import (
	"log/slog"

	"github.com/farmstand/internal/config"
	"github.com/farmstand/internal/infrastructure/dynamo"
	"github.com/spf13/cobra"
)

func newMigrateCmd(logger *slog.Logger, load func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the DynamoDB tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := load()
			client, err := dynamo.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := dynamo.Bootstrap(cmd.Context(), client, cfg.DynamoTables); err != nil {
				return err
			}
			logger.Info("tables ready", "products", cfg.DynamoTables.Products)
			return nil
		},
	}
}
