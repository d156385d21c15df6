package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/farmstand/internal/config"
	"github.com/farmstand/internal/infrastructure/dynamo"
	transporthttp "github.com/farmstand/internal/transport/http"
	"github.com/farmstand/internal/view"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCmd(logger *slog.Logger, v *viper.Viper, load func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), logger, load())
		},
	}
	cmd.Flags().String("port", "", "listen port (overrides APP_PORT)")
	_ = v.BindPFlag("APP_PORT", cmd.Flags().Lookup("port"))
	return cmd
}

func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	client, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	// Creates the tables if they don't exist yet.
	if err := dynamo.Bootstrap(ctx, client, cfg.DynamoTables); err != nil {
		return fmt.Errorf("bootstrap tables: %w", err)
	}

	views, err := view.New()
	if err != nil {
		return err
	}

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		ProductRepo: dynamo.NewProductRepo(client, cfg.DynamoTables.Products),
		Views:       views,
	})
	defer router.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
