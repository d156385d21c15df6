package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/farmstand/internal/cli"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	programLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, reading from environment")
	}

	if err := run(logger, programLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, programLevel *slog.LevelVar) error {
	// Handle signal cancellation; serve shuts down gracefully on it.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := cli.NewRootCmd(logger, programLevel, viper.New(), os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
