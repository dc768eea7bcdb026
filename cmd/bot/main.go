package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Nessyi/pumpkin-management/internal/app"
	"github.com/Nessyi/pumpkin-management/internal/config"
	"github.com/Nessyi/pumpkin-management/internal/constants"
	"github.com/Nessyi/pumpkin-management/internal/platform/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(cfg, "bot.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Pumpkin management bot starting...",
		slog.String("version", cfg.Version),
		slog.String("log_level", cfg.Logging.Level),
		slog.String("prefix", cfg.Bot.Prefix),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), constants.AppTimeout.Build)
	runtime, err := app.BuildRuntime(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", slog.Any("error", err))
		os.Exit(1)
	}
	defer runtime.Close()

	if err := runtime.Run(context.Background()); err != nil {
		logger.Error("Bot stopped with error", slog.Any("error", err))
		runtime.Close()
		os.Exit(1)
	}
}
