package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"recidcli/internal/charts"
	"recidcli/internal/config"
	"recidcli/internal/dataprocessing"
	"recidcli/internal/infrastructure"
	"recidcli/internal/tables"
)

func main() {
	base := flag.String("base", "", "base directory for data and outputs (defaults to the executable directory)")
	rawDir := flag.String("raw", "", "override the raw data directory")
	flag.Parse()

	var paths *config.Paths
	var err error
	if *base != "" {
		paths = config.NewPaths(*base)
	} else {
		paths, err = config.GetPaths()
		if err != nil {
			slog.Error("Failed to initialize paths", "error", err)
			os.Exit(1)
		}
	}
	if *rawDir != "" {
		paths.RawDir = *rawDir
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.LogPath("pipeline.log"),
			},
			Pipeline: config.DefaultPipeline(),
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger.InfoContext(ctx, "starting full pipeline run",
		slog.String("base_dir", paths.BaseDir),
		slog.String("raw_dir", paths.RawDir))

	// Stages run strictly forward; a fatal stage stops the run
	if err := dataprocessing.NewPreprocessor(logger, paths).Run(ctx); err != nil {
		logger.ErrorContext(ctx, "preprocessing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := tables.NewBuilder(logger, cfg.Pipeline, paths).Run(ctx); err != nil {
		logger.ErrorContext(ctx, "table building failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := charts.NewRenderer(logger, cfg.Pipeline, paths).Run(ctx); err != nil {
		logger.ErrorContext(ctx, "visualization failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "pipeline run complete",
		slog.String("outputs_dir", paths.OutputsDir),
		slog.String("figures_dir", paths.FiguresDir))
}
