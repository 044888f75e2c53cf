package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"recidcli/internal/charts"
	"recidcli/internal/config"
	"recidcli/internal/infrastructure"
)

func main() {
	base := flag.String("base", "", "base directory for data and outputs (defaults to the executable directory)")
	processedDir := flag.String("processed", "", "override the processed data directory")
	figuresDir := flag.String("figures", "", "override the figures directory")
	flag.Parse()

	paths, err := resolvePaths(*base)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if *processedDir != "" {
		paths.ProcessedDir = *processedDir
	}
	if *figuresDir != "" {
		paths.FiguresDir = *figuresDir
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.LogPath("visualize.log"),
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
	logger.InfoContext(ctx, "starting visualization stage",
		slog.String("processed_dir", paths.ProcessedDir),
		slog.String("figures_dir", paths.FiguresDir))

	if err := charts.NewRenderer(logger, cfg.Pipeline, paths).Run(ctx); err != nil {
		logger.ErrorContext(ctx, "visualization failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// resolvePaths builds the path set from the -base flag or the
// executable location.
func resolvePaths(base string) (*config.Paths, error) {
	if base != "" {
		return config.NewPaths(base), nil
	}
	return config.GetPaths()
}
