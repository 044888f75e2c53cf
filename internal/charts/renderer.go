package charts

import (
	"context"
	"fmt"
	"log/slog"

	"recidcli/internal/config"
	"recidcli/internal/dataprocessing"
	"recidcli/internal/tables"
)

// Renderer runs the third pipeline stage: it reads the tidy files and
// renders the figure set.
type Renderer struct {
	logger *slog.Logger
	cfg    config.PipelineConfig
	paths  *config.Paths
}

// NewRenderer creates a figure renderer over the configured paths
func NewRenderer(logger *slog.Logger, cfg config.PipelineConfig, paths *config.Paths) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger, cfg: cfg, paths: paths}
}

// Run executes the visualization stage. A figure whose input is missing
// or whose rendering fails is logged and skipped; the stage fails only
// when no figure at all could be rendered.
func (r *Renderer) Run(ctx context.Context) error {
	if err := r.paths.EnsureDirectories(); err != nil {
		return err
	}

	figures := []struct {
		name string
		run  func() error
	}{
		{config.FigureDomesticTrend, r.domesticTrend},
		{config.FigurePeriodDist, r.periodDistribution},
		{config.FigureTopCrimes, r.topCrimes},
		{config.FigurePriorShare, r.priorShare},
		{config.FigureEducationBucket, r.educationBuckets},
		{config.FigureWorldFollowup, r.worldFollowup},
	}

	rendered := 0
	for _, fig := range figures {
		if err := fig.run(); err != nil {
			r.logger.ErrorContext(ctx, "figure rendering failed",
				slog.String("figure", fig.name),
				slog.String("error", err.Error()))
			continue
		}
		r.logger.InfoContext(ctx, "figure rendered", slog.String("figure", fig.name))
		rendered++
	}

	if rendered == 0 {
		return fmt.Errorf("no figures could be rendered from %s", r.paths.ProcessedDir)
	}
	r.logger.InfoContext(ctx, "visualization complete",
		slog.Int("figures", rendered),
		slog.String("figures_dir", r.paths.FiguresDir))
	return nil
}

func (r *Renderer) domesticTrend() error {
	records, err := dataprocessing.LoadEnara(r.paths.TidyPath(config.TidyEnaraReimprisonment))
	if err != nil {
		return err
	}
	return renderDomesticTrend(records, r.paths.FigurePath(config.FigureDomesticTrend))
}

func (r *Renderer) periodDistribution() error {
	records, err := dataprocessing.LoadPeriodType(r.paths.TidyPath(config.TidyProsecutionPeriodType))
	if err != nil {
		return err
	}
	rows := tables.BuildPeriodDistribution(records)
	return renderPeriodDistribution(rows, r.paths.FigurePath(config.FigurePeriodDist))
}

func (r *Renderer) topCrimes() error {
	records, err := dataprocessing.LoadPeriodType(r.paths.TidyPath(config.TidyProsecutionPeriodType))
	if err != nil {
		return err
	}
	rows := tables.BuildTopCrimes(records, r.cfg.TopCrimes)
	return renderTopCrimes(rows, r.paths.FigurePath(config.FigureTopCrimes))
}

func (r *Renderer) priorShare() error {
	records, err := dataprocessing.LoadPriorConvictions(r.paths.TidyPath(config.TidyKosisPriorConvictions))
	if err != nil {
		return err
	}
	rows := tables.BuildPriorComposition(records, r.cfg.PriorConvictionYear)
	return renderPriorShare(rows, r.cfg.PriorConvictionYear, r.paths.FigurePath(config.FigurePriorShare))
}

func (r *Renderer) educationBuckets() error {
	records, err := dataprocessing.LoadEducation(r.paths.TidyPath(config.TidyPoliceEducation))
	if err != nil {
		return err
	}
	rows := tables.BuildEducationBuckets(records)
	return renderEducationBuckets(rows, r.cfg.EducationYear, r.paths.FigurePath(config.FigureEducationBucket))
}

func (r *Renderer) worldFollowup() error {
	records, err := dataprocessing.LoadWorldRates(r.paths.TidyPath(config.TidyWorldRecidivism))
	if err != nil {
		return err
	}
	return renderWorldFollowup(records, r.cfg.FocusCountries, r.paths.FigurePath(config.FigureWorldFollowup))
}
