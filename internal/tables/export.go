package tables

import (
	"context"
	"fmt"
	"log/slog"

	"recidcli/internal/config"
	"recidcli/internal/dataprocessing"
	"recidcli/internal/exporter"
)

// Table column contracts for the summary CSV files
var (
	PriorShareHeaders      = []string{"year", "category", "count", "share_pct"}
	PeriodDistHeaders      = []string{"recid_type", "period", "count", "share_pct"}
	EducationBucketHeaders = []string{"bucket", "count", "share_pct"}
	CountryFollowupHeaders = []string{"country", "rate_1y", "rate_2y", "rate_3y", "rate_4y", "rate_5y"}
	DomesticTrendHeaders   = []string{"metric", "year", "value"}
)

// Builder runs the second pipeline stage: it reads the tidy files and
// writes the summary tables.
type Builder struct {
	logger *slog.Logger
	cfg    config.PipelineConfig
	paths  *config.Paths
	csv    *exporter.CSVWriter
}

// NewBuilder creates a table builder over the configured paths
func NewBuilder(logger *slog.Logger, cfg config.PipelineConfig, paths *config.Paths) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		logger: logger,
		cfg:    cfg,
		paths:  paths,
		csv:    exporter.NewCSVWriter(logger),
	}
}

// Run executes the table-building stage. A tidy input that is missing
// or unreadable skips its table with a warning; the stage fails only
// when no table at all could be built.
func (b *Builder) Run(ctx context.Context) error {
	if err := b.paths.EnsureDirectories(); err != nil {
		return err
	}

	built := 0
	tables := []struct {
		name string
		run  func() error
	}{
		{config.TablePriorShare, b.buildPriorShare},
		{config.TablePeriodDist, b.buildPeriodDistribution},
		{config.TableEducationBucket, b.buildEducationBuckets},
		{config.TableCountryFollowup, b.buildCountryFollowup},
		{config.TableDomesticTrend, b.buildDomesticTrend},
	}

	for _, t := range tables {
		if err := t.run(); err != nil {
			b.logger.WarnContext(ctx, "skipping summary table",
				slog.String("table", t.name),
				slog.String("error", err.Error()))
			continue
		}
		b.logger.InfoContext(ctx, "summary table written", slog.String("table", t.name))
		built++
	}

	if built == 0 {
		return fmt.Errorf("no summary tables could be built from %s", b.paths.ProcessedDir)
	}
	b.logger.InfoContext(ctx, "table building complete",
		slog.Int("tables", built),
		slog.String("outputs_dir", b.paths.OutputsDir))
	return nil
}

func (b *Builder) buildPriorShare() error {
	records, err := dataprocessing.LoadPriorConvictions(b.paths.TidyPath(config.TidyKosisPriorConvictions))
	if err != nil {
		return err
	}

	rows := BuildPriorShare(records, b.cfg.PriorConvictionYear)
	if len(rows) == 0 {
		return fmt.Errorf("no overall-total rows for year %d", b.cfg.PriorConvictionYear)
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			exporter.FormatYear(r.Year), r.Category,
			exporter.FormatInt(r.Count), exporter.FormatPercent(r.SharePct),
		})
	}
	return b.csv.WriteSimpleCSV(b.paths.TablePath(config.TablePriorShare), PriorShareHeaders, out)
}

func (b *Builder) buildPeriodDistribution() error {
	records, err := dataprocessing.LoadPeriodType(b.paths.TidyPath(config.TidyProsecutionPeriodType))
	if err != nil {
		return err
	}

	rows := BuildPeriodDistribution(records)
	if len(rows) == 0 {
		return fmt.Errorf("no period/type observations")
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.RecidType, r.Period,
			exporter.FormatInt(r.Count), exporter.FormatPercent(r.SharePct),
		})
	}
	return b.csv.WriteSimpleCSV(b.paths.TablePath(config.TablePeriodDist), PeriodDistHeaders, out)
}

func (b *Builder) buildEducationBuckets() error {
	records, err := dataprocessing.LoadEducation(b.paths.TidyPath(config.TidyPoliceEducation))
	if err != nil {
		return err
	}

	rows := BuildEducationBuckets(records)
	if len(rows) == 0 {
		return fmt.Errorf("no education observations")
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Bucket, exporter.FormatInt(r.Count), exporter.FormatPercent(r.SharePct),
		})
	}
	return b.csv.WriteSimpleCSV(b.paths.TablePath(config.TableEducationBucket), EducationBucketHeaders, out)
}

func (b *Builder) buildCountryFollowup() error {
	records, err := dataprocessing.LoadWorldRates(b.paths.TidyPath(config.TidyWorldRecidivism))
	if err != nil {
		return err
	}

	rows := BuildCountryFollowup(records, b.cfg.MinFollowupWindows)
	if len(rows) == 0 {
		return fmt.Errorf("no country covers %d follow-up windows", b.cfg.MinFollowupWindows)
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		record := []string{r.Country}
		for _, rate := range r.Rates {
			if rate == nil {
				record = append(record, "")
			} else {
				record = append(record, exporter.FormatRate(*rate))
			}
		}
		out = append(out, record)
	}
	return b.csv.WriteSimpleCSV(b.paths.TablePath(config.TableCountryFollowup), CountryFollowupHeaders, out)
}

func (b *Builder) buildDomesticTrend() error {
	records, err := dataprocessing.LoadEnara(b.paths.TidyPath(config.TidyEnaraReimprisonment))
	if err != nil {
		return err
	}

	rows := BuildDomesticTrend(records)
	if len(rows) == 0 {
		return fmt.Errorf("no rows matching %s", MetricReimprisonWithin3y)
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Metric, exporter.FormatYear(r.Year), exporter.FormatRate(r.Value),
		})
	}
	return b.csv.WriteSimpleCSV(b.paths.TablePath(config.TableDomesticTrend), DomesticTrendHeaders, out)
}
