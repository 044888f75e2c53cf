package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"recidcli/internal/config"
	"recidcli/internal/exporter"
	"recidcli/internal/files"
)

// Preprocessor runs the first pipeline stage: it cleans every raw
// source and writes the tidy intermediate files.
type Preprocessor struct {
	logger    *slog.Logger
	paths     *config.Paths
	csv       *exporter.CSVWriter
	discovery *files.Discovery
}

// NewPreprocessor creates a preprocessor over the configured paths
func NewPreprocessor(logger *slog.Logger, paths *config.Paths) *Preprocessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preprocessor{
		logger:    logger,
		paths:     paths,
		csv:       exporter.NewCSVWriter(logger),
		discovery: files.NewDiscovery(paths.RawDir),
	}
}

// step cleans one raw source and writes its tidy file, reporting the
// stats for the run log.
type step struct {
	source string
	tidy   string
	run    func(rawPath, tidyPath string, csv *exporter.CSVWriter) (CleanStats, error)
}

// Run executes the preprocessing stage. Every source is required: a
// missing or unreadable file, or a source yielding zero valid rows,
// fails the run.
func (p *Preprocessor) Run(ctx context.Context) error {
	if err := p.paths.EnsureDirectories(); err != nil {
		return err
	}

	found, err := p.discovery.FindSourceFiles(p.paths.RawDir)
	if err != nil {
		return fmt.Errorf("raw directory scan: %w", err)
	}
	p.logger.InfoContext(ctx, "scanning raw sources",
		slog.String("dir", p.paths.RawDir),
		slog.Int("files_found", len(found)))

	steps := []step{
		{config.RawProsecutionPeriodType, config.TidyProsecutionPeriodType, runPeriodType},
		{config.RawKosisPriorConvictions, config.TidyKosisPriorConvictions, runPriorConvictions},
		{config.RawPoliceEducation, config.TidyPoliceEducation, runEducation},
		{config.RawPolicePriorRecord, config.TidyPolicePriorRecord, runPriorRecord},
		{config.RawWorldRecidivism, config.TidyWorldRecidivism, runWorldRates},
		{config.RawEnaraReimprisonment, config.TidyEnaraReimprisonment, runEnara},
	}

	for _, s := range steps {
		rawPath := p.paths.RawPath(s.source)
		if !p.discovery.Exists(rawPath) {
			return fmt.Errorf("required source %s not found in %s", s.source, p.paths.RawDir)
		}

		stats, err := s.run(rawPath, p.paths.TidyPath(s.tidy), p.csv)
		if err != nil {
			return fmt.Errorf("source %s: %w", s.source, err)
		}
		if stats.Rows == 0 {
			return fmt.Errorf("source %s produced no valid rows", s.source)
		}

		p.logger.InfoContext(ctx, "tidy file written",
			slog.String("source", s.source),
			slog.String("tidy", s.tidy),
			slog.Int("rows", stats.Rows),
			slog.Int("dropped", stats.Dropped))
	}

	p.logger.InfoContext(ctx, "preprocessing complete",
		slog.Int("sources", len(steps)),
		slog.String("processed_dir", p.paths.ProcessedDir))
	return nil
}

func runPeriodType(rawPath, tidyPath string, csv *exporter.CSVWriter) (CleanStats, error) {
	records, stats, err := CleanPeriodType(rawPath)
	if err != nil {
		return stats, err
	}
	return stats, csv.WriteSimpleCSV(tidyPath, PeriodTypeHeaders, PeriodTypeRows(records))
}

func runPriorConvictions(rawPath, tidyPath string, csv *exporter.CSVWriter) (CleanStats, error) {
	records, stats, err := CleanPriorConvictions(rawPath)
	if err != nil {
		return stats, err
	}
	return stats, csv.WriteSimpleCSV(tidyPath, PriorConvictionHeaders, PriorConvictionRows(records))
}

func runEducation(rawPath, tidyPath string, csv *exporter.CSVWriter) (CleanStats, error) {
	records, stats, err := CleanEducation(rawPath)
	if err != nil {
		return stats, err
	}
	return stats, csv.WriteSimpleCSV(tidyPath, EducationHeaders, EducationRows(records))
}

func runPriorRecord(rawPath, tidyPath string, csv *exporter.CSVWriter) (CleanStats, error) {
	records, stats, err := CleanPriorRecord(rawPath)
	if err != nil {
		return stats, err
	}
	return stats, csv.WriteSimpleCSV(tidyPath, PriorRecordHeaders, PriorRecordRows(records))
}

func runWorldRates(rawPath, tidyPath string, csv *exporter.CSVWriter) (CleanStats, error) {
	records, stats, err := CleanWorldRates(rawPath)
	if err != nil {
		return stats, err
	}
	return stats, csv.WriteSimpleCSV(tidyPath, WorldRateHeaders, WorldRateRows(records))
}

func runEnara(rawPath, tidyPath string, csv *exporter.CSVWriter) (CleanStats, error) {
	records, stats, err := CleanEnara(rawPath)
	if err != nil {
		return stats, err
	}
	return stats, csv.WriteSimpleCSV(tidyPath, EnaraHeaders, EnaraRows(records))
}
