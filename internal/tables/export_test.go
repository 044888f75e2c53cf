package tables

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recidcli/internal/config"
	"recidcli/internal/dataprocessing"
	"recidcli/internal/exporter"
)

func setupBuilder(t *testing.T) (*Builder, *config.Paths) {
	t.Helper()
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	return NewBuilder(slog.Default(), config.DefaultPipeline(), paths), paths
}

func writeTidy(t *testing.T, paths *config.Paths, name string, headers []string, rows [][]string) {
	t.Helper()
	w := exporter.NewCSVWriter(slog.Default())
	require.NoError(t, w.WriteSimpleCSV(paths.TidyPath(name), headers, rows))
}

func seedTidyFiles(t *testing.T, paths *config.Paths) {
	t.Helper()

	writeTidy(t, paths, config.TidyProsecutionPeriodType,
		dataprocessing.PeriodTypeHeaders,
		dataprocessing.PeriodTypeRows([]dataprocessing.PeriodTypeRecord{
			{Crime: "절도", RecidType: dataprocessing.RecidSameType, Period: "within_1m", Count: 60},
			{Crime: "절도", RecidType: dataprocessing.RecidSameType, Period: "over_3y", Count: 40},
			{Crime: "사기", RecidType: dataprocessing.RecidDifferentType, Period: "within_1y", Count: 10},
		}))

	writeTidy(t, paths, config.TidyKosisPriorConvictions,
		dataprocessing.PriorConvictionHeaders,
		dataprocessing.PriorConvictionRows([]dataprocessing.PriorConvictionRecord{
			overallTotal(2023, dataprocessing.GroupNoPrior, dataprocessing.DetailSubtotal, 400),
			overallTotal(2023, dataprocessing.GroupPrior, dataprocessing.DetailSubtotal, 600),
		}))

	writeTidy(t, paths, config.TidyPoliceEducation,
		dataprocessing.EducationHeaders,
		dataprocessing.EducationRows([]dataprocessing.EducationRecord{
			{CrimeMajor: "강력범죄", CrimeMinor: "살인", Education: dataprocessing.EduHighSchool, Count: 70},
			{CrimeMajor: "강력범죄", CrimeMinor: "살인", Education: dataprocessing.EduCollege, Count: 30},
		}))

	writeTidy(t, paths, config.TidyWorldRecidivism,
		dataprocessing.WorldRateHeaders,
		dataprocessing.WorldRateRows([]dataprocessing.WorldRateRecord{
			worldRate("France", 1, 32, dataprocessing.RateReimprisonment, "2010"),
			worldRate("France", 5, 57, dataprocessing.RateReimprisonment, "2010"),
		}))

	writeTidy(t, paths, config.TidyEnaraReimprisonment,
		dataprocessing.EnaraHeaders,
		dataprocessing.EnaraRows([]dataprocessing.EnaraRecord{
			{Metric: "재복역기간3년이내_전체", Year: 2019, Value: 26.6},
			{Metric: "재복역기간3년이내_전체", Year: 2020, Value: 25.2},
		}))
}

func TestBuilderRun(t *testing.T) {
	b, paths := setupBuilder(t)
	seedTidyFiles(t, paths)

	require.NoError(t, b.Run(context.Background()))

	for _, name := range []string{
		config.TablePriorShare,
		config.TablePeriodDist,
		config.TableEducationBucket,
		config.TableCountryFollowup,
		config.TableDomesticTrend,
	} {
		info, err := os.Stat(paths.TablePath(name))
		require.NoError(t, err, "table %s should exist", name)
		assert.Greater(t, info.Size(), int64(0))
	}

	data, err := os.ReadFile(paths.TablePath(config.TablePriorShare))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "2023,no_prior,400,40.0")
	assert.Contains(t, content, "2023,prior,600,60.0")

	data, err = os.ReadFile(paths.TablePath(config.TableCountryFollowup))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "France,32.00,,,,57.00")
}

func TestBuilderRun_Deterministic(t *testing.T) {
	b, paths := setupBuilder(t)
	seedTidyFiles(t, paths)

	require.NoError(t, b.Run(context.Background()))
	first := map[string][]byte{}
	entries, err := os.ReadDir(paths.OutputsDir)
	require.NoError(t, err)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(paths.OutputsDir, e.Name()))
		require.NoError(t, err)
		first[e.Name()] = data
	}
	require.NotEmpty(t, first)

	require.NoError(t, b.Run(context.Background()))
	for name, want := range first {
		got, err := os.ReadFile(filepath.Join(paths.OutputsDir, name))
		require.NoError(t, err)
		assert.Equal(t, want, got, "rerun changed %s", name)
	}
}

func TestBuilderRun_PartialInputs(t *testing.T) {
	b, paths := setupBuilder(t)

	// Only the e-nara tidy file is present; the other tables skip.
	writeTidy(t, paths, config.TidyEnaraReimprisonment,
		dataprocessing.EnaraHeaders,
		dataprocessing.EnaraRows([]dataprocessing.EnaraRecord{
			{Metric: "재복역기간3년이내_전체", Year: 2020, Value: 25.2},
		}))

	require.NoError(t, b.Run(context.Background()))

	_, err := os.Stat(paths.TablePath(config.TableDomesticTrend))
	assert.NoError(t, err)
	_, err = os.Stat(paths.TablePath(config.TablePriorShare))
	assert.True(t, os.IsNotExist(err))
}

func TestBuilderRun_NoInputs(t *testing.T) {
	b, _ := setupBuilder(t)

	err := b.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no summary tables")
}
