package charts

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recidcli/internal/config"
	"recidcli/internal/dataprocessing"
	"recidcli/internal/exporter"
)

// pngMagic is the fixed 8-byte PNG file signature
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

func testPipelineConfig() config.PipelineConfig {
	return config.PipelineConfig{
		PriorConvictionYear: 2023,
		EducationYear:       2020,
		TopCrimes:           12,
		MinFollowupWindows:  2,
		FocusCountries:      []string{"France", "South Korea"},
	}
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
			{Crime: "폭행", RecidType: dataprocessing.RecidDifferentType, Period: "within_6m", Count: 25},
		}))

	writeTidy(t, paths, config.TidyKosisPriorConvictions,
		dataprocessing.PriorConvictionHeaders,
		dataprocessing.PriorConvictionRows([]dataprocessing.PriorConvictionRecord{
			{Year: 2023, CrimeLvl1: dataprocessing.CrimeTotal, CrimeLvl2: dataprocessing.CrimeSubtotal,
				CrimeLvl3: dataprocessing.CrimeSubtotal, Group: dataprocessing.GroupNoPrior,
				Detail: dataprocessing.DetailSubtotal, Count: 400},
			{Year: 2023, CrimeLvl1: dataprocessing.CrimeTotal, CrimeLvl2: dataprocessing.CrimeSubtotal,
				CrimeLvl3: dataprocessing.CrimeSubtotal, Group: dataprocessing.GroupPrior,
				Detail: dataprocessing.DetailSubtotal, Count: 600},
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
			{Country: "France", FollowupYears: 1, RatePct: 32, Type: dataprocessing.RateReimprisonment, Period: "2010"},
			{Country: "France", FollowupYears: 5, RatePct: 57, Type: dataprocessing.RateReimprisonment, Period: "2010"},
			{Country: "South Korea", FollowupYears: 1, RatePct: 12, Type: dataprocessing.RateReimprisonment, Period: "2019"},
			{Country: "South Korea", FollowupYears: 3, RatePct: 25, Type: dataprocessing.RateReimprisonment, Period: "2019"},
		}))

	writeTidy(t, paths, config.TidyEnaraReimprisonment,
		dataprocessing.EnaraHeaders,
		dataprocessing.EnaraRows([]dataprocessing.EnaraRecord{
			{Metric: "재복역기간3년이내_전체", Year: 2018, Value: 26.4},
			{Metric: "재복역기간3년이내_전체", Year: 2019, Value: 26.6},
			{Metric: "재복역기간3년이내_전체", Year: 2020, Value: 25.2},
		}))
}

func TestRendererRun(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())
	seedTidyFiles(t, paths)

	r := NewRenderer(slog.Default(), testPipelineConfig(), paths)
	require.NoError(t, r.Run(context.Background()))

	for _, name := range []string{
		config.FigureDomesticTrend,
		config.FigurePeriodDist,
		config.FigureTopCrimes,
		config.FigurePriorShare,
		config.FigureEducationBucket,
		config.FigureWorldFollowup,
	} {
		data, err := os.ReadFile(paths.FigurePath(name))
		require.NoError(t, err, "figure %s should exist", name)
		require.Greater(t, len(data), len(pngMagic))
		assert.True(t, bytes.HasPrefix(data, pngMagic), "figure %s should be a PNG", name)
	}
}

func TestRendererRun_SkipsFiguresWithMissingInput(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	// Only the e-nara tidy file is present; one figure renders, the rest skip.
	writeTidy(t, paths, config.TidyEnaraReimprisonment,
		dataprocessing.EnaraHeaders,
		dataprocessing.EnaraRows([]dataprocessing.EnaraRecord{
			{Metric: "재복역기간3년이내_전체", Year: 2019, Value: 26.6},
			{Metric: "재복역기간3년이내_전체", Year: 2020, Value: 25.2},
		}))

	r := NewRenderer(slog.Default(), testPipelineConfig(), paths)
	require.NoError(t, r.Run(context.Background()))

	_, err := os.Stat(paths.FigurePath(config.FigureDomesticTrend))
	assert.NoError(t, err)
	_, err = os.Stat(paths.FigurePath(config.FigureTopCrimes))
	assert.True(t, os.IsNotExist(err))
}

func TestRendererRun_NoInputs(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	r := NewRenderer(slog.Default(), testPipelineConfig(), paths)
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no figures")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Same offense type", displayName(dataprocessing.RecidSameType))
	assert.Equal(t, "No prior conviction", displayName(dataprocessing.GroupNoPrior))
	assert.Equal(t, "절도", displayName("절도"), "unmapped labels pass through")
}

func TestRenderWorldFollowup_FocusFilter(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	records := []dataprocessing.WorldRateRecord{
		{Country: "France", FollowupYears: 1, RatePct: 32, Type: dataprocessing.RateReimprisonment, Period: "2010"},
		{Country: "France", FollowupYears: 2, RatePct: 40, Type: dataprocessing.RateReimprisonment, Period: "2010"},
		{Country: "Norway", FollowupYears: 2, RatePct: 20, Type: dataprocessing.RateReimprisonment, Period: "2018"},
	}

	out := filepath.Join(paths.FiguresDir, "world.png")
	require.NoError(t, renderWorldFollowup(records, []string{"France"}, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}
