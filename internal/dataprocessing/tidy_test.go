package dataprocessing

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recidcli/internal/exporter"
)

func TestLoadPeriodType_HeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad_header.csv")

	w := exporter.NewCSVWriter(slog.Default())
	require.NoError(t, w.WriteSimpleCSV(path, []string{"crime", "type", "period", "count"}, nil))

	_, err := LoadPeriodType(path)
	assert.ErrorContains(t, err, `column 1 is "type"`)
}

func TestLoadPriorConvictions_BadRowIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad_row.csv")

	w := exporter.NewCSVWriter(slog.Default())
	rows := [][]string{{"2023", "total", "subtotal", "subtotal", "prior", "subtotal", "not-a-number"}}
	require.NoError(t, w.WriteSimpleCSV(path, PriorConvictionHeaders, rows))

	_, err := LoadPriorConvictions(path)
	assert.ErrorContains(t, err, "bad count")
}

func TestLoadPeriodType_ShortRowIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short_row.csv")

	// A truncated row, as an interrupted write would leave behind
	w := exporter.NewCSVWriter(slog.Default())
	rows := [][]string{{"절도", RecidSameType}}
	require.NoError(t, w.WriteSimpleCSV(path, PeriodTypeHeaders, rows))

	_, err := LoadPeriodType(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "row 2 has 2 columns, want 4")
}

func TestLoadPriorRecordRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prior_record.csv")

	in := []PriorRecordRecord{
		{CrimeMajor: "강력범죄", CrimeMinor: "살인", PriorRecord: "전과없음", Count: 120},
		{CrimeMajor: "강력범죄", CrimeMinor: "살인", PriorRecord: "1범", Count: 45},
	}
	w := exporter.NewCSVWriter(slog.Default())
	require.NoError(t, w.WriteSimpleCSV(path, PriorRecordHeaders, PriorRecordRows(in)))

	out, err := LoadPriorRecord(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWorldRateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.csv")

	in := []WorldRateRecord{
		{Country: "Denmark", FollowupYears: 1.5, RatePct: 63, Type: RateReimprisonment, Period: "2015"},
	}
	w := exporter.NewCSVWriter(slog.Default())
	require.NoError(t, w.WriteSimpleCSV(path, WorldRateHeaders, WorldRateRows(in)))

	out, err := LoadWorldRates(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
