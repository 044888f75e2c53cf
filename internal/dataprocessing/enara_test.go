package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeEnaraFixture builds a workbook mimicking the e-nara indicator
// layout: preamble rows, a year-header row, data rows and a source
// footnote.
func writeEnaraFixture(t *testing.T, dir string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(dir, "enara.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestCleanEnara(t *testing.T) {
	dir := t.TempDir()
	path := writeEnaraFixture(t, dir, [][]interface{}{
		{"출소자 재복역률 지표"},
		{"구분", 2019, 2020, 2021},
		{"재복역기간3년이내_전체", 26.6, 25.2, 24.6},
		{"재복역기간3년이내_소년", 12.1, nil, 10.9},
		{"출처: 법무부 교정통계"},
	})

	records, stats, err := CleanEnara(path)
	require.NoError(t, err)

	// One record per populated (metric, year) cell; the blank cell is
	// dropped and the footnote row ignored
	assert.Len(t, records, 5)
	assert.Equal(t, 1, stats.Dropped)

	assert.Equal(t, EnaraRecord{
		Metric: "재복역기간3년이내_전체",
		Year:   2019,
		Value:  26.6,
	}, records[0])
	assert.Equal(t, 2021, records[2].Year)
}

func TestCleanEnara_NoHeaderRow(t *testing.T) {
	dir := t.TempDir()
	path := writeEnaraFixture(t, dir, [][]interface{}{
		{"구분", "값"},
		{"지표", 1.0},
	})

	_, _, err := CleanEnara(path)
	assert.ErrorContains(t, err, "year-header row")
}

func TestCleanEnara_MissingFile(t *testing.T) {
	_, _, err := CleanEnara(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
