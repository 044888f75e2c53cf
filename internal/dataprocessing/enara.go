package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// enaraFootnoteMarker flags source-attribution rows under the data table
const enaraFootnoteMarker = "출처"

// CleanEnara normalizes the e-nara 3-year re-imprisonment indicator
// workbook. The sheet carries preamble rows above the table, so the
// header row is located by scanning for a row mentioning two known
// years; the first column holds the metric label and the remaining
// year columns hold values with thousands separators.
func CleanEnara(path string) ([]EnaraRecord, CleanStats, error) {
	stats := CleanStats{Source: path}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, stats, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	headerRow := -1
	for i, row := range rows {
		joined := strings.Join(row, " ")
		if strings.Contains(joined, "2019") && strings.Contains(joined, "2020") {
			headerRow = i
			break
		}
	}
	if headerRow == -1 {
		return nil, stats, fmt.Errorf("could not find the year-header row in %s", path)
	}

	// Resolve year columns from the header row
	type colMeta struct {
		idx  int
		year int
	}
	var cols []colMeta
	for j := 1; j < len(rows[headerRow]); j++ {
		token := yearRe.FindString(rows[headerRow][j])
		if token == "" {
			continue
		}
		year, _ := strconv.Atoi(token)
		cols = append(cols, colMeta{idx: j, year: year})
	}
	if len(cols) == 0 {
		return nil, stats, fmt.Errorf("header row of %s has no year columns", path)
	}

	var records []EnaraRecord
	for i := headerRow + 1; i < len(rows); i++ {
		metric := cell(rows[i], 0)
		if metric == "" || strings.Contains(metric, enaraFootnoteMarker) {
			continue
		}

		for _, c := range cols {
			value, ok := parseFloatCell(cell(rows[i], c.idx))
			if !ok {
				stats.Dropped++
				continue
			}

			rec := EnaraRecord{
				Metric: metric,
				Year:   c.year,
				Value:  value,
			}
			if err := validate.Struct(rec); err != nil {
				stats.Dropped++
				continue
			}
			records = append(records, rec)
		}
	}

	stats.Rows = len(records)
	return records, stats, nil
}
