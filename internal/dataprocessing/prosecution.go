package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"
)

// CleanPeriodType normalizes the prosecution re-offense period/type
// dataset. The source is a wide cp949 CSV: one row per crime category,
// one column per (recurrence type, elapsed-time bucket) pair with
// headers like 동종재범_1개월이내. Each cell becomes one tidy record.
// Blank cells are published as zero counts and are kept; non-numeric
// cells are dropped and counted.
func CleanPeriodType(path string) ([]PeriodTypeRecord, CleanStats, error) {
	stats := CleanStats{Source: path}

	rows, err := ReadCSVFile(path, EncodingCP949)
	if err != nil {
		return nil, stats, err
	}
	if len(rows) < 2 {
		return nil, stats, fmt.Errorf("source %s has no data rows", path)
	}

	// Resolve value columns to (recid_type, period) pairs once
	header := rows[0]
	type colMeta struct {
		idx       int
		recidType string
		period    string
	}
	var cols []colMeta
	for j := 1; j < len(header); j++ {
		name := strings.TrimSpace(header[j])
		parts := strings.SplitN(name, "_", 2)
		if len(parts) != 2 {
			slog.Warn("skipping unrecognized column", slog.String("source", path), slog.String("column", name))
			continue
		}
		recidType, okType := mapRecidTypeLabel(parts[0])
		period, okPeriod := mapPeriodLabel(parts[1])
		if !okType || !okPeriod {
			slog.Warn("skipping unmapped column", slog.String("source", path), slog.String("column", name))
			continue
		}
		cols = append(cols, colMeta{idx: j, recidType: recidType, period: period})
	}
	if len(cols) == 0 {
		return nil, stats, fmt.Errorf("source %s has no recognizable type/period columns", path)
	}

	var records []PeriodTypeRecord
	for i := 1; i < len(rows); i++ {
		crime := cell(rows[i], 0)
		if crime == "" {
			continue
		}

		for _, c := range cols {
			count, empty, ok := parseCount(cell(rows[i], c.idx))
			if !ok && !empty {
				stats.Dropped++
				continue
			}

			rec := PeriodTypeRecord{
				Crime:     crime,
				RecidType: c.recidType,
				Period:    c.period,
				Count:     count,
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
