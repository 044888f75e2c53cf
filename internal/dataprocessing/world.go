package dataprocessing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var followupRe = regexp.MustCompile(`\d+\.?\d*`)

// worldColumns are the expected columns of the international dataset
var worldColumns = []string{"Country", "Rate", "Follow-Up", "Type", "Duration"}

// CleanWorldRates normalizes the international recidivism-rate dataset.
// Rates are published as percentage strings ("44%"); follow-up windows
// as free text ("3 years", "18 months") converted to fractional years.
// Rows with an unparseable rate or follow-up window are dropped and
// counted.
func CleanWorldRates(path string) ([]WorldRateRecord, CleanStats, error) {
	stats := CleanStats{Source: path}

	rows, err := ReadCSVFile(path, EncodingUTF8)
	if err != nil {
		return nil, stats, err
	}
	if len(rows) < 2 {
		return nil, stats, fmt.Errorf("source %s has no data rows", path)
	}

	// Locate columns by name; the dataset is hand-curated and column
	// order has shifted between revisions.
	idx := make(map[string]int, len(worldColumns))
	for j := range rows[0] {
		idx[strings.TrimSpace(rows[0][j])] = j
	}
	for _, want := range worldColumns {
		if _, ok := idx[want]; !ok {
			return nil, stats, fmt.Errorf("source %s is missing column %s", path, want)
		}
	}

	var records []WorldRateRecord
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		country := cell(row, idx["Country"])
		if country == "" {
			continue
		}

		rate, ok := parseFloatCell(strings.TrimSuffix(cell(row, idx["Rate"]), "%"))
		if !ok {
			stats.Dropped++
			continue
		}

		followupText := cell(row, idx["Follow-Up"])
		followup, ok := parseFloatCell(followupRe.FindString(followupText))
		if !ok {
			stats.Dropped++
			continue
		}
		if strings.Contains(strings.ToLower(followupText), "month") {
			followup /= 12.0
		}

		rec := WorldRateRecord{
			Country:       country,
			FollowupYears: followup,
			RatePct:       rate,
			Type:          mapWorldType(cell(row, idx["Type"])),
			Period:        cell(row, idx["Duration"]),
		}
		if err := validate.Struct(rec); err != nil {
			stats.Dropped++
			continue
		}
		records = append(records, rec)
	}

	stats.Rows = len(records)
	return records, stats, nil
}

// formatFollowup renders a follow-up window for tidy output without
// losing the fractional month-based values.
func formatFollowup(years float64) string {
	return strconv.FormatFloat(years, 'g', -1, 64)
}
