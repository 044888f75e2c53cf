package dataprocessing

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var yearRe = regexp.MustCompile(`\d{4}`)

// kosisCrimeColumns are the crime hierarchy columns of a KOSIS export
var kosisCrimeColumns = []string{"범죄별(1)", "범죄별(2)", "범죄별(3)"}

// CleanPriorConvictions normalizes a KOSIS prior-conviction export.
// KOSIS CSVs carry a three-row header: the column-name row holds the
// year, and the first two data rows hold the prior-conviction group
// (전과없음/전과/미상) and the repeat-count detail (소계/1/2/...).
// Value columns belonging to groups outside the enumeration (such as
// grand-total columns) are skipped so group counts are not double
// counted. Blank cells are dropped and counted, matching the sparse
// publication style of the portal.
func CleanPriorConvictions(path string) ([]PriorConvictionRecord, CleanStats, error) {
	stats := CleanStats{Source: path}

	rows, err := ReadCSVFile(path, EncodingCP949)
	if err != nil {
		return nil, stats, err
	}
	if len(rows) < 4 {
		return nil, stats, fmt.Errorf("source %s is too short for a KOSIS multi-header layout", path)
	}

	header, groupRow, detailRow := rows[0], rows[1], rows[2]

	// Locate the crime hierarchy columns by name
	crimeIdx := make([]int, len(kosisCrimeColumns))
	for k, want := range kosisCrimeColumns {
		crimeIdx[k] = -1
		for j := range header {
			if strings.TrimSpace(header[j]) == want {
				crimeIdx[k] = j
				break
			}
		}
		if crimeIdx[k] == -1 {
			return nil, stats, fmt.Errorf("source %s is missing crime column %s", path, want)
		}
	}
	isCrimeCol := func(j int) bool {
		return j == crimeIdx[0] || j == crimeIdx[1] || j == crimeIdx[2]
	}

	// Resolve value columns to (year, group, detail) triples once
	type colMeta struct {
		idx    int
		year   int
		group  string
		detail string
	}
	var cols []colMeta
	for j := range header {
		if isCrimeCol(j) {
			continue
		}
		yearToken := yearRe.FindString(header[j])
		if yearToken == "" {
			continue
		}
		year, _ := strconv.Atoi(yearToken)

		group, ok := mapPriorGroupLabel(cell(groupRow, j))
		if !ok {
			slog.Debug("skipping out-of-enumeration group column",
				slog.String("source", path),
				slog.Int("column", j),
				slog.String("group", cell(groupRow, j)))
			continue
		}
		detail := mapDetailLabel(cell(detailRow, j))
		if detail == "" {
			detail = DetailSubtotal
		}
		cols = append(cols, colMeta{idx: j, year: year, group: group, detail: detail})
	}
	if len(cols) == 0 {
		return nil, stats, fmt.Errorf("source %s has no usable year/group columns", path)
	}

	var records []PriorConvictionRecord
	for i := 3; i < len(rows); i++ {
		lvl1 := cell(rows[i], crimeIdx[0])
		// Repeated header blocks appear when exports are concatenated
		if lvl1 == "" || strings.Contains(lvl1, "범죄별") {
			continue
		}
		lvl1 = mapCrimeLevelLabel(lvl1)
		lvl2 := mapCrimeLevelLabel(cell(rows[i], crimeIdx[1]))
		lvl3 := mapCrimeLevelLabel(cell(rows[i], crimeIdx[2]))

		for _, c := range cols {
			count, _, ok := parseCount(cell(rows[i], c.idx))
			if !ok {
				stats.Dropped++
				continue
			}

			rec := PriorConvictionRecord{
				Year:      c.year,
				CrimeLvl1: lvl1,
				CrimeLvl2: lvl2,
				CrimeLvl3: lvl3,
				Group:     c.group,
				Detail:    c.detail,
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
