package dataprocessing

import (
	"fmt"
	"strings"
)

// policeCrimeColumns are the crime classification columns of the police
// offender statistics exports.
var policeCrimeColumns = []string{"범죄대분류", "범죄중분류"}

// policeSource holds the shared wide layout of the two police datasets:
// two crime classification columns followed by one value column per
// category label.
type policeSource struct {
	categories []string // category label per value column
	colIdx     []int    // source column index per value column
	rows       [][]string
	dataStart  int
}

// readPoliceSource reads a police export and resolves its layout
func readPoliceSource(path string) (*policeSource, error) {
	rows, err := ReadCSVFile(path, EncodingCP949)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("source %s has no data rows", path)
	}

	header := rows[0]
	for k, want := range policeCrimeColumns {
		if cell(header, k) != want {
			return nil, fmt.Errorf("source %s: expected column %s at position %d, got %q", path, want, k, cell(header, k))
		}
	}

	src := &policeSource{rows: rows, dataStart: 1}
	for j := len(policeCrimeColumns); j < len(header); j++ {
		label := strings.TrimSpace(header[j])
		if label == "" {
			continue
		}
		src.categories = append(src.categories, label)
		src.colIdx = append(src.colIdx, j)
	}
	if len(src.categories) == 0 {
		return nil, fmt.Errorf("source %s has no value columns", path)
	}
	return src, nil
}

// CleanEducation normalizes the police offender education dataset.
// Education labels are mapped onto the closed education enumeration;
// blank cells are zero counts in this publication and are kept.
func CleanEducation(path string) ([]EducationRecord, CleanStats, error) {
	stats := CleanStats{Source: path}

	src, err := readPoliceSource(path)
	if err != nil {
		return nil, stats, err
	}

	var records []EducationRecord
	for i := src.dataStart; i < len(src.rows); i++ {
		major := cell(src.rows[i], 0)
		minor := cell(src.rows[i], 1)
		if major == "" {
			continue
		}

		for k, label := range src.categories {
			count, empty, ok := parseCount(cell(src.rows[i], src.colIdx[k]))
			if !ok && !empty {
				stats.Dropped++
				continue
			}

			rec := EducationRecord{
				CrimeMajor: major,
				CrimeMinor: minor,
				Education:  mapEducationLabel(label),
				Count:      count,
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

// CleanPriorRecord normalizes the police offender prior-record dataset.
// Prior-record labels are an open set and are carried as trimmed text.
func CleanPriorRecord(path string) ([]PriorRecordRecord, CleanStats, error) {
	stats := CleanStats{Source: path}

	src, err := readPoliceSource(path)
	if err != nil {
		return nil, stats, err
	}

	var records []PriorRecordRecord
	for i := src.dataStart; i < len(src.rows); i++ {
		major := cell(src.rows[i], 0)
		minor := cell(src.rows[i], 1)
		if major == "" {
			continue
		}

		for k, label := range src.categories {
			count, empty, ok := parseCount(cell(src.rows[i], src.colIdx[k]))
			if !ok && !empty {
				stats.Dropped++
				continue
			}

			rec := PriorRecordRecord{
				CrimeMajor:  major,
				CrimeMinor:  minor,
				PriorRecord: label,
				Count:       count,
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
