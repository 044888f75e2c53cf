package dataprocessing

import (
	"fmt"
	"strconv"
)

// Tidy file column contracts. Loaders reject files whose header does
// not match exactly, so schema drift between stages is caught at read
// time rather than as silent misgrouping.
var (
	PeriodTypeHeaders      = []string{"crime", "recid_type", "period", "count"}
	PriorConvictionHeaders = []string{"year", "crime_lvl1", "crime_lvl2", "crime_lvl3", "group", "detail", "count"}
	EducationHeaders       = []string{"crime_major", "crime_minor", "education", "count"}
	PriorRecordHeaders     = []string{"crime_major", "crime_minor", "prior_record", "count"}
	WorldRateHeaders       = []string{"country", "followup_years", "rate_pct", "type", "period"}
	EnaraHeaders           = []string{"metric", "year", "value"}
)

// PeriodTypeRows renders records as tidy CSV rows
func PeriodTypeRows(records []PeriodTypeRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Crime, r.RecidType, r.Period, strconv.Itoa(r.Count)})
	}
	return rows
}

// PriorConvictionRows renders records as tidy CSV rows
func PriorConvictionRows(records []PriorConvictionRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Year), r.CrimeLvl1, r.CrimeLvl2, r.CrimeLvl3,
			r.Group, r.Detail, strconv.Itoa(r.Count),
		})
	}
	return rows
}

// EducationRows renders records as tidy CSV rows
func EducationRows(records []EducationRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.CrimeMajor, r.CrimeMinor, r.Education, strconv.Itoa(r.Count)})
	}
	return rows
}

// PriorRecordRows renders records as tidy CSV rows
func PriorRecordRows(records []PriorRecordRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.CrimeMajor, r.CrimeMinor, r.PriorRecord, strconv.Itoa(r.Count)})
	}
	return rows
}

// WorldRateRows renders records as tidy CSV rows
func WorldRateRows(records []WorldRateRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Country,
			formatFollowup(r.FollowupYears),
			strconv.FormatFloat(r.RatePct, 'g', -1, 64),
			r.Type,
			r.Period,
		})
	}
	return rows
}

// EnaraRows renders records as tidy CSV rows
func EnaraRows(records []EnaraRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Metric,
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.Value, 'g', -1, 64),
		})
	}
	return rows
}

// readTidy reads a tidy file and checks its header against the contract
func readTidy(path string, headers []string) ([][]string, error) {
	rows, err := ReadCSVFile(path, EncodingUTF8)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("tidy file %s is empty", path)
	}
	if len(rows[0]) != len(headers) {
		return nil, fmt.Errorf("tidy file %s has %d columns, want %d", path, len(rows[0]), len(headers))
	}
	for i, want := range headers {
		if rows[0][i] != want {
			return nil, fmt.Errorf("tidy file %s: column %d is %q, want %q", path, i, rows[0][i], want)
		}
	}
	for i, row := range rows[1:] {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("tidy file %s: row %d has %d columns, want %d", path, i+2, len(row), len(headers))
		}
	}
	return rows[1:], nil
}

// LoadPeriodType loads a tidy prosecution period/type file.
// Tidy files are produced by this pipeline, so any malformed row is an
// error rather than a droppable anomaly.
func LoadPeriodType(path string) ([]PeriodTypeRecord, error) {
	rows, err := readTidy(path, PeriodTypeHeaders)
	if err != nil {
		return nil, err
	}
	records := make([]PeriodTypeRecord, 0, len(rows))
	for i, row := range rows {
		count, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad count %q", path, i+2, row[3])
		}
		records = append(records, PeriodTypeRecord{
			Crime: row[0], RecidType: row[1], Period: row[2], Count: count,
		})
	}
	return records, nil
}

// LoadPriorConvictions loads a tidy KOSIS prior-conviction file
func LoadPriorConvictions(path string) ([]PriorConvictionRecord, error) {
	rows, err := readTidy(path, PriorConvictionHeaders)
	if err != nil {
		return nil, err
	}
	records := make([]PriorConvictionRecord, 0, len(rows))
	for i, row := range rows {
		year, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad year %q", path, i+2, row[0])
		}
		count, err := strconv.Atoi(row[6])
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad count %q", path, i+2, row[6])
		}
		records = append(records, PriorConvictionRecord{
			Year: year, CrimeLvl1: row[1], CrimeLvl2: row[2], CrimeLvl3: row[3],
			Group: row[4], Detail: row[5], Count: count,
		})
	}
	return records, nil
}

// LoadEducation loads a tidy police education file
func LoadEducation(path string) ([]EducationRecord, error) {
	rows, err := readTidy(path, EducationHeaders)
	if err != nil {
		return nil, err
	}
	records := make([]EducationRecord, 0, len(rows))
	for i, row := range rows {
		count, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad count %q", path, i+2, row[3])
		}
		records = append(records, EducationRecord{
			CrimeMajor: row[0], CrimeMinor: row[1], Education: row[2], Count: count,
		})
	}
	return records, nil
}

// LoadPriorRecord loads a tidy police prior-record file
func LoadPriorRecord(path string) ([]PriorRecordRecord, error) {
	rows, err := readTidy(path, PriorRecordHeaders)
	if err != nil {
		return nil, err
	}
	records := make([]PriorRecordRecord, 0, len(rows))
	for i, row := range rows {
		count, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad count %q", path, i+2, row[3])
		}
		records = append(records, PriorRecordRecord{
			CrimeMajor: row[0], CrimeMinor: row[1], PriorRecord: row[2], Count: count,
		})
	}
	return records, nil
}

// LoadWorldRates loads a tidy international rates file
func LoadWorldRates(path string) ([]WorldRateRecord, error) {
	rows, err := readTidy(path, WorldRateHeaders)
	if err != nil {
		return nil, err
	}
	records := make([]WorldRateRecord, 0, len(rows))
	for i, row := range rows {
		followup, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad followup_years %q", path, i+2, row[1])
		}
		rate, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad rate_pct %q", path, i+2, row[2])
		}
		records = append(records, WorldRateRecord{
			Country: row[0], FollowupYears: followup, RatePct: rate, Type: row[3], Period: row[4],
		})
	}
	return records, nil
}

// LoadEnara loads a tidy e-nara indicator file
func LoadEnara(path string) ([]EnaraRecord, error) {
	rows, err := readTidy(path, EnaraHeaders)
	if err != nil {
		return nil, err
	}
	records := make([]EnaraRecord, 0, len(rows))
	for i, row := range rows {
		year, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad year %q", path, i+2, row[1])
		}
		value, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("tidy file %s row %d: bad value %q", path, i+2, row[2])
		}
		records = append(records, EnaraRecord{Metric: row[0], Year: year, Value: value})
	}
	return records, nil
}
