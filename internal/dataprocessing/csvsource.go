package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SourceEncoding identifies the character encoding of a raw CSV source
type SourceEncoding int

const (
	// EncodingUTF8 reads UTF-8 input, stripping a leading BOM if present
	EncodingUTF8 SourceEncoding = iota
	// EncodingCP949 reads the Korean government-portal encoding (cp949/EUC-KR)
	EncodingCP949
)

// ReadCSVFile reads a whole CSV file in the given encoding. Rows may be
// ragged; the caller is responsible for per-row column checks.
func ReadCSVFile(path string, enc SourceEncoding) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch enc {
	case EncodingCP949:
		r = transform.NewReader(f, korean.EUCKR.NewDecoder())
	default:
		r = transform.NewReader(f, unicode.UTF8BOM.NewDecoder())
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}
	return rows, nil
}

// cell returns the trimmed cell at index i, or "" when the row is short
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseCount parses an integer count cell. Thousands separators are
// stripped. ok is false for cells that do not parse as a number; empty
// and "-" cells are reported separately so callers can treat blanks as
// zero where the source uses them that way.
func parseCount(s string) (n int, empty bool, ok bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return 0, true, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Some sources publish counts as floats (e.g. "123.0")
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, false, false
		}
		v = int(f)
	}
	return v, false, true
}

// parseFloatCell parses a float cell with thousands separators stripped
func parseFloatCell(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
