package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPeriodType(t *testing.T) {
	dir := t.TempDir()
	path := writeCP949(t, dir, "prosecution.csv", prosecutionFixture)

	records, stats, err := CleanPeriodType(path)
	require.NoError(t, err)

	// 2 crimes x 3 mapped columns, minus the one non-numeric cell;
	// the free-text column is skipped entirely
	assert.Len(t, records, 5)
	assert.Equal(t, 5, stats.Rows)
	assert.Equal(t, 1, stats.Dropped)

	assert.Equal(t, PeriodTypeRecord{
		Crime:     "절도",
		RecidType: RecidSameType,
		Period:    "within_1m",
		Count:     10,
	}, records[0])

	for _, r := range records {
		assert.Contains(t, []string{RecidSameType, RecidDifferentType}, r.RecidType)
		assert.NotEqual(t, -1, PeriodIndex(r.Period))
	}
}

func TestCleanPeriodType_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, _, err := CleanPeriodType(dir + "/missing.csv")
		assert.Error(t, err)
	})

	t.Run("no mappable columns", func(t *testing.T) {
		path := writeCP949(t, dir, "bad.csv", "범죄분류,비고\n절도,1\n")
		_, _, err := CleanPeriodType(path)
		assert.ErrorContains(t, err, "no recognizable type/period columns")
	})

	t.Run("header only", func(t *testing.T) {
		path := writeCP949(t, dir, "empty.csv", "범죄분류,동종재범_1개월이내\n")
		_, _, err := CleanPeriodType(path)
		assert.ErrorContains(t, err, "no data rows")
	})
}

func TestCleanPeriodType_BlankCellsAreZero(t *testing.T) {
	dir := t.TempDir()
	path := writeCP949(t, dir, "blanks.csv", "범죄분류,동종재범_3년초과\n방화,\n")

	records, stats, err := CleanPeriodType(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Count)
	assert.Equal(t, 0, stats.Dropped)
}
