package tables

import (
	"sort"
	"strings"

	"recidcli/internal/dataprocessing"
)

// Metric markers for the e-nara indicator rows. The workbook's row
// labels are free text, so the domestic trend is selected by substring.
const (
	MetricReimprisonPrefix   = "재복역기간"
	MetricReimprisonWithin3y = "재복역기간3년이내"
)

// Education bucket enumeration
const (
	BucketHighSchoolOrBelow = "high_school_or_below"
	BucketCollegePlus       = "college_plus"
	BucketOtherUnknown      = "other_unknown"
)

// bucketOrder fixes the output row order of the education bucket table
var bucketOrder = []string{BucketHighSchoolOrBelow, BucketCollegePlus, BucketOtherUnknown}

// PriorShareRow is one row of the prior-conviction share table (H1)
type PriorShareRow struct {
	Year     int
	Category string
	Count    int
	SharePct float64
}

// BuildPriorShare computes the share of offenders with and without
// prior convictions for the given year, using only the overall-total
// rows of the crime hierarchy so no offense category is double counted.
// The prior group uses its subtotal row when the export carries one and
// falls back to summing the repeat-count columns otherwise.
func BuildPriorShare(records []dataprocessing.PriorConvictionRecord, year int) []PriorShareRow {
	var noPrior, priorSubtotal, priorDetail int
	for _, r := range records {
		if r.Year != year || !isOverallTotal(r) {
			continue
		}
		switch {
		case r.Group == dataprocessing.GroupNoPrior && r.Detail == dataprocessing.DetailSubtotal:
			noPrior += r.Count
		case r.Group == dataprocessing.GroupPrior && r.Detail == dataprocessing.DetailSubtotal:
			priorSubtotal += r.Count
		case r.Group == dataprocessing.GroupPrior:
			priorDetail += r.Count
		}
	}

	prior := priorSubtotal
	if prior == 0 {
		prior = priorDetail
	}

	total := noPrior + prior
	if total == 0 {
		return nil
	}

	return []PriorShareRow{
		{Year: year, Category: dataprocessing.GroupNoPrior, Count: noPrior, SharePct: 100 * float64(noPrior) / float64(total)},
		{Year: year, Category: dataprocessing.GroupPrior, Count: prior, SharePct: 100 * float64(prior) / float64(total)},
	}
}

// BuildPriorComposition is the three-way variant used by the share
// figure: no_prior / prior / unknown, shares over their combined total.
func BuildPriorComposition(records []dataprocessing.PriorConvictionRecord, year int) []PriorShareRow {
	counts := map[string]int{}
	var priorDetail int
	for _, r := range records {
		if r.Year != year || !isOverallTotal(r) {
			continue
		}
		if r.Detail == dataprocessing.DetailSubtotal {
			counts[r.Group] += r.Count
		} else if r.Group == dataprocessing.GroupPrior {
			priorDetail += r.Count
		}
	}
	if counts[dataprocessing.GroupPrior] == 0 {
		counts[dataprocessing.GroupPrior] = priorDetail
	}

	order := []string{dataprocessing.GroupNoPrior, dataprocessing.GroupPrior, dataprocessing.GroupUnknown}
	var total int
	for _, g := range order {
		total += counts[g]
	}
	if total == 0 {
		return nil
	}

	rows := make([]PriorShareRow, 0, len(order))
	for _, g := range order {
		rows = append(rows, PriorShareRow{
			Year:     year,
			Category: g,
			Count:    counts[g],
			SharePct: 100 * float64(counts[g]) / float64(total),
		})
	}
	return rows
}

// isOverallTotal reports whether a record belongs to the overall-total
// rows of the KOSIS crime hierarchy.
func isOverallTotal(r dataprocessing.PriorConvictionRecord) bool {
	return r.CrimeLvl1 == dataprocessing.CrimeTotal &&
		r.CrimeLvl2 == dataprocessing.CrimeSubtotal &&
		r.CrimeLvl3 == dataprocessing.CrimeSubtotal
}

// PeriodDistRow is one row of the elapsed-time distribution table (H2)
type PeriodDistRow struct {
	RecidType string
	Period    string
	Count     int
	SharePct  float64
}

// BuildPeriodDistribution sums re-offender counts over crime categories
// grouped by recurrence type and elapsed-time bucket, with each bucket's
// share computed within its recurrence type. Rows are ordered by
// recurrence type ascending, then count descending, then bucket order.
func BuildPeriodDistribution(records []dataprocessing.PeriodTypeRecord) []PeriodDistRow {
	type key struct{ recidType, period string }
	counts := map[key]int{}
	typeTotals := map[string]int{}
	for _, r := range records {
		counts[key{r.RecidType, r.Period}] += r.Count
		typeTotals[r.RecidType] += r.Count
	}

	rows := make([]PeriodDistRow, 0, len(counts))
	for k, c := range counts {
		row := PeriodDistRow{RecidType: k.recidType, Period: k.period, Count: c}
		if t := typeTotals[k.recidType]; t > 0 {
			row.SharePct = 100 * float64(c) / float64(t)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RecidType != rows[j].RecidType {
			return rows[i].RecidType < rows[j].RecidType
		}
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return dataprocessing.PeriodIndex(rows[i].Period) < dataprocessing.PeriodIndex(rows[j].Period)
	})
	return rows
}

// CrimeCountRow is a crime category with its total re-offender count
type CrimeCountRow struct {
	Crime string
	Count int
}

// BuildTopCrimes returns the topN crime categories by total re-offender
// count, descending; ties break by crime name for stable output.
func BuildTopCrimes(records []dataprocessing.PeriodTypeRecord, topN int) []CrimeCountRow {
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Crime] += r.Count
	}

	rows := make([]CrimeCountRow, 0, len(counts))
	for crime, c := range counts {
		rows = append(rows, CrimeCountRow{Crime: crime, Count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Crime < rows[j].Crime
	})

	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// EducationBucketRow is one row of the education bucket table (H3)
type EducationBucketRow struct {
	Bucket   string
	Count    int
	SharePct float64
}

// EducationBucket maps an education enum value onto the two analysis
// buckets, with a catch-all for other/unknown.
func EducationBucket(education string) string {
	switch education {
	case dataprocessing.EduCollege, dataprocessing.EduGraduate:
		return BucketCollegePlus
	case dataprocessing.EduNoSchooling, dataprocessing.EduElementary,
		dataprocessing.EduMiddleSchool, dataprocessing.EduHighSchool:
		return BucketHighSchoolOrBelow
	}
	return BucketOtherUnknown
}

// BuildEducationBuckets aggregates offender counts into education
// buckets. Bucket counts sum to the total valid record count.
func BuildEducationBuckets(records []dataprocessing.EducationRecord) []EducationBucketRow {
	counts := map[string]int{}
	var total int
	for _, r := range records {
		counts[EducationBucket(r.Education)] += r.Count
		total += r.Count
	}
	if total == 0 {
		return nil
	}

	rows := make([]EducationBucketRow, 0, len(bucketOrder))
	for _, b := range bucketOrder {
		rows = append(rows, EducationBucketRow{
			Bucket:   b,
			Count:    counts[b],
			SharePct: 100 * float64(counts[b]) / float64(total),
		})
	}
	return rows
}

// FollowupWindows is the number of follow-up windows in the country
// comparison table (years 1 through 5).
const FollowupWindows = 5

// CountryFollowupRow is one row of the country comparison table (H4).
// Rates is indexed by follow-up window minus one; nil marks a window
// the source has no value for.
type CountryFollowupRow struct {
	Country string
	Rates   [FollowupWindows]*float64
}

// Covered counts the follow-up windows with a value
func (r CountryFollowupRow) Covered() int {
	n := 0
	for _, v := range r.Rates {
		if v != nil {
			n++
		}
	}
	return n
}

// BuildCountryFollowup computes re-imprisonment rates by country for
// the 1..5 year follow-up windows. Only re-imprisonment measurements at
// whole-year windows qualify; duplicate (country, window) measurements
// keep the most recent period. Countries covering fewer than minWindows
// windows are excluded; remaining gaps stay empty in the output.
func BuildCountryFollowup(records []dataprocessing.WorldRateRecord, minWindows int) []CountryFollowupRow {
	type measurement struct {
		rate   float64
		period string
	}
	byCountry := map[string][FollowupWindows]*measurement{}

	for _, r := range records {
		if r.Type != dataprocessing.RateReimprisonment {
			continue
		}
		window := int(r.FollowupYears)
		if float64(window) != r.FollowupYears || window < 1 || window > FollowupWindows {
			continue
		}

		ms := byCountry[r.Country]
		prev := ms[window-1]
		if prev == nil || strings.Compare(r.Period, prev.period) >= 0 {
			ms[window-1] = &measurement{rate: r.RatePct, period: r.Period}
		}
		byCountry[r.Country] = ms
	}

	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	var rows []CountryFollowupRow
	for _, c := range countries {
		row := CountryFollowupRow{Country: c}
		for i, m := range byCountry[c] {
			if m != nil {
				rate := m.rate
				row.Rates[i] = &rate
			}
		}
		if row.Covered() < minWindows {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// TrendRow is one row of the domestic re-imprisonment trend table
type TrendRow struct {
	Metric string
	Year   int
	Value  float64
}

// BuildDomesticTrend selects the e-nara rows tracking re-imprisonment
// within three years of release, ordered by metric then year.
func BuildDomesticTrend(records []dataprocessing.EnaraRecord) []TrendRow {
	var rows []TrendRow
	for _, r := range records {
		if !strings.Contains(r.Metric, MetricReimprisonWithin3y) {
			continue
		}
		rows = append(rows, TrendRow{Metric: r.Metric, Year: r.Year, Value: r.Value})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Metric != rows[j].Metric {
			return rows[i].Metric < rows[j].Metric
		}
		return rows[i].Year < rows[j].Year
	})
	return rows
}
