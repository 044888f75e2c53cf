package charts

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"recidcli/internal/dataprocessing"
	"recidcli/internal/tables"
)

// renderDomesticTrend draws one line per re-imprisonment metric over
// the years covered by the e-nara indicator.
func renderDomesticTrend(records []dataprocessing.EnaraRecord, out string) error {
	series := map[string]map[int]float64{}
	for _, r := range records {
		if !strings.Contains(r.Metric, tables.MetricReimprisonPrefix) {
			continue
		}
		if series[r.Metric] == nil {
			series[r.Metric] = map[int]float64{}
		}
		series[r.Metric][r.Year] = r.Value
	}
	if len(series) == 0 {
		return fmt.Errorf("no metrics matching %s", tables.MetricReimprisonPrefix)
	}

	metrics := make([]string, 0, len(series))
	for m := range series {
		metrics = append(metrics, m)
	}
	sort.Strings(metrics)

	p := newPlot("Re-imprisonment within 3 years of release", "Year", "Rate (%)")
	for i, metric := range metrics {
		byYear := series[metric]
		years := make([]int, 0, len(byYear))
		for y := range byYear {
			years = append(years, y)
		}
		sort.Ints(years)

		xys := make(plotter.XYs, 0, len(years))
		for _, y := range years {
			xys = append(xys, plotter.XY{X: float64(y), Y: byYear[y]})
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("line for metric %s: %w", metric, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(metric, line, points)
	}

	return p.Save(figWidth, figHeight, out)
}

// renderPeriodDistribution draws the share of re-offenders per
// elapsed-time bucket, one line per recurrence type.
func renderPeriodDistribution(rows []tables.PeriodDistRow, out string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no period distribution rows")
	}

	shares := map[string]map[string]float64{}
	for _, r := range rows {
		if shares[r.RecidType] == nil {
			shares[r.RecidType] = map[string]float64{}
		}
		shares[r.RecidType][r.Period] = r.SharePct
	}

	recidTypes := make([]string, 0, len(shares))
	for t := range shares {
		recidTypes = append(recidTypes, t)
	}
	sort.Strings(recidTypes)

	p := newPlot("Elapsed time to re-offense", "Elapsed time", "Share (%)")
	for i, recidType := range recidTypes {
		xys := make(plotter.XYs, 0, len(dataprocessing.PeriodOrder))
		for idx, period := range dataprocessing.PeriodOrder {
			xys = append(xys, plotter.XY{X: float64(idx), Y: shares[recidType][period]})
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("line for type %s: %w", recidType, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(displayName(recidType), line, points)
	}
	p.NominalX(displayPeriods...)

	return p.Save(figWidth, figHeight, out)
}

// renderTopCrimes draws a horizontal bar per crime category, largest at
// the top.
func renderTopCrimes(rows []tables.CrimeCountRow, out string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no crime count rows")
	}

	// Nominal Y places index 0 at the bottom, so plot ascending
	values := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, r := range rows {
		j := len(rows) - 1 - i
		values[j] = float64(r.Count)
		names[j] = r.Crime
	}

	p := newPlot(fmt.Sprintf("Top %d crime categories by re-offenders", len(rows)), "Re-offenders", "")
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)
	p.Legend.Top = false

	return p.Save(figWidth, 6*figHeight/5, out)
}

// shareBars draws a labeled vertical share bar per category
func shareBars(title string, categories []string, sharesPct []float64, out string) error {
	values := make(plotter.Values, len(sharesPct))
	copy(values, sharesPct)

	p := newPlot(title, "", "Share (%)")
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(categories...)
	p.Legend.Top = false

	labels := make([]string, len(sharesPct))
	xys := make(plotter.XYs, len(sharesPct))
	for i, v := range sharesPct {
		labels[i] = fmt.Sprintf("%.1f%%", v)
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("bar labels: %w", err)
	}
	p.Add(lbl)

	return p.Save(figWidth, figHeight, out)
}

// renderPriorShare draws the offender composition by prior-conviction
// status for the reference year.
func renderPriorShare(rows []tables.PriorShareRow, year int, out string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no prior-conviction composition rows")
	}

	categories := make([]string, len(rows))
	shares := make([]float64, len(rows))
	for i, r := range rows {
		categories[i] = displayName(r.Category)
		shares[i] = r.SharePct
	}
	title := fmt.Sprintf("Offenders by prior-conviction status (%d)", year)
	return shareBars(title, categories, shares, out)
}

// renderEducationBuckets draws the education bucket shares, largest
// first.
func renderEducationBuckets(rows []tables.EducationBucketRow, year int, out string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no education bucket rows")
	}

	sorted := make([]tables.EducationBucketRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SharePct > sorted[j].SharePct })

	categories := make([]string, len(sorted))
	shares := make([]float64, len(sorted))
	for i, r := range sorted {
		categories[i] = displayName(r.Bucket)
		shares[i] = r.SharePct
	}
	title := fmt.Sprintf("Offender education levels (%d)", year)
	return shareBars(title, categories, shares, out)
}

// renderWorldFollowup draws one re-imprisonment line per focus country
// over the 1..5 year follow-up windows.
func renderWorldFollowup(records []dataprocessing.WorldRateRecord, focus []string, out string) error {
	rows := tables.BuildCountryFollowup(records, 1)

	byCountry := map[string]tables.CountryFollowupRow{}
	for _, r := range rows {
		byCountry[r.Country] = r
	}

	p := newPlot("Re-imprisonment rates by follow-up window", "Follow-up (years)", "Rate (%)")
	drawn := 0
	for i, country := range focus {
		row, ok := byCountry[country]
		if !ok {
			continue
		}

		var xys plotter.XYs
		for w, rate := range row.Rates {
			if rate == nil {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(w + 1), Y: *rate})
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("line for country %s: %w", country, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(country, line, points)
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("none of the focus countries have follow-up data")
	}

	return p.Save(figWidth, figHeight, out)
}
