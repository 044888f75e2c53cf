package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Shared canvas size for every figure
const (
	figWidth  = 9 * vg.Inch
	figHeight = 5 * vg.Inch
)

// barWidth is the bar thickness used by the bar figures
var barWidth = vg.Points(30)

// newPlot creates a plot with the shared presentation style
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// displayPeriods are the axis labels for the elapsed-time buckets, in
// dataprocessing.PeriodOrder order.
var displayPeriods = []string{"<=1 mo", "<=3 mo", "<=6 mo", "<=1 yr", "<=2 yr", "<=3 yr", ">3 yr"}

// displayNames maps enumeration values to axis and legend text
var displayNames = map[string]string{
	"same_type":            "Same offense type",
	"different_type":       "Different offense type",
	"no_prior":             "No prior conviction",
	"prior":                "Prior conviction",
	"unknown":              "Unknown",
	"high_school_or_below": "High school or below",
	"college_plus":         "College or above",
	"other_unknown":        "Other / unknown",
}

// displayName returns the display text for an enum value, falling back
// to the value itself for free-text categories.
func displayName(value string) string {
	if name, ok := displayNames[value]; ok {
		return name
	}
	return value
}
