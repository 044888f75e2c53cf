// Package charts renders the figure set from tidy data and summary
// rows using gonum/plot. Rendering is side-effect-only: each figure
// writes one PNG under outputs/figures. Category axis text uses the
// English display names of the tidy enumerations; free-text labels
// (crime categories, indicator metrics) are drawn as found in the data.
package charts
