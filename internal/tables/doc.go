// Package tables computes the summary tables of the analysis.
//
// Each of the four hypotheses has a pure builder over tidy records:
//
//	H1 BuildPriorShare         prior-conviction share in the reference year
//	H2 BuildPeriodDistribution elapsed time to re-offense by recurrence type
//	H3 BuildEducationBuckets   education buckets for the reference year
//	H4 BuildCountryFollowup    re-imprisonment rate by country and follow-up window
//
// plus BuildDomesticTrend for the national 3-year re-imprisonment rate
// series and BuildTopCrimes backing the top-crimes figure. Builders are
// deterministic: fixed grouping, fixed sort order, no I/O. The Builder
// type wires them to the tidy files and the CSV exporter.
package tables
