// Package dataprocessing normalizes the raw public datasets into tidy,
// typed records and loads them back for the downstream stages.
//
// # Architecture
//
// The package has one cleaner per raw source:
//
//  1. CleanPeriodType: prosecution re-offense period/type statistics (cp949 CSV, wide)
//  2. CleanPriorConvictions: KOSIS prior-conviction counts (cp949 CSV, two-row multi-header)
//  3. CleanEducation / CleanPriorRecord: police offender statistics (cp949 CSV, wide)
//  4. CleanWorldRates: international recidivism rates (UTF-8 CSV)
//  5. CleanEnara: e-nara 3-year re-imprisonment indicator (Excel workbook)
//
// Each cleaner melts the wide source into one row per observation, maps
// Korean category labels onto closed English enumerations, coerces
// counts and rates, and validates every record against its struct tags.
// Rows failing coercion or validation are dropped and counted in
// CleanStats; the Preprocessor fails the run only when a required
// source yields zero valid rows.
//
// # Data flow
//
//	raw CSV/Excel → cleaner → typed records → exporter (tidy CSV)
//	tidy CSV → Load* → typed records → tables / charts
package dataprocessing
