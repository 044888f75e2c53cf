// Package exporter provides CSV export functionality for the pipeline.
//
// CSVWriter is the single writer used for both tidy intermediates and
// summary tables. Output files carry a UTF-8 BOM so Excel opens the
// Korean category labels correctly, matching the encoding of the
// upstream public datasets.
package exporter
