// Package files provides discovery of raw source files for the pipeline.
package files
