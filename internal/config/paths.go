package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the pipeline paths.
// This is the single source of truth for ALL file paths in the application.
type Paths struct {
	BaseDir      string
	RawDir       string
	ProcessedDir string
	OutputsDir   string
	FiguresDir   string
	LogsDir      string
}

// GetPaths returns the pipeline paths relative to the executable location.
// All paths are relative to the executable directory, never the current
// working directory, so runs behave the same from any shell.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds the path set under an explicit base directory.
// Directory structure:
//
//	base/
//	  ├── data/
//	  │   ├── raw/        (source CSV/Excel files)
//	  │   └── processed/  (tidy CSV files)
//	  ├── outputs/        (summary tables)
//	  │   └── figures/    (rendered PNG charts)
//	  └── logs/
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	outputsDir := filepath.Join(baseDir, "outputs")

	return &Paths{
		BaseDir:      baseDir,
		RawDir:       filepath.Join(dataDir, "raw"),
		ProcessedDir: filepath.Join(dataDir, "processed"),
		OutputsDir:   outputsDir,
		FiguresDir:   filepath.Join(outputsDir, "figures"),
		LogsDir:      filepath.Join(baseDir, "logs"),
	}
}

// EnsureDirectories creates every writable directory of the pipeline.
// The raw directory is created too so a fresh checkout has a place to
// drop source files.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.RawDir, p.ProcessedDir, p.OutputsDir, p.FiguresDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// RawPath returns the full path of a raw source file
func (p *Paths) RawPath(name string) string {
	return filepath.Join(p.RawDir, name)
}

// TidyPath returns the full path of a tidy intermediate file
func (p *Paths) TidyPath(name string) string {
	return filepath.Join(p.ProcessedDir, name)
}

// TablePath returns the full path of a summary table file
func (p *Paths) TablePath(name string) string {
	return filepath.Join(p.OutputsDir, name)
}

// FigurePath returns the full path of a rendered figure
func (p *Paths) FigurePath(name string) string {
	return filepath.Join(p.FiguresDir, name)
}

// LogPath returns the full path of a log file
func (p *Paths) LogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
