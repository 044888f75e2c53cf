package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete pipeline configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/pipeline.log"`
}

// PipelineConfig contains the analysis parameters shared by the table
// builder and the visualizer.
type PipelineConfig struct {
	// PriorConvictionYear is the reference year for the prior-conviction
	// share table (H1).
	PriorConvictionYear int `yaml:"prior_conviction_year" envconfig:"PRIOR_CONVICTION_YEAR" default:"2023"`
	// EducationYear is the reference year for the education bucket table (H3).
	EducationYear int `yaml:"education_year" envconfig:"EDUCATION_YEAR" default:"2020"`
	// TopCrimes is the number of crime categories shown in the top-crimes figure.
	TopCrimes int `yaml:"top_crimes" envconfig:"TOP_CRIMES" default:"12"`
	// MinFollowupWindows is the minimum number of covered 1..5 year
	// follow-up windows a country needs to appear in the country
	// comparison table (H4).
	MinFollowupWindows int `yaml:"min_followup_windows" envconfig:"MIN_FOLLOWUP_WINDOWS" default:"2"`
	// FocusCountries is the country list for the follow-up comparison figure.
	FocusCountries []string `yaml:"focus_countries" envconfig:"FOCUS_COUNTRIES" default:"France,United States,New Zealand,Israel,South Korea"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment variables (RECID_ prefix) win over the file,
// and the file wins over the tag defaults.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("RECID", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Merge config file if present
	if path := configFilePath(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		cfg = mergeConfigs(fileCfg, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envSet reports whether envconfig reads this field from the
// environment, either by its prefixed key or its bare alternate name.
func envSet(key, alt string) bool {
	if _, ok := os.LookupEnv(key); ok {
		return true
	}
	_, ok := os.LookupEnv(alt)
	return ok
}

// mergeConfigs overlays file values onto the env-processed config.
// A field set in the environment keeps its env value; otherwise a value
// present in the file replaces the tag default.
func mergeConfigs(fileCfg, cfg Config) Config {
	if fileCfg.Logging.Level != "" && !envSet("RECID_LOGGING_LEVEL", "LEVEL") {
		cfg.Logging.Level = fileCfg.Logging.Level
	}
	if fileCfg.Logging.Format != "" && !envSet("RECID_LOGGING_FORMAT", "FORMAT") {
		cfg.Logging.Format = fileCfg.Logging.Format
	}
	if fileCfg.Logging.Output != "" && !envSet("RECID_LOGGING_OUTPUT", "OUTPUT") {
		cfg.Logging.Output = fileCfg.Logging.Output
	}
	if fileCfg.Logging.FilePath != "" && !envSet("RECID_LOGGING_FILE_PATH", "FILE_PATH") {
		cfg.Logging.FilePath = fileCfg.Logging.FilePath
	}

	if fileCfg.Pipeline.PriorConvictionYear != 0 && !envSet("RECID_PIPELINE_PRIOR_CONVICTION_YEAR", "PRIOR_CONVICTION_YEAR") {
		cfg.Pipeline.PriorConvictionYear = fileCfg.Pipeline.PriorConvictionYear
	}
	if fileCfg.Pipeline.EducationYear != 0 && !envSet("RECID_PIPELINE_EDUCATION_YEAR", "EDUCATION_YEAR") {
		cfg.Pipeline.EducationYear = fileCfg.Pipeline.EducationYear
	}
	if fileCfg.Pipeline.TopCrimes != 0 && !envSet("RECID_PIPELINE_TOP_CRIMES", "TOP_CRIMES") {
		cfg.Pipeline.TopCrimes = fileCfg.Pipeline.TopCrimes
	}
	if fileCfg.Pipeline.MinFollowupWindows != 0 && !envSet("RECID_PIPELINE_MIN_FOLLOWUP_WINDOWS", "MIN_FOLLOWUP_WINDOWS") {
		cfg.Pipeline.MinFollowupWindows = fileCfg.Pipeline.MinFollowupWindows
	}
	if len(fileCfg.Pipeline.FocusCountries) > 0 && !envSet("RECID_PIPELINE_FOCUS_COUNTRIES", "FOCUS_COUNTRIES") {
		cfg.Pipeline.FocusCountries = fileCfg.Pipeline.FocusCountries
	}

	return cfg
}

// DefaultPipeline returns the pipeline parameters used when no
// configuration could be loaded.
func DefaultPipeline() PipelineConfig {
	return PipelineConfig{
		PriorConvictionYear: 2023,
		EducationYear:       2020,
		TopCrimes:           12,
		MinFollowupWindows:  2,
		FocusCountries:      []string{"France", "United States", "New Zealand", "Israel", "South Korea"},
	}
}

// configFilePath returns the config file path to load, or "" when none
// exists. RECID_CONFIG_FILE overrides the default location.
func configFilePath() string {
	if path := os.Getenv("RECID_CONFIG_FILE"); path != "" {
		return path
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output %q: must be console, file or both", c.Logging.Output)
	}
	if c.Pipeline.TopCrimes <= 0 {
		return fmt.Errorf("top_crimes must be positive, got %d", c.Pipeline.TopCrimes)
	}
	if c.Pipeline.MinFollowupWindows < 1 || c.Pipeline.MinFollowupWindows > 5 {
		return fmt.Errorf("min_followup_windows must be in 1..5, got %d", c.Pipeline.MinFollowupWindows)
	}
	return nil
}
