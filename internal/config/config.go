package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Seed      int64           `yaml:"seed"`
	Curve     CurveConfig     `yaml:"curve"`
	Tour      TourConfig      `yaml:"tour"`
	Logging   LogConfig       `yaml:"logging"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// CurveConfig defines the curve-fitting run
type CurveConfig struct {
	MutationPercentage float64 `yaml:"mutation_percentage"` // 0 disables mutation
	Elitism            bool    `yaml:"elitism"`
	Generations        int     `yaml:"generations"` // headless runs only
}

// TourConfig defines the tour run
type TourConfig struct {
	Elitism     bool `yaml:"elitism"`
	Generations int  `yaml:"generations"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	EveryGenSummary   bool   `yaml:"every_gen_summary"`
	SaveChampionEvery int    `yaml:"save_champion_every"`
	ArtifactsDir      string `yaml:"artifacts_dir"`
	CSVPath           string `yaml:"csv_path"`
	JSONPath          string `yaml:"json_path"`
}

// DashboardConfig defines the terminal dashboard
type DashboardConfig struct {
	CurveIntervalMs int  `yaml:"curve_interval_ms"`
	TourIntervalMs  int  `yaml:"tour_interval_ms"`
	Sound           bool `yaml:"sound"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := preset()
	applyDefaults(cfg)
	return cfg
}

// preset holds the defaults whose zero value is meaningful, so they are set
// before decoding and an explicit 0 or false in the file survives.
func preset() *Config {
	return &Config{
		Curve: CurveConfig{
			MutationPercentage: 25,
			Elitism:            true,
		},
		Logging: LogConfig{
			EveryGenSummary: true,
		},
	}
}

// Load reads a YAML config file and returns a Config.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := preset()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Curve.Generations == 0 {
		cfg.Curve.Generations = 500
	}
	if cfg.Tour.Generations == 0 {
		cfg.Tour.Generations = 1000
	}
	if cfg.Logging.SaveChampionEvery == 0 {
		cfg.Logging.SaveChampionEvery = 100
	}
	if cfg.Logging.ArtifactsDir == "" {
		cfg.Logging.ArtifactsDir = "artifacts"
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
	if cfg.Dashboard.CurveIntervalMs == 0 {
		cfg.Dashboard.CurveIntervalMs = 200
	}
	if cfg.Dashboard.TourIntervalMs == 0 {
		cfg.Dashboard.TourIntervalMs = 1000
	}
}

// Validate rejects values the engines cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Curve.MutationPercentage < 0 {
		errs = append(errs, fmt.Errorf("curve.mutation_percentage must be >= 0, got %v", c.Curve.MutationPercentage))
	}
	if c.Curve.Generations < 0 {
		errs = append(errs, fmt.Errorf("curve.generations must be >= 0, got %d", c.Curve.Generations))
	}
	if c.Tour.Generations < 0 {
		errs = append(errs, fmt.Errorf("tour.generations must be >= 0, got %d", c.Tour.Generations))
	}
	if c.Dashboard.CurveIntervalMs < 0 || c.Dashboard.TourIntervalMs < 0 {
		errs = append(errs, errors.New("dashboard intervals must be >= 0"))
	}
	return errors.Join(errs...)
}
