package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankstmt.yaml configuration.
type Config struct {
	Dirs   DirsConfig   `yaml:"dirs"`
	Export ExportConfig `yaml:"export"`
}

// DirsConfig locates the working directories of a parsing run, relative to
// the workspace root.
type DirsConfig struct {
	Statements string `yaml:"statements"`
	Results    string `yaml:"results"`
	Failures   string `yaml:"failures"`
}

// ExportConfig controls the flat transactions CSV.
type ExportConfig struct {
	DescriptionDelimiter string `yaml:"description_delimiter"`
}

// Load reads a bankstmt.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard workspace layout.
func Default() *Config {
	return &Config{
		Dirs: DirsConfig{
			Statements: "statements",
			Results:    "results",
			Failures:   "failures",
		},
		Export: ExportConfig{
			DescriptionDelimiter: ";",
		},
	}
}
