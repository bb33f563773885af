// Package config reads and writes the ledgerlens.yaml project file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "ledgerlens.yaml"

// Config is the top-level ledgerlens.yaml configuration.
type Config struct {
	Project  ProjectConfig  `yaml:"project"`
	Limits   LimitsConfig   `yaml:"limits"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Output   OutputConfig   `yaml:"output"`
}

// ProjectConfig identifies the business the ledgers belong to.
type ProjectConfig struct {
	Name string `yaml:"name"`
}

// LimitsConfig bounds the work a single run may do.
type LimitsConfig struct {
	// MaxRows caps the row count per input file.
	MaxRows int `yaml:"max_rows"`
}

// DefaultsConfig seeds reconciliation options when flags are absent.
type DefaultsConfig struct {
	// BookAccountScope is the cash-account scope; "auto" infers it.
	BookAccountScope string `yaml:"book_account_scope"`
	// DefaultDate substitutes for unparseable row dates (YYYY-MM-DD).
	DefaultDate string `yaml:"default_date,omitempty"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	JSON bool `yaml:"json"`
}

// Load reads a ledgerlens.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new project.
func Default(projectName string) *Config {
	return &Config{
		Project: ProjectConfig{Name: projectName},
		Limits:  LimitsConfig{MaxRows: 50000},
		Defaults: DefaultsConfig{
			BookAccountScope: "auto",
		},
	}
}
