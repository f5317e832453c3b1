// Package config loads reqdash settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/coerce"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// Config holds all reqdash configuration.
type Config struct {
	// Sheet is the sheet to read; empty means the first sheet.
	Sheet string `yaml:"sheet"`
	// Range optionally restricts reading to a cell block (e.g. A1:Q500).
	Range string `yaml:"range"`
	// AutoFilter reads the sheet's AutoFilter block when Range is empty.
	AutoFilter bool `yaml:"autofilter"`
	// ColumnMatch selects header matching: exact, fold, trim or loose.
	ColumnMatch string `yaml:"column_match"`
	// DuplicateKey is the column used for duplicate detection.
	DuplicateKey string `yaml:"duplicate_key"`
	// Booleans overrides the flag spellings.
	Booleans BooleansConfig `yaml:"booleans"`
	// Logging configures the CLI logger.
	Logging LoggingConfig `yaml:"logging"`
}

// BooleansConfig lists the spellings read as true and false. An empty list
// keeps the built-in spellings for that side.
type BooleansConfig struct {
	Truthy []string `yaml:"truthy"`
	Falsy  []string `yaml:"falsy"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ColumnMatch:  string(schema.MatchExact),
		DuplicateKey: schema.RBSIDON,
		Logging:      LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := cfg.MatchMode(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MatchMode returns the parsed column match mode.
func (c Config) MatchMode() (schema.MatchMode, error) {
	return schema.ParseMatchMode(c.ColumnMatch)
}

// BoolTable builds the flag normalisation table.
func (c Config) BoolTable() *coerce.BoolTable {
	truthy, falsy := c.Booleans.Truthy, c.Booleans.Falsy
	if len(truthy) == 0 {
		truthy = coerce.DefaultTruthy
	}
	if len(falsy) == 0 {
		falsy = coerce.DefaultFalsy
	}
	return coerce.NewBoolTable(truthy, falsy)
}
