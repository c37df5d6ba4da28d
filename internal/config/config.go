// Package config loads the host application's configuration: which data
// source feeds the chart, how often to refresh, and the persisted visual
// objects (the chart's own settings surface).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BARLENS_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// BARLENS_SOURCE -> source, BARLENS_DUCKDB_DSN -> duckdb.dsn, etc.
	if err := k.Load(env.Provider("BARLENS_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "BARLENS_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Path = path
	return cfg, nil
}

// Save writes the configuration back to the given YAML file path. The host
// uses this to persist visual settings changed at runtime.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validSources is the set of recognized data source names.
var validSources = map[SourceType]bool{
	SourceInline: true,
	SourceSystem: true,
	SourceDuckDB: true,
	SourceNeo4j:  true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if !validSources[c.Source] {
		return fmt.Errorf("invalid source %q: must be one of inline, system, duckdb, neo4j", c.Source)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("refresh must be positive, got %d", c.Refresh)
	}
	switch c.Source {
	case SourceDuckDB:
		if c.DuckDB.Query == "" {
			return fmt.Errorf("duckdb.query is required for the duckdb source")
		}
	case SourceNeo4j:
		if c.Neo4j.URI == "" {
			return fmt.Errorf("neo4j.uri is required for the neo4j source")
		}
		if c.Neo4j.Query == "" {
			return fmt.Errorf("neo4j.query is required for the neo4j source")
		}
	case SourceInline:
		if len(c.Inline.Rows) == 0 {
			return fmt.Errorf("inline.rows must not be empty for the inline source")
		}
	}
	return nil
}
