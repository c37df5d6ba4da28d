package config

// SourceType identifies a data provider.
type SourceType string

const (
	SourceInline SourceType = "inline"
	SourceSystem SourceType = "system"
	SourceDuckDB SourceType = "duckdb"
	SourceNeo4j  SourceType = "neo4j"
)

// Config is the top-level barlens configuration, corresponding to
// .barlens.yml.
type Config struct {
	// Path is where the config was loaded from; Save writes back to it.
	Path string `yaml:"-" koanf:"-"`

	Source  SourceType   `yaml:"source" koanf:"source"`
	Refresh int          `yaml:"refresh" koanf:"refresh"` // seconds between data refreshes
	XAxis   XAxisConfig  `yaml:"xaxis" koanf:"xaxis"`
	Inline  InlineConfig `yaml:"inline" koanf:"inline"`
	DuckDB  DuckDBConfig `yaml:"duckdb" koanf:"duckdb"`
	Neo4j   Neo4jConfig  `yaml:"neo4j" koanf:"neo4j"`
}

// XAxisConfig is the persisted visual setting surface.
type XAxisConfig struct {
	Show bool `yaml:"show" koanf:"show"`
}

// InlineRow is one category/value pair supplied directly in the config.
type InlineRow struct {
	Label string  `yaml:"label" koanf:"label"`
	Value float64 `yaml:"value" koanf:"value"`
}

// InlineConfig feeds the chart from rows in the config file itself.
type InlineConfig struct {
	Category string      `yaml:"category" koanf:"category"` // category column display name
	Value    string      `yaml:"value" koanf:"value"`       // value column display name
	Rows     []InlineRow `yaml:"rows" koanf:"rows"`
}

// DuckDBConfig points the chart at a two-column SQL query.
type DuckDBConfig struct {
	DSN   string `yaml:"dsn" koanf:"dsn"` // empty means in-memory
	Query string `yaml:"query" koanf:"query"`
}

// Neo4jConfig points the chart at a two-column Cypher query.
type Neo4jConfig struct {
	URI      string `yaml:"uri" koanf:"uri"`
	Username string `yaml:"username" koanf:"username"`
	Password string `yaml:"password" koanf:"password"`
	Database string `yaml:"database" koanf:"database"`
	Query    string `yaml:"query" koanf:"query"`
}
