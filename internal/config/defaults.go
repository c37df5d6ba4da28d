package config

// DefaultConfig returns a configuration that renders out of the box: an
// inline sample data set, ten second refresh, axis labels shown.
func DefaultConfig() *Config {
	return &Config{
		Source:  SourceInline,
		Refresh: 10,
		XAxis:   XAxisConfig{Show: true},
		Inline: InlineConfig{
			Category: "Category",
			Value:    "Sales",
			Rows: []InlineRow{
				{Label: "Apparel", Value: 132},
				{Label: "Grocery", Value: 88},
				{Label: "Hardware", Value: 104},
				{Label: "Media", Value: 45},
				{Label: "Outdoors", Value: 71},
			},
		},
		DuckDB: DuckDBConfig{
			Query: "SELECT category, value FROM metrics ORDER BY category",
		},
		Neo4j: Neo4jConfig{
			URI:      "bolt://localhost:7687",
			Username: "neo4j",
			Database: "neo4j",
			Query:    "MATCH (n) RETURN coalesce(labels(n)[0], 'none') AS label, count(*) AS count",
		},
	}
}
