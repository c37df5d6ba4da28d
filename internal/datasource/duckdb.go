package datasource

import (
	"context"
	"database/sql"
	"fmt"

	"barlens/internal/config"
	"barlens/internal/host"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver
)

// DuckDBProvider runs a two-column SQL query (category, value) against an
// embedded DuckDB database.
type DuckDBProvider struct {
	db    *sql.DB
	query string
}

// NewDuckDBProvider opens the configured database. An empty DSN means an
// in-memory database.
func NewDuckDBProvider(cfg config.DuckDBConfig) (*DuckDBProvider, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	// DuckDB is embedded; serial access is often safer/faster
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &DuckDBProvider{db: db, query: cfg.Query}, nil
}

func (p *DuckDBProvider) Name() string { return "duckdb" }

// Close releases the database handle.
func (p *DuckDBProvider) Close() error { return p.db.Close() }

func (p *DuckDBProvider) Fetch(ctx context.Context) (*host.DataView, error) {
	rows, err := p.db.QueryContext(ctx, p.query)
	if err != nil {
		return nil, fmt.Errorf("querying duckdb: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading duckdb columns: %w", err)
	}
	if len(cols) < 2 {
		return nil, fmt.Errorf("query must return two columns (category, value), got %d", len(cols))
	}

	var categories, values []any
	for rows.Next() {
		var category, value any
		if err := rows.Scan(&category, &value); err != nil {
			return nil, fmt.Errorf("scanning duckdb row: %w", err)
		}
		categories = append(categories, category)
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating duckdb rows: %w", err)
	}
	return newDataView(cols[0], cols[1], categories, values), nil
}
