package datasource

import (
	"context"
	"fmt"
	"time"

	"barlens/internal/config"
	"barlens/internal/host"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jProvider runs a two-column Cypher query (category, value) against a
// Neo4j database.
type Neo4jProvider struct {
	driver neo4j.DriverWithContext
	dbName string
	query  string
}

// NewNeo4jProvider connects to the configured Neo4j instance.
func NewNeo4jProvider(cfg config.Neo4jConfig) (*Neo4jProvider, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to neo4j: %w", err)
	}

	return &Neo4jProvider{driver: driver, dbName: cfg.Database, query: cfg.Query}, nil
}

func (p *Neo4jProvider) Name() string { return "neo4j" }

// Close releases the driver.
func (p *Neo4jProvider) Close(ctx context.Context) error {
	return p.driver.Close(ctx)
}

func (p *Neo4jProvider) Fetch(ctx context.Context) (*host.DataView, error) {
	session := p.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: p.dbName})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, p.query, nil)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("querying neo4j: %w", err)
	}

	records, ok := result.([]*neo4j.Record)
	if !ok {
		return nil, fmt.Errorf("unexpected neo4j result type %T", result)
	}

	categoryName, valueName := "Category", "Value"
	var categories, values []any
	for _, record := range records {
		if len(record.Keys) < 2 {
			return nil, fmt.Errorf("query must return two columns (category, value), got %d", len(record.Keys))
		}
		categoryName, valueName = record.Keys[0], record.Keys[1]
		categories = append(categories, record.Values[0])
		values = append(values, record.Values[1])
	}
	return newDataView(categoryName, valueName, categories, values), nil
}
