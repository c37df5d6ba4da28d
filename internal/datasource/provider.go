// Package datasource implements the host's data-query engine: providers
// that fetch a categorical data view (one category column, one value
// column) for the chart to render.
package datasource

import (
	"context"
	"fmt"

	"barlens/internal/config"
	"barlens/internal/host"
)

// Provider fetches a fresh data view for the chart.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (*host.DataView, error)
}

// ForConfig builds the provider selected by the configuration.
func ForConfig(cfg *config.Config) (Provider, error) {
	switch cfg.Source {
	case config.SourceInline:
		return NewInlineProvider(cfg.Inline), nil
	case config.SourceSystem:
		return NewSystemProvider(), nil
	case config.SourceDuckDB:
		return NewDuckDBProvider(cfg.DuckDB)
	case config.SourceNeo4j:
		return NewNeo4jProvider(cfg.Neo4j)
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Source)
	}
}

// newDataView assembles the single categorical shape the chart consumes.
func newDataView(categoryName, valueName string, categories, values []any) *host.DataView {
	return &host.DataView{
		Categorical: &host.Categorical{
			Categories: []*host.CategoryColumn{{
				Source: host.Column{DisplayName: categoryName, QueryName: categoryName},
				Values: categories,
			}},
			Values: []*host.ValueColumn{{
				Source: host.Column{DisplayName: valueName, QueryName: valueName},
				Values: values,
			}},
		},
	}
}

// InlineProvider serves the rows embedded in the configuration file.
type InlineProvider struct {
	cfg config.InlineConfig
}

// NewInlineProvider builds the inline provider.
func NewInlineProvider(cfg config.InlineConfig) *InlineProvider {
	return &InlineProvider{cfg: cfg}
}

func (p *InlineProvider) Name() string { return "inline" }

func (p *InlineProvider) Fetch(ctx context.Context) (*host.DataView, error) {
	categories := make([]any, 0, len(p.cfg.Rows))
	values := make([]any, 0, len(p.cfg.Rows))
	for _, row := range p.cfg.Rows {
		categories = append(categories, row.Label)
		values = append(values, row.Value)
	}
	categoryName := p.cfg.Category
	if categoryName == "" {
		categoryName = "Category"
	}
	valueName := p.cfg.Value
	if valueName == "" {
		valueName = "Value"
	}
	return newDataView(categoryName, valueName, categories, values), nil
}
