package datasource

import (
	"context"
	"testing"

	"barlens/internal/config"
)

func TestForConfig(t *testing.T) {
	tests := []struct {
		source   config.SourceType
		wantName string
	}{
		{config.SourceInline, "inline"},
		{config.SourceSystem, "system"},
	}
	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Source = tt.source
			p, err := ForConfig(cfg)
			if err != nil {
				t.Fatalf("ForConfig: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("expected provider %q, got %q", tt.wantName, p.Name())
			}
		})
	}
}

func TestForConfigUnknownSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source = "csv"
	if _, err := ForConfig(cfg); err == nil {
		t.Error("expected an error for an unknown source")
	}
}

func TestInlineProviderFetch(t *testing.T) {
	p := NewInlineProvider(config.InlineConfig{
		Category: "Region",
		Value:    "Revenue",
		Rows: []config.InlineRow{
			{Label: "North", Value: 12},
			{Label: "South", Value: 7},
		},
	})

	dv, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if dv.Categorical == nil || len(dv.Categorical.Categories) != 1 || len(dv.Categorical.Values) != 1 {
		t.Fatal("expected one category column and one value column")
	}

	cat := dv.Categorical.Categories[0]
	if cat.Source.DisplayName != "Region" {
		t.Errorf("expected category display name Region, got %q", cat.Source.DisplayName)
	}
	if len(cat.Values) != 2 || cat.Values[0] != "North" {
		t.Errorf("unexpected category values %v", cat.Values)
	}

	val := dv.Categorical.Values[0]
	if val.Source.DisplayName != "Revenue" {
		t.Errorf("expected value display name Revenue, got %q", val.Source.DisplayName)
	}
	if len(val.Values) != 2 || val.Values[1] != 7.0 {
		t.Errorf("unexpected values %v", val.Values)
	}
}

func TestInlineProviderDefaultColumnNames(t *testing.T) {
	p := NewInlineProvider(config.InlineConfig{
		Rows: []config.InlineRow{{Label: "A", Value: 1}},
	})
	dv, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got := dv.Categorical.Categories[0].Source.DisplayName; got != "Category" {
		t.Errorf("expected default category name, got %q", got)
	}
	if got := dv.Categorical.Values[0].Source.DisplayName; got != "Value" {
		t.Errorf("expected default value name, got %q", got)
	}
}
