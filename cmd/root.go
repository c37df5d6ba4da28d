package cmd

import (
	"fmt"

	"barlens/internal/config"
	"barlens/ui/tui"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	source  string
)

var rootCmd = &cobra.Command{
	Use:   "barlens",
	Short: "Interactive categorical bar chart for the terminal",
	Long: `Barlens renders a categorical bar chart from a configurable data
source (inline rows, live disk usage, a DuckDB query or a Neo4j query)
with cross-highlighting, hover tooltips and click-to-select.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if source != "" {
			cfg.Source = config.SourceType(source)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return tui.Start(cfg)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".barlens.yml", "config file path")
	rootCmd.Flags().StringVar(&source, "source", "", "data source override (inline, system, duckdb, neo4j)")
}
