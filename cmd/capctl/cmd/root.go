// ABOUTME: Root command for capctl CLI
// ABOUTME: Handles global flags and catalog loading

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matan-gr/capacity-advisor1/logger"
	"github.com/matan-gr/capacity-advisor1/services"
)

var jsonOutput bool

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "capctl",
	Short: "CLI for the Capacity Advisor",
	Long: `capctl simulates spot capacity obtainability across zones.

The simulation engine runs locally against the embedded catalog, so no
backend is required.

Environment Variables:
  CATALOG_OVERRIDES  Semicolon-separated path=value pairs applied to the catalog
  LOG_LEVEL          debug, info, warn, error (default: warn)`,
}

// Execute runs the root command
func Execute() error {
	logger.InitCLI()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// loadCatalog builds the catalog with any configured overrides applied.
func loadCatalog() (*services.Catalog, error) {
	return services.NewCatalogWithOverrides(os.Getenv("CATALOG_OVERRIDES"))
}
