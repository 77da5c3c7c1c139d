// ABOUTME: Simulate command for capctl CLI
// ABOUTME: Runs a capacity simulation with threshold checks for CI/CD

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matan-gr/capacity-advisor1/models"
	"github.com/matan-gr/capacity-advisor1/services"
)

var (
	simRegion       string
	simMachineType  string
	simCount        int
	simDistribution string
	minObtainable   float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate spot capacity for a placement request",
	Long: `Simulate spot capacity obtainability for a placement request.

With --min-obtainability, the command exits non-zero when the best
recommendation scores below the threshold, for use in CI/CD pipelines.

Exit codes:
  0 - Simulation succeeded (and threshold met, if set)
  1 - Best obtainability below --min-obtainability
  2 - Error (unknown region, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runSimulate(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVar(&simRegion, "region", "", "Region to simulate (required)")
	simulateCmd.Flags().StringVar(&simMachineType, "machine-type", "", "Machine type to simulate (required)")
	simulateCmd.Flags().IntVar(&simCount, "count", 1, "Instance count")
	simulateCmd.Flags().StringVar(&simDistribution, "distribution", "any", "Distribution strategy: any, single_zone, balanced")
	simulateCmd.Flags().Float64Var(&minObtainable, "min-obtainability", 0, "Fail if best obtainability is below this value")
	simulateCmd.MarkFlagRequired("region")
	simulateCmd.MarkFlagRequired("machine-type")
}

func runSimulate(w io.Writer) int {
	return runSimulation(w, simRegion, simMachineType, simCount, simDistribution)
}

// runSimulation executes a simulation and renders the result. Shared with
// the interactive command.
func runSimulation(w io.Writer, region, machineType string, count int, strategyRaw string) int {
	if minObtainable < 0 || minObtainable > 1 {
		fmt.Fprintln(w, "Error: --min-obtainability must be between 0 and 1")
		return 2
	}

	strategy, err := models.ParseDistributionStrategy(strategyRaw)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	zones, err := catalog.Zones(region)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	advisor := services.NewAdvisor()
	result, err := advisor.Advise(region, machineType, count, strategy, zones)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		renderRecommendations(w, region, machineType, count, strategy, result.Recommendations)
	}

	if minObtainable > 0 && len(result.Recommendations) > 0 {
		best := result.Recommendations[0].Obtainability()
		if best < minObtainable {
			fmt.Fprintln(w, dangerStyle.Render(fmt.Sprintf(
				"\nFAILED: best obtainability %.3f below threshold %.3f", best, minObtainable)))
			return 1
		}
		fmt.Fprintln(w, goodStyle.Render(fmt.Sprintf(
			"\nPASSED: best obtainability %.3f meets threshold %.3f", best, minObtainable)))
	}

	return 0
}

// renderRecommendations prints a styled table of simulation results.
func renderRecommendations(w io.Writer, region, machineType string, count int, strategy models.DistributionStrategy, recs []models.Recommendation) {
	family, generation := services.Classify(machineType)

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Capacity simulation: %d x %s in %s", count, machineType, region)))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("family=%s generation=%s strategy=%s", family, generation, strategy)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-4s %-14s %-9s %s", "#", "OBTAINABILITY", "UPTIME", "PLACEMENT")))
	for i, rec := range recs {
		obtainability := rec.Obtainability()
		placement := ""
		for j, shard := range rec.Shards {
			if j > 0 {
				placement += "  "
			}
			placement += fmt.Sprintf("%s=%d", shard.Location, shard.Count)
		}
		fmt.Fprintf(w, "%-4d %s %-9.3f %s\n",
			i+1,
			scoreStyle(obtainability).Render(fmt.Sprintf("%-14.3f", obtainability)),
			rec.Uptime(),
			placement,
		)
	}
}
