// ABOUTME: Score command for capctl CLI
// ABOUTME: Explains the score a single zone receives for a placement

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matan-gr/capacity-advisor1/services"
)

var (
	scoreRegion      string
	scoreZone        string
	scoreMachineType string
	scoreCount       int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Explain the capacity score for a single zone",
	Long: `Explain the capacity score for a single zone, including the simulated
pool depth and scarcity ratio behind the metric pair.`,
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runScore(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreRegion, "region", "", "Region containing the zone (required)")
	scoreCmd.Flags().StringVar(&scoreZone, "zone", "", "Zone to score (required)")
	scoreCmd.Flags().StringVar(&scoreMachineType, "machine-type", "", "Machine type to score (required)")
	scoreCmd.Flags().IntVar(&scoreCount, "count", 1, "Instance count")
	scoreCmd.MarkFlagRequired("region")
	scoreCmd.MarkFlagRequired("zone")
	scoreCmd.MarkFlagRequired("machine-type")
}

func runScore(w io.Writer) int {
	if scoreCount < 0 {
		fmt.Fprintln(w, "Error: --count must not be negative")
		return 2
	}

	calc := services.NewScoreCalculator()
	score := calc.Explain(scoreMachineType, scoreRegion, scoreZone, scoreCount)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(score, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Zone score: %s", scoreZone)))
	fmt.Fprintf(w, "%s %s (%s, %s)\n", headerStyle.Render("Machine type:"), score.MachineType, score.Family, score.Generation)
	fmt.Fprintf(w, "%s %d\n", headerStyle.Render("Count:"), score.Count)
	fmt.Fprintf(w, "%s %d\n", headerStyle.Render("Pool depth:"), score.PoolDepth)
	fmt.Fprintf(w, "%s %.2f\n", headerStyle.Render("Demand multiplier:"), score.Multiplier)
	fmt.Fprintf(w, "%s %.4f\n", headerStyle.Render("Scarcity ratio:"), score.ScarcityRatio)
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Obtainability:"), scoreStyle(score.Obtainability).Render(fmt.Sprintf("%.3f", score.Obtainability)))
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Uptime:"), scoreStyle(score.Uptime).Render(fmt.Sprintf("%.3f", score.Uptime)))
	return 0
}
