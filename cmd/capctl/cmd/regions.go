// ABOUTME: Regions command for capctl CLI
// ABOUTME: Lists catalog regions and their zones

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List regions and their zones",
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runRegions(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(w io.Writer) int {
	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	regions := catalog.Regions()

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(regions, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, titleStyle.Render("Regions"))
	for _, region := range regions {
		fmt.Fprintf(w, "%s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-18s", region.Name)),
			mutedStyle.Render(strings.Join(region.Zones, ", ")),
		)
	}
	return 0
}
