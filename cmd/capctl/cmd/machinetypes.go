// ABOUTME: Machine types command for capctl CLI
// ABOUTME: Lists catalog machine types with family and generation filters

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matan-gr/capacity-advisor1/models"
)

var (
	familyFilter     string
	generationFilter string
)

var machineTypesCmd = &cobra.Command{
	Use:   "machine-types",
	Short: "List machine types in the catalog",
	Long: `List machine types in the catalog, optionally filtered by resource
family and hardware generation.

Families: general_purpose, compute_optimized, memory_optimized,
accelerator_optimized, storage_optimized
Generations: legacy, modern`,
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runMachineTypes(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(machineTypesCmd)
	machineTypesCmd.Flags().StringVar(&familyFilter, "family", "", "Filter by resource family")
	machineTypesCmd.Flags().StringVar(&generationFilter, "generation", "", "Filter by hardware generation")
}

func runMachineTypes(w io.Writer) int {
	family := models.ResourceFamily(strings.ToLower(familyFilter))
	if familyFilter != "" && !family.IsValid() {
		fmt.Fprintf(w, "Error: unknown family %q\n", familyFilter)
		return 2
	}

	generation := models.Generation(strings.ToLower(generationFilter))
	if generationFilter != "" && !generation.IsValid() {
		fmt.Fprintf(w, "Error: unknown generation %q\n", generationFilter)
		return 2
	}

	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	machineTypes := catalog.MachineTypes(family, generation)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(machineTypes, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, titleStyle.Render("Machine Types"))
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-20s %-22s %-8s %6s %9s %5s",
		"NAME", "FAMILY", "GEN", "VCPUS", "MEMORY_GB", "GPUS")))
	for _, mt := range machineTypes {
		fmt.Fprintf(w, "%-20s %-22s %-8s %6d %9.1f %5d\n",
			mt.Name, mt.Family, mt.Generation, mt.VCPUs, mt.MemoryGB, mt.GPUs)
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("\n%d machine type(s)", len(machineTypes))))
	return 0
}
