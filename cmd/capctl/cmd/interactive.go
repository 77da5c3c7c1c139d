// ABOUTME: Interactive command for capctl CLI
// ABOUTME: Guides a simulation request through a huh form

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build a simulation request interactively",
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runInteractive(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(w io.Writer) int {
	catalog, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	regionOptions := make([]huh.Option[string], 0)
	for _, region := range catalog.Regions() {
		label := fmt.Sprintf("%s (%d zones)", region.Name, len(region.Zones))
		regionOptions = append(regionOptions, huh.NewOption(label, region.Name))
	}

	typeOptions := make([]huh.Option[string], 0)
	for _, mt := range catalog.MachineTypes("", "") {
		label := fmt.Sprintf("%s (%s, %s)", mt.Name, mt.Family, mt.Generation)
		typeOptions = append(typeOptions, huh.NewOption(label, mt.Name))
	}

	var (
		region      string
		machineType string
		countRaw    = "1"
		strategy    = "any"
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Description("Where should the capacity be requested?").
				Options(regionOptions...).
				Value(&region),

			huh.NewSelect[string]().
				Title("Machine type").
				Options(typeOptions...).
				Value(&machineType),

			huh.NewInput().
				Title("Instance count").
				Placeholder("1").
				Validate(validateCountInput).
				Value(&countRaw),

			huh.NewSelect[string]().
				Title("Distribution strategy").
				Options(
					huh.NewOption("Compare zones (any)", "any"),
					huh.NewOption("Single zone", "single_zone"),
					huh.NewOption("Balanced across zones", "balanced"),
				).
				Value(&strategy),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		fmt.Fprintf(w, "Cancelled: %v\n", err)
		return 2
	}

	count, err := strconv.Atoi(countRaw)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid count %q\n", countRaw)
		return 2
	}

	return runSimulation(w, region, machineType, count, strategy)
}

// validateCountInput checks that the form input parses as a non-negative integer.
func validateCountInput(raw string) error {
	count, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("must be an integer")
	}
	if count < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
