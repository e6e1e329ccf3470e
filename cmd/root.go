package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hvaceng/ductloss/internal/fitting"
	"github.com/hvaceng/ductloss/internal/table"
	"github.com/hvaceng/ductloss/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ductloss",
	Short: "Duct Fitting Pressure Loss Calculator",
	Long: `ductloss - Duct Fitting Pressure Loss Calculator

A CLI tool for estimating airflow pressure losses through duct fittings
from tabulated loss-coefficient reference data.

Each fitting case derives areas, velocities, and dimensionless ratios
from the entered geometry and flow rates, resolves its loss coefficient
against the case's table using directional rounding (with a smooth
inverse-distance-weighted path where discrete lookup is discontinuous),
applies obstruction and Reynolds-number corrections where the case calls
for them, and reports velocity pressures and pressure losses in inches
of water column.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  ductloss v%s — Duct Fitting Pressure Loss Calculator\n", version.Version)
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    cases     List the available fitting cases")
		fmt.Println("    calc      Calculate pressure loss for a fitting case")
		fmt.Println("    details   Show the coefficient profile behind a case")
		fmt.Println()
		fmt.Println("  Use 'ductloss --help' for full usage.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// newRegistry builds the table registry over the built-in reference data.
func newRegistry() *table.Registry {
	return table.NewRegistry(fitting.BuiltinSource())
}
