package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hvaceng/ductloss/internal/fitting"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the available fitting cases",
	Run:   runCases,
}

func init() {
	rootCmd.AddCommand(casesCmd)
}

func runCases(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("AVAILABLE FITTING CASES:")
	fmt.Println("───────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CASE\tSHAPE\tDESCRIPTION")
	for _, id := range fitting.IDs() {
		c, _ := fitting.Lookup(id)
		fmt.Fprintf(w, "  %s\t%s\t%s\n", c.ID, c.Shape, c.Description)
	}
	w.Flush()
	fmt.Println()
}
