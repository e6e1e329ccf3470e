package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvaceng/ductloss/internal/diagram"
	"github.com/hvaceng/ductloss/internal/fitting"
)

var (
	detailsPoints int
	detailsOut    string
)

var detailsCmd = &cobra.Command{
	Use:   "details [case-id]",
	Short: "Show the coefficient profile behind a case",
	Long: `Render the smooth interpolated coefficient profile for a case's
reference table, independent of the discrete lookup used in calculations.

One-axis cases plot in the terminal; --out additionally writes an image
file (line + tabulated samples). Two-axis cases require --out and export
the interpolated surface as a heat map.

Examples:
  ductloss details A15C
  ductloss details A15C --out a15c.png
  ductloss details A13C --out a13c_surface.png`,
	Args: cobra.ExactArgs(1),
	RunE: runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)

	detailsCmd.Flags().IntVar(&detailsPoints, "points", 60, "Grid points per axis")
	detailsCmd.Flags().StringVar(&detailsOut, "out", "", "Image file to write (.png, .svg, .pdf)")
}

func runDetails(cmd *cobra.Command, args []string) error {
	caseID := args[0]

	detail, ok := fitting.DetailFor(caseID)
	if !ok {
		return fmt.Errorf("case %q has no details view", caseID)
	}

	reg := newRegistry()
	fmt.Println()
	fmt.Println("  " + detail.Description)

	switch detail.Dims() {
	case 1:
		interp, err := detail.Profile(reg)
		if err != nil {
			return err
		}
		gridX, gridC := interp.Grid(detailsPoints)
		caption := fmt.Sprintf("%s: C vs %s", caseID, detail.KeyFields[0])
		fmt.Print(diagram.ProfileASCII(gridX, gridC, caption))

		if detailsOut != "" {
			tableX, tableC := interp.Points()
			if err := diagram.ExportProfile(gridX, gridC, tableX, tableC,
				caption, detail.KeyFields[0], detailsOut); err != nil {
				return err
			}
			fmt.Printf("  wrote %s\n", detailsOut)
		}

	case 2:
		if detailsOut == "" {
			return fmt.Errorf("case %q has a 2D coefficient surface; pass --out to export it", caseID)
		}
		interp, err := detail.Surface(reg)
		if err != nil {
			return err
		}
		xs, ys, cs := interp.Grid(detailsPoints, detailsPoints)
		title := fmt.Sprintf("%s: C over (%s, %s)", caseID, detail.KeyFields[0], detail.KeyFields[1])
		if err := diagram.ExportSurface(xs, ys, cs,
			title, detail.KeyFields[0], detail.KeyFields[1], detailsOut); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", detailsOut)

	default:
		return fmt.Errorf("case %q interpolates over %d axes; only 1D and 2D plots are supported",
			caseID, detail.Dims())
	}

	fmt.Println()
	return nil
}
