package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/hvaceng/ductloss/internal/diagram"
	"github.com/hvaceng/ductloss/internal/fitting"
	"github.com/hvaceng/ductloss/internal/pipeline"
	"github.com/hvaceng/ductloss/internal/table"
)

var (
	calcEntries []string
	calcDebug   bool
)

var calcCmd = &cobra.Command{
	Use:   "calc [case-id]",
	Short: "Calculate pressure loss for a fitting case",
	Long: `Run one fitting case against the entered geometry and flow rates.

Entries are positional keys in the engine's standard units: inches for
lengths and diameters, cfm for flow rates. Categorical entries (like an
obstruction type) take their value verbatim.

Examples:
  # Round smooth elbow: D=12 in, R/D=1.5, 90° bend, 1000 cfm
  ductloss calc A7A --in entry_1=12 --in entry_2=1.5 --in entry_3=90 --in entry_4=1000

  # Orifice with a wire screen (free area ratio 0.6)
  ductloss calc A12A1 --in entry_1=0.5 --in entry_2=2 --in entry_3=10 \
    --in entry_4=800 --in entry_5="screen" --in entry_6=0.6`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringArrayVar(&calcEntries, "in", nil, "Entry as key=value (repeatable)")
	calcCmd.Flags().BoolVar(&calcDebug, "debug", false, "Dump the raw result structure")
}

func runCalc(cmd *cobra.Command, args []string) error {
	caseID := args[0]

	inputs, err := parseEntries(calcEntries)
	if err != nil {
		return err
	}

	res, err := fitting.Calculate(newRegistry(), caseID, inputs)
	if err != nil {
		return err
	}

	c, _ := fitting.Lookup(caseID)
	printResult(c, res)

	if calcDebug {
		fmt.Println(spew.Sdump(res))
	}
	return nil
}

// parseEntries turns repeated key=value flags into pipeline inputs. Values
// that parse as numbers are numeric; everything else is categorical.
func parseEntries(entries []string) (pipeline.Inputs, error) {
	in := pipeline.Inputs{}
	for _, e := range entries {
		key, val, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("entry %q is not key=value", e)
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if n, err := strconv.ParseFloat(val, 64); err == nil {
			in[key] = table.Num(n)
		} else {
			in[key] = table.Text(val)
		}
	}
	return in, nil
}

func printResult(c *pipeline.Case, res *pipeline.Result) {
	title := fmt.Sprintf("%s — %s", c.ID, c.Description)

	var lines []string
	if res.Failed() {
		lines = append(lines, "Error: "+res.Error)
	} else {
		for _, label := range res.Labels() {
			if v, ok := res.Value(label); ok {
				lines = append(lines, fmt.Sprintf("%s: %.4f", label, v))
			} else {
				lines = append(lines, label+": —")
			}
		}
		if res.Warning != "" {
			lines = append(lines, "Warning: "+res.Warning)
		}
	}

	fmt.Println()
	fmt.Print(diagram.SummaryBox(title, lines))
	fmt.Println()
}
