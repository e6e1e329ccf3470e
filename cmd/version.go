package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvaceng/ductloss/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ductloss",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ductloss v%s\n", version.Version)
		fmt.Println("Duct Fitting Pressure Loss Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
