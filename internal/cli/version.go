package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the centralbank version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("centralbank", Version)
	},
}
