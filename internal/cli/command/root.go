package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ratehub-admin",
	Short: "ratehub-admin - administrative tooling for the rating service",
	Long: `ratehub-admin runs operational tasks against the rating service database.

Use "ratehub-admin command -h" to see all available commands.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
