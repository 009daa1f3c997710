package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "thermoview",
		Short:   "Heat map viewer for grid thermal sensors",
		Version: version,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPalettesCmd())
	rootCmd.AddCommand(newPortsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
