// Package commands implements the blogpost command line.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "blogpost",
		Short:         "Blog post CRUD API backed by MongoDB",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default ./config.yaml if present)")

	rootCmd.AddCommand(
		NewServeCommand(&configFile),
		NewSeedCommand(&configFile),
		NewVersionCommand(),
	)

	return rootCmd
}
