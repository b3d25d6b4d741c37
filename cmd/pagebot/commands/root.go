// Package commands holds the pagebot command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pagebot",
		Short:        "A Discord bot paginating embeds with Next and Back buttons",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		NewRunCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pagebot version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "pagebot "+Version)
		},
	}
}
