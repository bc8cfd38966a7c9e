package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Offline admin tasks for the portfolio site",
	}

	cmd.AddCommand(
		newHashPasswordCmd(),
		newDeletePostCmd(),
	)

	return cmd
}
