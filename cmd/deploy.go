package cmd

import (
	"github.com/spf13/cobra"
)

func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Plan, inspect, or run a deployment against the live cluster",
	}
	cmd.AddCommand(newDeployPlanCmd())
	cmd.AddCommand(newDeployDetailCmd())
	cmd.AddCommand(newDeployRunCmd())
	return cmd
}
