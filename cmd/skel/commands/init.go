package commands

import (
	"github.com/spf13/cobra"
	"go.skel.dev/skel/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the workspace directory tree and dependency manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return c.app.Provision(cmd.Context(), app.ProvisionOptions{
				DryRun: dryRun,
			})
		},
	}

	cmd.Flags().BoolP("dry-run", "n", false, "Print the actions that would be taken without touching the filesystem")

	return cmd
}
