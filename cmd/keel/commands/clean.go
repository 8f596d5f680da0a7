package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/keel/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [suite-root]",
		Short: "Clean the build outputs and cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, _ := cmd.Flags().GetBool("cache")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{}

			switch {
			case all:
				opts.Target = true
				opts.Cache = true
			case cache:
				opts.Cache = true
			default:
				// Default behavior: clean build outputs
				opts.Target = true
			}

			return c.app.Clean(cmd.Context(), rootArg(args), opts)
		},
	}

	cmd.Flags().BoolP("cache", "c", false, "Clean the build cache only")
	cmd.Flags().BoolP("all", "a", false, "Clean the build outputs and the build cache")

	return cmd
}
