package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/keel/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [suite-root]",
		Short: "Build every project of the suite",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			jobs, _ := cmd.Flags().GetInt("jobs")
			listOutputs, _ := cmd.Flags().GetBool("outputs")

			report, err := c.app.Build(cmd.Context(), rootArg(args), app.BuildOptions{
				NoCache:     noCache,
				Parallelism: jobs,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "built %s: %d outputs from %d builders (run %s)\n",
				report.Suite, report.Outputs.Len(), report.Builders, report.RunID)
			if listOutputs {
				for _, p := range report.Outputs.Sorted() {
					_, _ = fmt.Fprintln(out, p.String())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the build cache and force execution")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum number of builders running at once (0 uses the configured value)")
	cmd.Flags().Bool("outputs", false, "List the produced target paths")
	return cmd
}
