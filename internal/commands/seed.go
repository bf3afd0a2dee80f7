package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathakanu/studyPlanner/internal/commands/options"
)

func addSeed(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty planner with sample goals, tasks and a reminder.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			err = a.planner.SeedSample()
			snap := a.planner.Snapshot()
			return oo.HandleError(a.result(snap, err, "added %d goals, %d tasks and %d reminder",
				len(snap.Goals), len(snap.Tasks), len(snap.Reminders)))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
