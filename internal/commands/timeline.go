package commands

import (
	"github.com/spf13/cobra"

	"github.com/pathakanu/studyPlanner/internal/commands/options"
)

func addTimeline(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show goals, completed tasks and upcoming reminders in date order.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			entries := a.planner.Timeline()
			if oo.JSON {
				return oo.HandleError(a.printer.JSON(entries))
			}
			a.printer.Timeline(entries)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
