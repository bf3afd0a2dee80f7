package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/pathakanu/studyPlanner/internal/commands/options"
)

var (
	oo = &options.OutputOptions{}
	bo = &options.BackendOptions{}

	logger *log.Logger
)

// New builds the root command. Errors are returned to the caller, which
// reports them through l; every command logs through l as well.
func New(l *log.Logger) *cobra.Command {
	logger = l
	cmd := &cobra.Command{
		Use:           "studyplanner",
		Short:         "Plan study goals, tasks and reminders from the command line.",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddBackendArg(cmd, bo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGoal(topLevel)
	addTask(topLevel)
	addReminder(topLevel)
	addTimeline(topLevel)
	addTheme(topLevel)
	addSeed(topLevel)
	addWatch(topLevel)
}
