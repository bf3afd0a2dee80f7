package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pathakanu/studyPlanner/internal/commands/options"
	"github.com/pathakanu/studyPlanner/internal/store"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Manage long-term study goals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoalAdd(cmd)
	addGoalUpdate(cmd)
	addGoalDelete(cmd)
	addGoalList(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalAdd(topLevel *cobra.Command) {
	o := &options.GoalOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal.",
		Example: `
studyplanner goal add --title "Prepare for Math Exam" --deadline 2026-06-01 --priority high
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			g, err := a.planner.CreateGoal(store.GoalFields{
				Title:       o.Title,
				Description: o.Description,
				Deadline:    o.Deadline,
				Priority:    o.Priority,
				Progress:    o.Progress,
			})
			return oo.HandleError(a.result(g, err, "added goal %s %q", g.ID, g.Title))
		},
	}

	options.AddGoalArgs(cmd, o)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGoalUpdate(topLevel *cobra.Command) {
	o := &options.GoalOptions{}

	cmd := &cobra.Command{
		Use:   "update <goal id>",
		Short: "Change fields of a goal; flags left out keep their value.",
		Example: `
studyplanner goal update <goal id> --progress 75
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			g, err := a.planner.UpdateGoal(args[0], store.GoalPatch{
				Title:       options.Changed(cmd, "title", o.Title),
				Description: options.Changed(cmd, "description", o.Description),
				Deadline:    options.Changed(cmd, "deadline", o.Deadline),
				Priority:    options.Changed(cmd, "priority", o.Priority),
				Progress:    options.Changed(cmd, "progress", o.Progress),
			})
			return oo.HandleError(a.result(g, err, "updated goal %s %q", g.ID, g.Title))
		},
	}

	options.AddGoalArgs(cmd, o)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGoalDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <goal id>",
		Aliases: []string{"rm"},
		Short:   "Delete a goal and every task linked to it.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := co.Check(); err != nil {
				return oo.HandleError(err)
			}
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			err = a.planner.DeleteGoal(args[0])
			return oo.HandleError(a.result(deleted(args[0]), err, "deleted goal %s and its tasks", args[0]))
		},
	}

	options.AddConfirmArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGoalList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			goals := a.planner.Goals()
			if oo.JSON {
				return oo.HandleError(a.printer.JSON(goals))
			}
			a.printer.Goals(goals)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func deleted(id string) map[string]string {
	return map[string]string{"deleted": id}
}
