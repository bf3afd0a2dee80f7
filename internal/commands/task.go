package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pathakanu/studyPlanner/internal/commands/options"
	"github.com/pathakanu/studyPlanner/internal/projector"
	"github.com/pathakanu/studyPlanner/internal/store"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage study tasks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskUpdate(cmd)
	addTaskToggle(cmd)
	addTaskDelete(cmd)
	addTaskList(cmd)

	topLevel.AddCommand(cmd)
}

func requireTaskID(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires a task id")
	}
	return nil
}

func addTaskAdd(topLevel *cobra.Command) {
	o := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task, optionally linked to a goal.",
		Example: `
studyplanner task add --title "Practice Calculus Problems" --goal <goal id> --due 2026-05-07
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			t, err := a.planner.CreateTask(store.TaskFields{
				Title:       o.Title,
				Description: o.Description,
				GoalID:      o.GoalID,
				DueDate:     o.DueDate,
				Priority:    o.Priority,
			})
			return oo.HandleError(a.result(t, err, "added task %s %q", t.ID, t.Title))
		},
	}

	options.AddTaskArgs(cmd, o)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskUpdate(topLevel *cobra.Command) {
	o := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "update <task id>",
		Short: "Change fields of a task; an empty --goal or --due clears it.",
		Args:  requireTaskID,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			t, err := a.planner.UpdateTask(args[0], store.TaskPatch{
				Title:       options.Changed(cmd, "title", o.Title),
				Description: options.Changed(cmd, "description", o.Description),
				GoalID:      options.Changed(cmd, "goal", o.GoalID),
				DueDate:     options.Changed(cmd, "due", o.DueDate),
				Priority:    options.Changed(cmd, "priority", o.Priority),
			})
			return oo.HandleError(a.result(t, err, "updated task %s %q", t.ID, t.Title))
		},
	}

	options.AddTaskArgs(cmd, o)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "toggle <task id>",
		Aliases: []string{"done", "complete"},
		Short:   "Flip a task between pending and completed.",
		Args:    requireTaskID,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			t, err := a.planner.ToggleTaskCompletion(args[0])
			state := "pending"
			if t.Completed {
				state = "completed"
			}
			return oo.HandleError(a.result(t, err, "task %s %q is now %s", t.ID, t.Title, state))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <task id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task.",
		Args:    requireTaskID,
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

			err = a.planner.DeleteTask(args[0])
			return oo.HandleError(a.result(deleted(args[0]), err, "deleted task %s", args[0]))
		},
	}

	options.AddConfirmArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks.",
		Example: `
studyplanner task list --filter pending
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			filter, err := projector.ParseFilter(fo.Filter)
			if err != nil {
				return oo.HandleError(err)
			}
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			tasks := a.planner.FilteredTasks(filter)
			if oo.JSON {
				return oo.HandleError(a.printer.JSON(tasks))
			}
			a.printer.Tasks(tasks)
			return nil
		},
	}

	options.AddFilterArg(cmd, fo)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("filter", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(projector.FilterAll), string(projector.FilterPending), string(projector.FilterCompleted)}, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
