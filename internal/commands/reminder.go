package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pathakanu/studyPlanner/internal/commands/options"
	"github.com/pathakanu/studyPlanner/internal/store"
)

func addReminder(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"reminders"},
		Short:   "Manage dated reminders.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addReminderAdd(cmd)
	addReminderUpdate(cmd)
	addReminderDelete(cmd)
	addReminderList(cmd)

	topLevel.AddCommand(cmd)
}

func requireReminderID(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires a reminder id")
	}
	return nil
}

func addReminderAdd(topLevel *cobra.Command) {
	o := &options.ReminderOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a reminder.",
		Example: `
studyplanner reminder add --title "Study Session" --date 2026-05-05 --time 19:00 --type study
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			r, err := a.planner.CreateReminder(store.ReminderFields{
				Title:       o.Title,
				Description: o.Description,
				Date:        o.Date,
				Time:        o.Time,
				Type:        o.Type,
			})
			return oo.HandleError(a.result(r, err, "added reminder %s %q", r.ID, r.Title))
		},
	}

	options.AddReminderArgs(cmd, o)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addReminderUpdate(topLevel *cobra.Command) {
	o := &options.ReminderOptions{}

	cmd := &cobra.Command{
		Use:   "update <reminder id>",
		Short: "Change fields of a reminder; flags left out keep their value.",
		Args:  requireReminderID,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			r, err := a.planner.UpdateReminder(args[0], store.ReminderPatch{
				Title:       options.Changed(cmd, "title", o.Title),
				Description: options.Changed(cmd, "description", o.Description),
				Date:        options.Changed(cmd, "date", o.Date),
				Time:        options.Changed(cmd, "time", o.Time),
				Type:        options.Changed(cmd, "type", o.Type),
			})
			return oo.HandleError(a.result(r, err, "updated reminder %s %q", r.ID, r.Title))
		},
	}

	options.AddReminderArgs(cmd, o)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addReminderDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <reminder id>",
		Aliases: []string{"rm"},
		Short:   "Delete a reminder.",
		Args:    requireReminderID,
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

			err = a.planner.DeleteReminder(args[0])
			return oo.HandleError(a.result(deleted(args[0]), err, "deleted reminder %s", args[0]))
		},
	}

	options.AddConfirmArg(cmd, co)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addReminderList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List reminders in date order with their urgency.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(cmd.OutOrStdout())
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.close()

			reminders := a.planner.SortedReminders()
			if oo.JSON {
				return oo.HandleError(a.printer.JSON(reminders))
			}
			a.printer.Reminders(reminders)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
