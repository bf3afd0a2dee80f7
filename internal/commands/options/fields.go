package options

import (
	"github.com/spf13/cobra"
)

// GoalOptions
type GoalOptions struct {
	Title       string
	Description string
	Deadline    string
	Priority    string
	Progress    string
}

func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "", "Goal title.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "", "Goal description.")
	cmd.Flags().StringVar(&o.Deadline, "deadline", "", `Deadline, example: --deadline="2026-06-30".`)
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "", "Priority: low, medium or high.")
	cmd.Flags().StringVar(&o.Progress, "progress", "", "Progress percentage between 0 and 100.")
}

// TaskOptions
type TaskOptions struct {
	Title       string
	Description string
	GoalID      string
	DueDate     string
	Priority    string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "", "Task title.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "", "Task description.")
	cmd.Flags().StringVarP(&o.GoalID, "goal", "g", "", "Id of the goal this task belongs to.")
	cmd.Flags().StringVar(&o.DueDate, "due", "", `Due date, example: --due="2026-05-07".`)
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "", "Priority: low, medium or high.")
}

// ReminderOptions
type ReminderOptions struct {
	Title       string
	Description string
	Date        string
	Time        string
	Type        string
}

func AddReminderArgs(cmd *cobra.Command, o *ReminderOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "", "Reminder title.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "", "Reminder description.")
	cmd.Flags().StringVar(&o.Date, "date", "", `Date, example: --date="2026-05-04".`)
	cmd.Flags().StringVar(&o.Time, "time", "", `Time of day, example: --time="19:00".`)
	cmd.Flags().StringVar(&o.Type, "type", "", "Type: study, exam, deadline or other.")
}

// Changed returns a pointer to value when the named flag was set on cmd,
// and nil otherwise.
func Changed(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
