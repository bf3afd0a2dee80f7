package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pathakanu/studyPlanner/internal/commands/options"
	"github.com/pathakanu/studyPlanner/internal/store"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the colour theme.",
		ValidArgs: []string{"light", "dark", "toggle"},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one of light, dark or toggle")
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

			var theme store.Theme
			switch {
			case len(args) == 0:
				theme = a.planner.Theme()
			case args[0] == "toggle":
				theme, err = a.planner.ToggleTheme()
			default:
				theme, err = a.planner.SetTheme(args[0])
			}
			return oo.HandleError(a.result(map[string]store.Theme{"theme": theme}, err, "theme: %s", theme))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
