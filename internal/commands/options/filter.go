package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions
type FilterOptions struct {
	Filter string
}

func AddFilterArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "all",
		"Show all, pending or completed tasks.")
}
