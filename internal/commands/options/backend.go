package options

import (
	"github.com/spf13/cobra"
)

// BackendOptions
type BackendOptions struct {
	Backend string
}

func AddBackendArg(cmd *cobra.Command, o *BackendOptions) {
	cmd.PersistentFlags().StringVar(&o.Backend, "backend", "",
		`Storage backend to use: "sql", "disk" or "memory". Overrides STORE_BACKEND.`)
}
