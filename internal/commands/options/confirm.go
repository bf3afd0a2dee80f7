package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNotConfirmed is returned by destructive commands run without --yes.
var ErrNotConfirmed = errors.New("refusing to delete without --yes")

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Confirm the deletion.")
}

func (o *ConfirmOptions) Check() error {
	if !o.Yes {
		return ErrNotConfirmed
	}
	return nil
}
