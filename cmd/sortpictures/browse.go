package main

import (
	"github.com/spf13/cobra"

	"github.com/wcmckee/SortPictures/internal/tui"
)

// newBrowseCmd creates the browse command: the same sequence and bindings as
// the window viewer, driven from the terminal.
func newBrowseCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "browse [flags] item ...",
		Short:         "Step through the files in the terminal instead of a window",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildSession(cmd, opts, args)
			if err != nil {
				return err
			}
			return tui.New(s.seq, s.registry).Run()
		},
	}

	addSessionFlags(cmd, opts)
	return cmd
}
