package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wcmckee/SortPictures/internal/config"
	"github.com/wcmckee/SortPictures/internal/tui"
)

// newKeysCmd creates the keys command: print the effective bindings, built-in
// and configured, without opening a window.
func newKeysCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "keys",
		Short:         "Show the effective key bindings",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			var err error
			if opts.cfgFile != "" {
				cfg, err = config.LoadConfigFile(opts.cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}

			registry, err := buildRegistry(cfg, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderKeyTable(registry))
			return nil
		},
	}

	addBindingFlags(cmd, opts)
	return cmd
}
