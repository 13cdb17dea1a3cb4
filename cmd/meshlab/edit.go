package main

import (
	"github.com/spf13/cobra"

	"github.com/smasonuk/meshlab/ui"
)

func newEditCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the 2D sketch editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			return ui.NewSketch(cfg).Run()
		},
	}
}
