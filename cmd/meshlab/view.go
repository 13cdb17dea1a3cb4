package main

import (
	"github.com/spf13/cobra"

	"github.com/smasonuk/meshlab/ui"
)

func newViewCmd(root *rootOptions) *cobra.Command {
	var (
		format     string
		watch      bool
		iterations int
		lambda     float64
	)
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Open a mesh in the viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Smoothing.Iterations = iterations
			}
			if cmd.Flags().Changed("lambda") {
				cfg.Smoothing.Lambda = lambda
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			f, err := formatFlag(format, args[0])
			if err != nil {
				return err
			}
			v, err := ui.NewViewer(args[0], f, cfg)
			if err != nil {
				return err
			}
			defer v.Close()
			if watch {
				if err := v.Watch(); err != nil {
					return err
				}
			}
			return v.Run()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "mesh format (obj or off), default from extension")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the mesh when the file changes")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "smoothing iterations")
	cmd.Flags().Float64VarP(&lambda, "lambda", "l", 0, "smoothing factor")
	return cmd
}
