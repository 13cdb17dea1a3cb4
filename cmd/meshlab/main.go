// Command meshlab views, smooths and inspects triangle meshes, and hosts a
// small 2D sketch editor.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/smasonuk/meshlab"
	"github.com/smasonuk/meshlab/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "meshlab",
		Short:        "Mesh viewer with Laplacian smoothing",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/meshlab/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newViewCmd(opts),
		newEditCmd(opts),
		newSmoothCmd(opts),
		newInfoCmd(),
		newConfigCmd(opts),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	path := o.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			slog.Warn("using default config", "err", err)
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// formatFlag resolves an optional --format value, falling back to the
// extension of path.
func formatFlag(name, path string) (meshlab.Format, error) {
	if name != "" {
		return meshlab.ParseFormat(name)
	}
	return meshlab.FormatFromPath(path)
}
