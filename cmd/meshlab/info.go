package main

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/smasonuk/meshlab"
)

func newInfoCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print mesh statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatFlag(format, args[0])
			if err != nil {
				return err
			}
			m, err := meshlab.LoadFile(args[0], f)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), args[0], f, m)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "mesh format, default from extension")
	return cmd
}

func printInfo(w io.Writer, path string, f meshlab.Format, m *meshlab.Mesh) {
	out := termenv.NewOutput(w)
	title := out.String(path).Bold()
	key := func(s string) termenv.Style {
		return out.String(fmt.Sprintf("%-10s", s)).Foreground(out.Color("6"))
	}

	adj := meshlab.NewAdjacency(m.VertexCount(), m.Faces)
	isolated := adj.Isolated()

	fmt.Fprintf(w, "%s (%s)\n", title, f)
	fmt.Fprintf(w, "%s %d\n", key("vertices"), m.VertexCount())
	fmt.Fprintf(w, "%s %d\n", key("faces"), m.FaceCount())
	fmt.Fprintf(w, "%s %d\n", key("edges"), adj.EdgeCount())
	if lo, hi, ok := m.Bounds(); ok {
		fmt.Fprintf(w, "%s %s .. %s\n", key("bounds"), vec(lo), vec(hi))
	}
	if len(isolated) > 0 {
		warn := out.String(fmt.Sprintf("%d", len(isolated))).Foreground(out.Color("3"))
		fmt.Fprintf(w, "%s %s\n", key("isolated"), warn)
	} else {
		fmt.Fprintf(w, "%s 0\n", key("isolated"))
	}
}

func vec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}
