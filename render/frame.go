package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/meshlab"
)

// Polygon is one projected face ready to draw.
type Polygon struct {
	Face  int
	X, Y  []float32
	Depth float64
	Fill  color.RGBA
}

// FrameOptions control how BuildFrame colors faces.
type FrameOptions struct {
	Light     Light
	Base      color.RGBA
	Wireframe bool
}

// DefaultBase is the unlit surface color.
var DefaultBase = color.RGBA{R: 204, G: 204, B: 204, A: 255}

// BuildFrame projects every face of m into a width x height viewport and
// returns them farthest first, so drawing in order paints nearer faces over
// farther ones. Faces with a corner behind the near plane are dropped.
// Lighting uses the mean of the corner normals and is off in wireframe mode.
func BuildFrame(m *meshlab.Mesh, cam Camera, width, height int, opts FrameOptions) []Polygon {
	if m == nil || len(m.Vertices) == 0 {
		return nil
	}
	pr := cam.Projector(width, height)

	screen := make([]mgl64.Vec2, len(m.Vertices))
	depth := make([]float64, len(m.Vertices))
	visible := make([]bool, len(m.Vertices))
	for i, v := range m.Vertices {
		screen[i], depth[i], visible[i] = pr.Project(v)
	}

	light := opts.Light
	if opts.Wireframe {
		light.Enabled = false
	}

	polys := make([]Polygon, 0, len(m.Faces))
faces:
	for fi, f := range m.Faces {
		if len(f) < 3 {
			continue
		}
		p := Polygon{
			Face: fi,
			X:    make([]float32, len(f)),
			Y:    make([]float32, len(f)),
		}
		var normal mgl64.Vec3
		for j, idx := range f {
			if !visible[idx] {
				continue faces
			}
			p.X[j] = float32(screen[idx][0])
			p.Y[j] = float32(screen[idx][1])
			p.Depth += depth[idx]
			if idx < len(m.Normals) {
				normal = normal.Add(m.Normals[idx])
			}
		}
		p.Depth /= float64(len(f))
		p.Fill = light.Shade(unit(pr.Direction(normal)), opts.Base)
		polys = append(polys, p)
	}

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})
	return polys
}
