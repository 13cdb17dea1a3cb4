package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/meshlab"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func TestProjectOriginToCenter(t *testing.T) {
	pr := NewCamera().Projector(800, 600)
	screen, depth, ok := pr.Project(mgl64.Vec3{})
	require.True(t, ok)
	assert.True(t, almostEqual(screen[0], 400), "x = %f", screen[0])
	assert.True(t, almostEqual(screen[1], 300), "y = %f", screen[1])
	assert.True(t, almostEqual(depth, 5), "depth = %f", depth)
}

func TestProjectAxes(t *testing.T) {
	pr := NewCamera().Projector(800, 600)
	right, _, _ := pr.Project(mgl64.Vec3{0.5, 0, 0})
	up, _, _ := pr.Project(mgl64.Vec3{0, 0.5, 0})
	near, dNear, _ := pr.Project(mgl64.Vec3{0.5, 0, 0.5})
	assert.Greater(t, right[0], 400.0)
	assert.Less(t, up[1], 300.0, "screen y grows downwards")
	assert.Greater(t, near[0], right[0], "closer points spread further from center")
	assert.Less(t, dNear, 5.0)
}

func TestProjectBehindCamera(t *testing.T) {
	pr := NewCamera().Projector(800, 600)
	_, _, ok := pr.Project(mgl64.Vec3{0, 0, 6})
	assert.False(t, ok)
}

func TestCameraControls(t *testing.T) {
	cam := NewCamera()
	base, _, _ := cam.Projector(800, 600).Project(mgl64.Vec3{0.5, 0, 0})

	cam.ZoomIn()
	zoomed, _, _ := cam.Projector(800, 600).Project(mgl64.Vec3{0.5, 0, 0})
	assert.Greater(t, zoomed[0], base[0])
	cam.ZoomOut()
	assert.InDelta(t, 1.0, cam.Zoom, 1e-12)

	cam.Pan(100, 50)
	assert.InDelta(t, 1.0, cam.Translation[0], 1e-12)
	assert.InDelta(t, -0.5, cam.Translation[1], 1e-12)

	cam = NewCamera()
	cam.Rotate(180, 0) // 90 degrees about Y
	pr := cam.Projector(800, 600)
	n := pr.Direction(mgl64.Vec3{0, 0, 1})
	assert.InDelta(t, 1.0, n[0], 1e-9)
	assert.InDelta(t, 0.0, n[2], 1e-9)
}

func TestShade(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	noSpec := DefaultLight()
	noSpec.Specular = 0
	noSpec.Direction = mgl64.Vec3{0, 0, 1}

	testCases := []struct {
		name   string
		light  Light
		normal mgl64.Vec3
		want   color.RGBA
	}{
		{"lighting off", Light{}, mgl64.Vec3{0, 0, 1}, base},
		{"head on", noSpec, mgl64.Vec3{0, 0, 1}, base},
		{"facing away", noSpec, mgl64.Vec3{0, 0, -1}, color.RGBA{R: 40, G: 20, B: 10, A: 255}},
		{"zero normal", noSpec, mgl64.Vec3{}, color.RGBA{R: 40, G: 20, B: 10, A: 255}},
		{"grazing", noSpec, mgl64.Vec3{1, 0, 0}, color.RGBA{R: 40, G: 20, B: 10, A: 255}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.light.Shade(tc.normal, base))
		})
	}
}

func TestShadeSpecularClamps(t *testing.T) {
	l := DefaultLight()
	l.Direction = mgl64.Vec3{0, 0, 1}
	got := l.Shade(mgl64.Vec3{0, 0, 1}, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, got)
}

func twoSquares() *meshlab.Mesh {
	return &meshlab.Mesh{
		Vertices: []mgl64.Vec3{
			{-0.5, -0.5, 0.25}, {0.5, -0.5, 0.25}, {0.5, 0.5, 0.25}, {-0.5, 0.5, 0.25},
			{-0.5, -0.5, -0.25}, {0.5, -0.5, -0.25}, {0.5, 0.5, -0.25}, {-0.5, 0.5, -0.25},
		},
		Faces: []meshlab.Face{{0, 1, 2, 3}, {4, 5, 6, 7}},
	}
}

func TestBuildFramePaintersOrder(t *testing.T) {
	m := twoSquares()
	m.CalculateNormals()
	polys := BuildFrame(m, NewCamera(), 800, 600, FrameOptions{Light: DefaultLight(), Base: DefaultBase})
	require.Len(t, polys, 2)
	assert.Equal(t, 1, polys[0].Face, "back square first")
	assert.Equal(t, 0, polys[1].Face)
	assert.Greater(t, polys[0].Depth, polys[1].Depth)
	assert.Len(t, polys[0].X, 4)
}

func TestBuildFrameWireframeIsUnlit(t *testing.T) {
	m := twoSquares()
	m.CalculateNormals()
	polys := BuildFrame(m, NewCamera(), 800, 600, FrameOptions{Light: DefaultLight(), Base: DefaultBase, Wireframe: true})
	for _, p := range polys {
		assert.Equal(t, DefaultBase, p.Fill)
	}
}

func TestBuildFrameDropsFacesBehindCamera(t *testing.T) {
	m := twoSquares()
	cam := NewCamera()
	cam.Translation = mgl64.Vec3{0, 0, -0.1}
	polys := BuildFrame(m, cam, 800, 600, FrameOptions{Base: DefaultBase})
	require.Len(t, polys, 1)
	assert.Equal(t, 1, polys[0].Face)

	assert.Nil(t, BuildFrame(&meshlab.Mesh{}, cam, 800, 600, FrameOptions{}))
}
