package meshlab

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertUnitCentered(t *testing.T, m *Mesh) {
	t.Helper()
	min, max, ok := m.Bounds()
	require.True(t, ok)
	center := min.Add(max).Mul(0.5)
	assert.True(t, vecAlmostEqual(center, mgl64.Vec3{}), "center %v", center)
	size := max.Sub(min)
	assert.InDelta(t, 1.0, size[maxAxis(size)], 1e-12)
}

func maxAxis(v mgl64.Vec3) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if v[i] > v[axis] {
			axis = i
		}
	}
	return axis
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		vertices []mgl64.Vec3
		want     []mgl64.Vec3
	}{
		{
			name:     "offset box",
			vertices: []mgl64.Vec3{{10, 10, 10}, {14, 12, 11}},
			want:     []mgl64.Vec3{{-0.5, -0.25, -0.125}, {0.5, 0.25, 0.125}},
		},
		{
			name:     "single point is centered only",
			vertices: []mgl64.Vec3{{3, -2, 7}},
			want:     []mgl64.Vec3{{0, 0, 0}},
		},
		{
			name:     "coincident points",
			vertices: []mgl64.Vec3{{1, 1, 1}, {1, 1, 1}},
			want:     []mgl64.Vec3{{0, 0, 0}, {0, 0, 0}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &Mesh{Vertices: tc.vertices}
			m.Normalize()
			for i := range tc.want {
				assert.True(t, vecAlmostEqual(m.Vertices[i], tc.want[i]), "vertex %d = %v, want %v", i, m.Vertices[i], tc.want[i])
			}
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	m := &Mesh{}
	m.Normalize()
	assert.Empty(t, m.Vertices)
	_, _, ok := m.Bounds()
	assert.False(t, ok)
}

func TestNormalizeIdempotent(t *testing.T) {
	m := gridMesh(4)
	m.Vertices[5][2] = 3.5
	m.Normalize()
	assertUnitCentered(t, m)

	once := m.Copy()
	m.Normalize()
	for i := range m.Vertices {
		assert.InDelta(t, 0, m.Vertices[i].Sub(once.Vertices[i]).Len(), 1e-12, "vertex %d moved", i)
	}
}

func TestExtents(t *testing.T) {
	m := gridMesh(3)
	assert.Equal(t, mgl64.Vec3{2, 2, 0}, m.Extents())
	assert.Equal(t, mgl64.Vec3{}, (&Mesh{}).Extents())
}
