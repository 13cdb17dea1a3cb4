package meshlab

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spikedGrid is a 5x5 grid whose center vertex (index 12) is lifted by 1.
func spikedGrid() *Mesh {
	m := gridMesh(5)
	m.Vertices[12][2] = 1
	m.CalculateNormals()
	return m
}

func TestSmoothLambdaZeroIsNoop(t *testing.T) {
	m := spikedGrid()
	before := m.Copy()
	m.Smooth(NewAdjacency(len(m.Vertices), m.Faces), 7, 0)
	assert.Equal(t, before.Vertices, m.Vertices)
}

func TestSmoothZeroIterationsIsNoop(t *testing.T) {
	m := spikedGrid()
	m.Normals[0] = mgl64.Vec3{9, 9, 9} // would be overwritten by a recompute
	before := m.Copy()
	m.Smooth(NewAdjacency(len(m.Vertices), m.Faces), 0, 0.5)
	assert.Equal(t, before, m)
}

func TestSmoothWithoutEdgesIsNoop(t *testing.T) {
	m := &Mesh{Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 1, 1}}}
	m.CalculateNormals()
	before := m.Copy()
	m.Smooth(NewAdjacency(2, nil), 5, 0.5)
	assert.Equal(t, before, m)
}

func TestSmoothStaleAdjacencyIsNoop(t *testing.T) {
	m := spikedGrid()
	before := m.Copy()
	m.Smooth(NewAdjacency(3, []Face{{0, 1, 2}}), 3, 0.5)
	assert.Equal(t, before, m)
}

func TestSmoothSimultaneousUpdate(t *testing.T) {
	// Path-like triangle: every vertex must read the other two at their
	// previous positions, whatever the iteration order.
	m := &Mesh{
		Vertices: []mgl64.Vec3{{0, 0, 0}, {4, 0, 0}, {0, 4, 0}},
		Faces:    []Face{{0, 1, 2}},
	}
	m.Smooth(NewAdjacency(3, m.Faces), 1, 0.5)

	want := []mgl64.Vec3{{1, 1, 0}, {2, 1, 0}, {1, 2, 0}}
	for i := range want {
		assert.True(t, vecAlmostEqual(m.Vertices[i], want[i]), "vertex %d = %v, want %v", i, m.Vertices[i], want[i])
	}
}

func TestSmoothDoesNotWriteCallerSlice(t *testing.T) {
	m := spikedGrid()
	original := m.Vertices
	snapshot := append([]mgl64.Vec3(nil), original...)
	m.Smooth(NewAdjacency(len(m.Vertices), m.Faces), 3, 0.5)
	assert.Equal(t, snapshot, original)
	assert.NotEqual(t, snapshot, m.Vertices)
}

func TestSmoothIsolatedVertexStays(t *testing.T) {
	m := &Mesh{
		Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {7, 7, 7}},
		Faces:    []Face{{0, 1, 2}},
	}
	m.Smooth(NewAdjacency(4, m.Faces), 4, 0.5)
	assert.Equal(t, mgl64.Vec3{7, 7, 7}, m.Vertices[3])
}

func TestSmoothRecomputesNormals(t *testing.T) {
	m := spikedGrid()
	m.Smooth(NewAdjacency(len(m.Vertices), m.Faces), 2, 0.5)
	require.Len(t, m.Normals, len(m.Vertices))
	assert.Equal(t, ComputeNormals(m.Vertices, m.Faces), m.Normals)
}

func TestSmoothConvergesOnGrid(t *testing.T) {
	m := spikedGrid()
	adj := NewAdjacency(len(m.Vertices), m.Faces)
	const center = 12

	offset := func() float64 {
		var sum mgl64.Vec3
		for _, n := range adj.Neighbors(center) {
			sum = sum.Add(m.Vertices[n])
		}
		return sum.Mul(1 / float64(adj.Degree(center))).Sub(m.Vertices[center]).Len()
	}

	prev := offset()
	assert.InDelta(t, 1.0, prev, 1e-12)
	for it := 1; it <= 10; it++ {
		m.Smooth(adj, 1, 0.5)
		d := offset()
		assert.Less(t, d, prev, "iteration %d", it)
		prev = d
	}
	// The spike's first two steps: 1 -> 0.375 -> 0.1875.
	m2 := spikedGrid()
	m2.Smooth(adj, 2, 0.5)
	assert.InDelta(t, 0.3125, m2.Vertices[center][2], 1e-12)
}

func TestSmootherApply(t *testing.T) {
	a, b := spikedGrid(), spikedGrid()
	adj := NewAdjacency(len(a.Vertices), a.Faces)
	Smoother{Iterations: 3, Lambda: 0.3}.Apply(a, adj)
	b.Smooth(adj, 3, 0.3)
	assert.Equal(t, b.Vertices, a.Vertices)
}
