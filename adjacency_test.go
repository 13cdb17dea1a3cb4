package meshlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAdjacency(t *testing.T) {
	testCases := []struct {
		name      string
		vertices  int
		faces     []Face
		neighbors [][]int
		edges     int
	}{
		{
			name:      "single triangle",
			vertices:  3,
			faces:     []Face{{0, 1, 2}},
			neighbors: [][]int{{1, 2}, {0, 2}, {0, 1}},
			edges:     3,
		},
		{
			name:      "two triangles share an edge",
			vertices:  4,
			faces:     []Face{{0, 1, 2}, {2, 1, 3}},
			neighbors: [][]int{{1, 2}, {0, 2, 3}, {0, 1, 3}, {1, 2}},
			edges:     5,
		},
		{
			name:      "quad has no diagonals",
			vertices:  4,
			faces:     []Face{{0, 1, 2, 3}},
			neighbors: [][]int{{1, 3}, {0, 2}, {1, 3}, {0, 2}},
			edges:     4,
		},
		{
			name:      "isolated vertex",
			vertices:  4,
			faces:     []Face{{0, 1, 2}},
			neighbors: [][]int{{1, 2}, {0, 2}, {0, 1}, nil},
			edges:     3,
		},
		{
			name:      "repeated corner adds no self edge",
			vertices:  3,
			faces:     []Face{{0, 1, 1, 2}},
			neighbors: [][]int{{1, 2}, {0, 2}, {0, 1}},
			edges:     3,
		},
		{
			name:      "no faces",
			vertices:  2,
			neighbors: [][]int{nil, nil},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			adj := NewAdjacency(tc.vertices, tc.faces)
			assert.Equal(t, tc.vertices, adj.Len())
			assert.Equal(t, tc.edges, adj.EdgeCount())
			assert.Equal(t, tc.edges == 0, adj.IsEmpty())
			for v, want := range tc.neighbors {
				assert.Equal(t, want, adj.Neighbors(v), "neighbors of %d", v)
				assert.Equal(t, len(want), adj.Degree(v))
			}
		})
	}
}

func TestAdjacencySymmetric(t *testing.T) {
	m := gridMesh(5)
	adj := NewAdjacency(len(m.Vertices), m.Faces)
	for a := 0; a < adj.Len(); a++ {
		for _, b := range adj.Neighbors(a) {
			assert.Contains(t, adj.Neighbors(b), a, "%d-%d not symmetric", a, b)
		}
	}
	// 5x5 grid: 2*5*4 unique edges, corner degree 2, interior degree 4.
	assert.Equal(t, 40, adj.EdgeCount())
	assert.Equal(t, 2, adj.Degree(0))
	assert.Equal(t, 4, adj.Degree(12))
}

func TestAdjacencyIsolated(t *testing.T) {
	adj := NewAdjacency(5, []Face{{0, 1, 2}})
	assert.Equal(t, []int{3, 4}, adj.Isolated())
}
