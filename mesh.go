package meshlab

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidMesh is returned when faces reference vertices that do not exist
// or have fewer than three corners.
var ErrInvalidMesh = errors.New("invalid mesh")

// Face is a polygon given as indices into Mesh.Vertices.
type Face []int

// Mesh is an indexed polygon mesh. Vertex indices are stable for the lifetime
// of the mesh; Normals is derived data, one unit vector per vertex.
type Mesh struct {
	Vertices []mgl64.Vec3
	Faces    []Face
	Normals  []mgl64.Vec3
}

// NewMesh builds a mesh from vertices and faces and checks every face index.
// Normals are not computed.
func NewMesh(vertices []mgl64.Vec3, faces []Face) (*Mesh, error) {
	m := &Mesh{Vertices: vertices, Faces: faces}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that each face has at least three corners, that each index
// is in range, and that normals (when present) match the vertex count.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrInvalidMesh, i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: face %d references vertex %d, have %d", ErrInvalidMesh, i, idx, n)
			}
		}
	}
	if m.Normals != nil && len(m.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrInvalidMesh, len(m.Normals), n)
	}
	return nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no vertices.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Copy returns a deep copy; nothing is shared with m.
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Vertices: make([]mgl64.Vec3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(c.Vertices, m.Vertices)
	for i, f := range m.Faces {
		c.Faces[i] = append(Face(nil), f...)
	}
	if m.Normals != nil {
		c.Normals = make([]mgl64.Vec3, len(m.Normals))
		copy(c.Normals, m.Normals)
	}
	return c
}
