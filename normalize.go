package meshlab

import "github.com/go-gl/mathgl/mgl64"

// Bounds returns the axis-aligned bounding box of the vertices. ok is false
// for an empty mesh.
func (m *Mesh) Bounds() (min, max mgl64.Vec3, ok bool) {
	if len(m.Vertices) == 0 {
		return min, max, false
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, p := range m.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
		}
	}
	return min, max, true
}

// Extents returns the size of the bounding box along each axis.
func (m *Mesh) Extents() mgl64.Vec3 {
	min, max, ok := m.Bounds()
	if !ok {
		return mgl64.Vec3{}
	}
	return max.Sub(min)
}

// Normalize moves the bounding box center to the origin and scales uniformly
// so the largest box dimension is 1. Empty meshes are left alone; a mesh whose
// largest dimension is zero is centered but not scaled.
func (m *Mesh) Normalize() {
	min, max, ok := m.Bounds()
	if !ok {
		return
	}
	center := min.Add(max).Mul(0.5)
	size := max.Sub(min)
	maxDim := size[0]
	if size[1] > maxDim {
		maxDim = size[1]
	}
	if size[2] > maxDim {
		maxDim = size[2]
	}

	scale := 1.0
	if maxDim > 0 {
		scale = 1 / maxDim
	}
	for i, p := range m.Vertices {
		m.Vertices[i] = p.Sub(center).Mul(scale)
	}
}
