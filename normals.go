package meshlab

import "github.com/go-gl/mathgl/mgl64"

// ComputeNormals returns one normal per vertex. Each face contributes the unit
// normal of its first three corners to every vertex it references; the sums
// are then normalized. Vertices without a usable contribution keep the zero
// vector.
func ComputeNormals(vertices []mgl64.Vec3, faces []Face) []mgl64.Vec3 {
	acc := make([]mgl64.Vec3, len(vertices))
	for _, f := range faces {
		if len(f) < 3 {
			continue
		}
		n := faceNormal(vertices[f[0]], vertices[f[1]], vertices[f[2]])
		for _, idx := range f {
			acc[idx] = acc[idx].Add(n)
		}
	}
	for i := range acc {
		acc[i] = safeNormalize(acc[i])
	}
	return acc
}

// CalculateNormals recomputes m.Normals from the current positions.
func (m *Mesh) CalculateNormals() {
	m.Normals = ComputeNormals(m.Vertices, m.Faces)
}

// faceNormal is zero for collinear or coincident corners.
func faceNormal(v0, v1, v2 mgl64.Vec3) mgl64.Vec3 {
	return safeNormalize(v1.Sub(v0).Cross(v2.Sub(v0)))
}

// mgl64's Normalize divides by the length unconditionally.
func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
