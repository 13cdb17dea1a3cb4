package meshlab

import "github.com/go-gl/mathgl/mgl64"

// Smoother holds the parameters of a Laplacian smoothing run.
type Smoother struct {
	Iterations int
	Lambda     float64
}

// Apply smooths m in place using adj. See Mesh.Smooth.
func (s Smoother) Apply(m *Mesh, adj *Adjacency) {
	m.Smooth(adj, s.Iterations, s.Lambda)
}

// Smooth runs iterations Laplacian passes. Each pass moves every vertex by
// lambda times the offset to the mean of its neighbors, reading only the
// previous pass's positions. Vertices without neighbors stay put. Normals are
// recomputed once at the end. Zero iterations, an edgeless graph, or a graph
// built for a different vertex count do nothing.
//
// Each pass writes into a separate buffer and swaps it in whole, so a reader of
// m.Vertices between passes never sees a partially updated generation. lambda
// is not range checked.
func (m *Mesh) Smooth(adj *Adjacency, iterations int, lambda float64) {
	if m.smoothPositions(adj, iterations, lambda) {
		m.CalculateNormals()
	}
}

// smoothPositions runs the passes without touching normals and reports
// whether any pass ran.
func (m *Mesh) smoothPositions(adj *Adjacency, iterations int, lambda float64) bool {
	if iterations <= 0 || adj == nil || adj.IsEmpty() || adj.Len() != len(m.Vertices) {
		return false
	}
	// The caller's slice is never written; two fresh buffers alternate.
	var bufs [2][]mgl64.Vec3
	cur := m.Vertices
	for it := 0; it < iterations; it++ {
		dst := bufs[it%2]
		if dst == nil {
			dst = make([]mgl64.Vec3, len(cur))
			bufs[it%2] = dst
		}
		laplacianPass(cur, dst, adj, lambda)
		cur = dst
	}
	m.Vertices = cur
	return true
}

func laplacianPass(src, dst []mgl64.Vec3, adj *Adjacency, lambda float64) {
	for i, p := range src {
		nbrs := adj.Neighbors(i)
		if len(nbrs) == 0 {
			dst[i] = p
			continue
		}
		var sum mgl64.Vec3
		for _, n := range nbrs {
			sum = sum.Add(src[n])
		}
		centroid := sum.Mul(1 / float64(len(nbrs)))
		dst[i] = p.Add(centroid.Sub(p).Mul(lambda))
	}
}
