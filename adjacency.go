package meshlab

import "slices"

// Adjacency maps each vertex to its distinct neighbors along face boundaries.
// It is symmetric and only valid for the faces it was built from.
type Adjacency struct {
	neighbors [][]int
	edges     int
}

// NewAdjacency builds the vertex graph of faces. Every consecutive pair of a
// face boundary, including last-to-first, is an undirected edge. Vertices not
// referenced by any face have no neighbors.
func NewAdjacency(vertexCount int, faces []Face) *Adjacency {
	a := &Adjacency{neighbors: make([][]int, vertexCount)}
	seen := make(map[[2]int]struct{})
	for _, f := range faces {
		for i, v1 := range f {
			v2 := f[(i+1)%len(f)]
			if v1 == v2 {
				continue
			}
			key := [2]int{min(v1, v2), max(v1, v2)}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			a.neighbors[v1] = append(a.neighbors[v1], v2)
			a.neighbors[v2] = append(a.neighbors[v2], v1)
			a.edges++
		}
	}
	for _, n := range a.neighbors {
		slices.Sort(n)
	}
	return a
}

// Neighbors returns the sorted neighbor indices of v. The slice must not be
// modified.
func (a *Adjacency) Neighbors(v int) []int {
	return a.neighbors[v]
}

// Degree returns the number of neighbors of v.
func (a *Adjacency) Degree(v int) int {
	return len(a.neighbors[v])
}

// Len returns the number of vertices the graph was built for.
func (a *Adjacency) Len() int {
	return len(a.neighbors)
}

// EdgeCount returns the number of distinct undirected edges.
func (a *Adjacency) EdgeCount() int {
	return a.edges
}

// IsEmpty reports whether the graph has no edges.
func (a *Adjacency) IsEmpty() bool {
	return a.edges == 0
}

// Isolated returns the vertices that have no neighbors.
func (a *Adjacency) Isolated() []int {
	var out []int
	for v, n := range a.neighbors {
		if len(n) == 0 {
			out = append(out, v)
		}
	}
	return out
}
