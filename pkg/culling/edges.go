package culling

import (
	"sort"

	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
)

// EdgeSet is a set of canonical edges
type EdgeSet map[scene.Edge]struct{}

// Add inserts the edge joining i and j. Reversed pairs collapse.
func (s EdgeSet) Add(i, j int) {
	s[scene.NewEdge(i, j)] = struct{}{}
}

// Contains reports whether the edge joining i and j is in the set
func (s EdgeSet) Contains(i, j int) bool {
	_, ok := s[scene.NewEdge(i, j)]
	return ok
}

// Sorted returns the edges ordered by A, then B
func (s EdgeSet) Sorted() []scene.Edge {
	edges := make([]scene.Edge, 0, len(s))
	for e := range s {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// Result holds the deduplicated outline of a set of faces
type Result struct {
	Edges    []scene.Edge
	Vertices []int
}

// Extract walks every face cycle and collects each adjacent vertex pair once,
// along with every vertex the faces touch. An edge shared by two of the faces
// appears a single time.
func Extract(faces []scene.Face) Result {
	edges := make(EdgeSet)
	vertices := make(map[int]struct{})

	for _, face := range faces {
		for i, current := range face.Indices {
			next := face.Indices[(i+1)%len(face.Indices)]
			edges.Add(current, next)
			vertices[current] = struct{}{}
		}
	}

	result := Result{
		Edges:    edges.Sorted(),
		Vertices: make([]int, 0, len(vertices)),
	}
	for v := range vertices {
		result.Vertices = append(result.Vertices, v)
	}
	sort.Ints(result.Vertices)
	return result
}

// ExtractVisible classifies the topology faces against the camera-space
// vertices and extracts the outline of the visible ones
func ExtractVisible(topology *scene.Topology, rotated []geometry.Vector3) ([]int, Result) {
	visible := VisibleFaces(topology.Faces, rotated)
	faces := make([]scene.Face, len(visible))
	for i, idx := range visible {
		faces[i] = topology.Faces[idx]
	}
	return visible, Extract(faces)
}
