package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/hiddenline/pkg/culling"
	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
	"github.com/philipparndt/hiddenline/pkg/stl"
)

// EdgeInfo describes one box edge in camera space
type EdgeInfo struct {
	Edge    scene.Edge       `json:"edge" yaml:"edge"`
	Start   geometry.Vector3 `json:"start" yaml:"start"`
	End     geometry.Vector3 `json:"end" yaml:"end"`
	Length  float64          `json:"length" yaml:"length"`
	Faces   []string         `json:"faces" yaml:"faces"`
	Visible bool             `json:"visible" yaml:"visible"`
}

// FaceInfo describes one face in camera space
type FaceInfo struct {
	Name    string           `json:"name" yaml:"name"`
	Normal  geometry.Vector3 `json:"normal" yaml:"normal"`
	Area    float64          `json:"area" yaml:"area"`
	Visible bool             `json:"visible" yaml:"visible"`
}

// EdgeStats summarizes a set of edge lengths
type EdgeStats struct {
	Count int     `json:"count" yaml:"count"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Avg   float64 `json:"avg" yaml:"avg"`
}

// Report contains the measurements of a box at one orientation
type Report struct {
	Orientation  scene.Orientation    `json:"orientation" yaml:"orientation"`
	BoundingBox  geometry.BoundingBox `json:"bounding_box" yaml:"bounding_box"`
	Dimensions   geometry.Vector3     `json:"dimensions" yaml:"dimensions"`
	Volume       float64              `json:"volume" yaml:"volume"`
	SurfaceArea  float64              `json:"surface_area" yaml:"surface_area"`
	VertexCount  int                  `json:"vertex_count" yaml:"vertex_count"`
	Closed       bool                 `json:"closed" yaml:"closed"`
	Problem      string               `json:"problem,omitempty" yaml:"problem,omitempty"`
	EdgeStats    EdgeStats            `json:"edge_stats" yaml:"edge_stats"`
	VisibleEdges int                  `json:"visible_edges" yaml:"visible_edges"`
	Edges        []EdgeInfo           `json:"edges" yaml:"edges"`
	Faces        []FaceInfo           `json:"faces" yaml:"faces"`
}

// AnalyzeBox measures a topology rotated to o. Visibility uses the same
// back-face test as the hidden-line view.
func AnalyzeBox(topology *scene.Topology, o scene.Orientation) *Report {
	ax, ay := o.Radians()
	rotated := geometry.RotateAll(topology.Vertices, ax, ay)

	result := &Report{
		Orientation: o,
		BoundingBox: geometry.BoundsOf(rotated),
		VertexCount: len(rotated),
		Edges:       make([]EdgeInfo, 0, len(topology.Edges)),
		Faces:       make([]FaceInfo, 0, len(topology.Faces)),
	}
	result.Dimensions = result.BoundingBox.Size()

	if err := topology.Validate(); err != nil {
		result.Problem = err.Error()
	} else {
		result.Closed = true
	}

	_, outline := culling.ExtractVisible(topology, rotated)
	visibleEdges := culling.EdgeSet{}
	for _, e := range outline.Edges {
		visibleEdges.Add(e.A, e.B)
	}

	owners := make(map[scene.Edge][]string)
	for _, face := range topology.Faces {
		for _, e := range face.Edges() {
			owners[e] = append(owners[e], face.Name)
		}

		area := faceArea(face, rotated)
		result.Faces = append(result.Faces, FaceInfo{
			Name:    face.Name,
			Normal:  geometry.FaceNormal(face.Indices, rotated).Normalize(),
			Area:    area,
			Visible: culling.IsFaceVisible(face, rotated),
		})
		result.SurfaceArea += area
		result.Volume += faceVolume(face, rotated)
	}

	for _, e := range topology.Edges {
		info := EdgeInfo{
			Edge:    e,
			Start:   rotated[e.A],
			End:     rotated[e.B],
			Length:  rotated[e.A].Distance(rotated[e.B]),
			Faces:   owners[e],
			Visible: visibleEdges.Contains(e.A, e.B),
		}
		if info.Visible {
			result.VisibleEdges++
		}
		result.Edges = append(result.Edges, info)
	}
	result.EdgeStats = Summarize(result.Edges)

	return result
}

// faceArea fans the polygon around its first vertex
func faceArea(face scene.Face, vertices []geometry.Vector3) float64 {
	area := 0.0
	forEachFan(face, vertices, func(t geometry.Triangle) {
		area += t.Area()
	})
	return area
}

func faceVolume(face scene.Face, vertices []geometry.Vector3) float64 {
	volume := 0.0
	forEachFan(face, vertices, func(t geometry.Triangle) {
		volume += t.SignedVolume()
	})
	return volume
}

func forEachFan(face scene.Face, vertices []geometry.Vector3, fn func(geometry.Triangle)) {
	first := vertices[face.Indices[0]]
	for i := 1; i+1 < len(face.Indices); i++ {
		fn(geometry.Triangle{V1: first, V2: vertices[face.Indices[i]], V3: vertices[face.Indices[i+1]]})
	}
}

// ModelReport contains the measurements of a parsed STL model
type ModelReport struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeStats     EdgeStats
	Edges         []EdgeInfo
}

// AnalyzeModel performs comprehensive analysis on an STL model. Every
// triangle side counts as its own edge.
func AnalyzeModel(model *stl.Model) *ModelReport {
	result := &ModelReport{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		Volume:        model.Volume(),
		TriangleCount: model.TriangleCount(),
		Edges:         make([]EdgeInfo, 0, 3*model.TriangleCount()),
	}
	result.Dimensions = result.BoundingBox.Size()

	for _, triangle := range model.Triangles {
		vertices := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for i := range vertices {
			start, end := vertices[i], vertices[(i+1)%3]
			result.Edges = append(result.Edges, EdgeInfo{
				Start:  start,
				End:    end,
				Length: start.Distance(end),
			})
		}
	}
	result.EdgeStats = Summarize(result.Edges)

	return result
}

// Summarize computes length statistics. An empty slice gives zero stats.
func Summarize(edges []EdgeInfo) EdgeStats {
	if len(edges) == 0 {
		return EdgeStats{}
	}

	stats := EdgeStats{Count: len(edges), Min: math.MaxFloat64}
	total := 0.0
	for _, e := range edges {
		total += e.Length
		stats.Min = math.Min(stats.Min, e.Length)
		stats.Max = math.Max(stats.Max, e.Length)
	}
	stats.Avg = total / float64(len(edges))
	return stats
}

// FilterVisible returns the edges on the hidden-line outline
func FilterVisible(edges []EdgeInfo) []EdgeInfo {
	var visible []EdgeInfo
	for _, e := range edges {
		if e.Visible {
			visible = append(visible, e)
		}
	}
	return visible
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(edges []EdgeInfo, minLength, maxLength float64) []EdgeInfo {
	var found []EdgeInfo
	for _, edge := range edges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			found = append(found, edge)
		}
	}
	return found
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return sortedByLength(edges, count, func(a, b float64) bool { return a > b })
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(edges []EdgeInfo, count int) []EdgeInfo {
	return sortedByLength(edges, count, func(a, b float64) bool { return a < b })
}

func sortedByLength(edges []EdgeInfo, count int, less func(a, b float64) bool) []EdgeInfo {
	sorted := make([]EdgeInfo, len(edges))
	copy(sorted, edges)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i].Length, sorted[j].Length)
	})

	if count > len(sorted) || count < 0 {
		count = len(sorted)
	}
	return sorted[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
