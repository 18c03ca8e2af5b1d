package automask

import "gonum.org/v1/gonum/spatial/r3"

// Symm is a bitmask of mirror symmetry axes active on the sculpted object.
type Symm uint8

const (
	// SymmX mirrors across the X = 0 plane.
	SymmX Symm = 1 << iota
	// SymmY mirrors across the Y = 0 plane.
	SymmY
	// SymmZ mirrors across the Z = 0 plane.
	SymmZ
)

// NoActiveVertex is returned by VertexGraph.ActiveVertex when no vertex is
// under the cursor.
const NoActiveVertex = -1

// VertexGraph is the mesh access contract automasking is computed against.
// Implementations expose vertex geometry, the vertex adjacency graph, and
// the boundary/face-set queries the strategies need. The trimesh subpackage
// provides an implementation built from indexed triangles.
//
// Vertices are identified by dense indices in [0, VertexCount()).
type VertexGraph interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// VertexPosition returns the position of vertex v.
	VertexPosition(v int) r3.Vec

	// VertexNormal returns the unit normal of vertex v.
	VertexNormal(v int) r3.Vec

	// Neighbors returns the vertices sharing an edge with v. The returned
	// slice is a read-only view owned by the graph; callers must not
	// modify or retain it across topology changes.
	Neighbors(v int) []int

	// IsBoundaryVertex reports whether v lies on an open mesh boundary.
	IsBoundaryVertex(v int) bool

	// HasFaceSet reports whether any face adjacent to v belongs to the
	// face set id.
	HasFaceSet(v int, id int) bool

	// HasUniqueFaceSet reports whether every face adjacent to v belongs
	// to the same face set.
	HasUniqueFaceSet(v int) bool

	// ActiveFaceSet returns the face set under the cursor.
	ActiveFaceSet() int

	// ActiveVertex returns the vertex under the cursor, or NoActiveVertex.
	ActiveVertex() int

	// SymmetryFlags returns the mirror axes active on the object.
	SymmetryFlags() Symm

	// InsideBrushRadiusSymm reports whether pos lies within radius of
	// origin or of any of origin's mirror images across the axes in symm.
	InsideBrushRadiusSymm(pos, origin r3.Vec, radius float64, symm Symm) bool

	// NearestVertex returns the vertex closest to pos within maxDist,
	// and whether one was found.
	NearestVertex(pos r3.Vec, maxDist float64) (int, bool)
}

// adjacencyChecker is an optional capability for graphs that build their
// adjacency map lazily. When a graph reports false, strategies that walk the
// adjacency degrade to applying no constraint instead of reading stale data.
type adjacencyChecker interface {
	AdjacencyReady() bool
}

// adjacencyReady reports whether g's adjacency can be walked. Graphs without
// the capability are assumed ready.
func adjacencyReady(g VertexGraph) bool {
	if c, ok := g.(adjacencyChecker); ok {
		return c.AdjacencyReady()
	}
	return true
}

// activeVertexPosition returns the position of the active vertex.
// Only valid when g.ActiveVertex() != NoActiveVertex.
func activeVertexPosition(g VertexGraph) r3.Vec {
	return g.VertexPosition(g.ActiveVertex())
}
