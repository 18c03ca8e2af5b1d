// Package trimesh implements automask.VertexGraph on top of indexed
// triangle geometry. It derives everything the automasking strategies need
// at construction time: vertex adjacency, area-weighted vertex normals,
// open-boundary flags and per-vertex face-set membership.
//
// The package targets applications without their own mesh structure and the
// automask test suite; it favors simplicity over scale and uses no spatial
// acceleration structure.
package trimesh

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/automask"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrVertexOutOfRange is returned by New when a face references a vertex
// index outside the position slice.
var ErrVertexOutOfRange = errors.New("trimesh: face vertex index out of range")

// ErrFaceSetCount is returned by SetFaceSets when the slice length does not
// match the face count.
var ErrFaceSetCount = errors.New("trimesh: face set count does not match face count")

// defaultFaceSet is the face set every face starts in.
const defaultFaceSet = 1

// Mesh is an indexed triangle mesh with the derived connectivity data the
// automasking strategies query. All geometry and connectivity is fixed at
// construction; only the active vertex, face sets and symmetry flags are
// mutable, and those must not be changed while a stroke reads the mesh.
type Mesh struct {
	positions []r3.Vec
	normals   []r3.Vec
	faces     [][3]int

	neighbors [][]int
	vertFaces [][]int
	boundary  []bool

	faceSets []int

	activeVertex  int
	activeFaceSet int
	symm          automask.Symm
}

var _ automask.VertexGraph = (*Mesh)(nil)

// edgeKey identifies an undirected edge; a < b always.
type edgeKey struct {
	a, b int
}

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// New builds a mesh from vertex positions and triangle faces.
// Faces referencing out-of-range vertices fail with ErrVertexOutOfRange.
func New(positions []r3.Vec, faces [][3]int) (*Mesh, error) {
	n := len(positions)
	for fi, f := range faces {
		for _, v := range f {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d",
					ErrVertexOutOfRange, fi, v, n)
			}
		}
	}

	m := &Mesh{
		positions:     positions,
		normals:       make([]r3.Vec, n),
		faces:         faces,
		neighbors:     make([][]int, n),
		vertFaces:     make([][]int, n),
		boundary:      make([]bool, n),
		faceSets:      make([]int, len(faces)),
		activeVertex:  automask.NoActiveVertex,
		activeFaceSet: defaultFaceSet,
	}
	for i := range m.faceSets {
		m.faceSets[i] = defaultFaceSet
	}

	// Count the faces on every undirected edge; an edge with a single
	// face is an open boundary.
	edgeFaces := make(map[edgeKey]int)
	for fi, f := range faces {
		for e := 0; e < 3; e++ {
			edgeFaces[makeEdgeKey(f[e], f[(e+1)%3])]++
			m.vertFaces[f[e]] = append(m.vertFaces[f[e]], fi)
		}
	}
	for key, count := range edgeFaces {
		m.neighbors[key.a] = append(m.neighbors[key.a], key.b)
		m.neighbors[key.b] = append(m.neighbors[key.b], key.a)
		if count == 1 {
			m.boundary[key.a] = true
			m.boundary[key.b] = true
		}
	}
	// Map iteration order is random; keep neighbor rings deterministic.
	for _, ring := range m.neighbors {
		sort.Ints(ring)
	}

	m.computeNormals()
	return m, nil
}

// computeNormals accumulates unnormalized face normals (cross product,
// length proportional to face area) onto each corner vertex and normalizes.
// Vertices touching only degenerate or no faces keep a zero normal.
func (m *Mesh) computeNormals() {
	for _, f := range m.faces {
		a, b, c := m.positions[f[0]], m.positions[f[1]], m.positions[f[2]]
		fn := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		for _, v := range f {
			m.normals[v] = r3.Add(m.normals[v], fn)
		}
	}
	for i, nv := range m.normals {
		if l := r3.Norm(nv); l > 0 {
			m.normals[i] = r3.Scale(1/l, nv)
		}
	}
}

// SetFaceSets assigns one face set id per face.
func (m *Mesh) SetFaceSets(perFace []int) error {
	if len(perFace) != len(m.faces) {
		return fmt.Errorf("%w: got %d, want %d", ErrFaceSetCount, len(perFace), len(m.faces))
	}
	copy(m.faceSets, perFace)
	return nil
}

// SetActiveVertex marks the vertex under the cursor and captures the face
// set under it (the set of its first adjacent face). Pass
// automask.NoActiveVertex to clear.
func (m *Mesh) SetActiveVertex(v int) {
	m.activeVertex = v
	m.activeFaceSet = defaultFaceSet
	if v != automask.NoActiveVertex && len(m.vertFaces[v]) > 0 {
		m.activeFaceSet = m.faceSets[m.vertFaces[v][0]]
	}
}

// SetSymmetry sets the mirror axes reported to the automasking strategies.
func (m *Mesh) SetSymmetry(symm automask.Symm) {
	m.symm = symm
}

// VertexCount implements automask.VertexGraph.
func (m *Mesh) VertexCount() int { return len(m.positions) }

// VertexPosition implements automask.VertexGraph.
func (m *Mesh) VertexPosition(v int) r3.Vec { return m.positions[v] }

// VertexNormal implements automask.VertexGraph.
func (m *Mesh) VertexNormal(v int) r3.Vec { return m.normals[v] }

// Neighbors implements automask.VertexGraph. The returned slice is owned by
// the mesh and must not be modified.
func (m *Mesh) Neighbors(v int) []int { return m.neighbors[v] }

// IsBoundaryVertex implements automask.VertexGraph.
func (m *Mesh) IsBoundaryVertex(v int) bool { return m.boundary[v] }

// HasFaceSet implements automask.VertexGraph: whether any face adjacent to v
// belongs to set id.
func (m *Mesh) HasFaceSet(v int, id int) bool {
	for _, f := range m.vertFaces[v] {
		if m.faceSets[f] == id {
			return true
		}
	}
	return false
}

// HasUniqueFaceSet implements automask.VertexGraph: whether every face
// adjacent to v belongs to one set. A vertex with no faces is trivially
// unique.
func (m *Mesh) HasUniqueFaceSet(v int) bool {
	faces := m.vertFaces[v]
	if len(faces) == 0 {
		return true
	}
	for _, f := range faces[1:] {
		if m.faceSets[f] != m.faceSets[faces[0]] {
			return false
		}
	}
	return true
}

// ActiveFaceSet implements automask.VertexGraph.
func (m *Mesh) ActiveFaceSet() int { return m.activeFaceSet }

// ActiveVertex implements automask.VertexGraph.
func (m *Mesh) ActiveVertex() int { return m.activeVertex }

// SymmetryFlags implements automask.VertexGraph.
func (m *Mesh) SymmetryFlags() automask.Symm { return m.symm }

// InsideBrushRadiusSymm implements automask.VertexGraph: pos is inside when
// it lies within radius of origin or of any mirror image of origin across
// the axis combinations enabled in symm.
func (m *Mesh) InsideBrushRadiusSymm(pos, origin r3.Vec, radius float64, symm automask.Symm) bool {
	all := automask.SymmX | automask.SymmY | automask.SymmZ
	for axes := automask.Symm(0); axes <= all; axes++ {
		if axes&symm != axes {
			continue
		}
		if r3.Norm(r3.Sub(pos, mirror(origin, axes))) <= radius {
			return true
		}
	}
	return false
}

// NearestVertex implements automask.VertexGraph with a linear scan.
func (m *Mesh) NearestVertex(pos r3.Vec, maxDist float64) (int, bool) {
	best := automask.NoActiveVertex
	bestDist := maxDist
	for i, p := range m.positions {
		if d := r3.Norm(r3.Sub(pos, p)); d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best != automask.NoActiveVertex
}

// mirror reflects p across the planes selected by axes.
func mirror(p r3.Vec, axes automask.Symm) r3.Vec {
	if axes&automask.SymmX != 0 {
		p.X = -p.X
	}
	if axes&automask.SymmY != 0 {
		p.Y = -p.Y
	}
	if axes&automask.SymmZ != 0 {
		p.Z = -p.Z
	}
	return p
}
