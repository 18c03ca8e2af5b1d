package automask

import "gonum.org/v1/gonum/spatial/r3"

// stubGraph is a hand-wired VertexGraph for tests: geometry, adjacency and
// per-vertex face-set membership are set directly instead of being derived
// from faces.
type stubGraph struct {
	pos      []r3.Vec
	normal   []r3.Vec
	adj      [][]int
	boundary []bool
	// faceSets lists the face sets each vertex touches.
	faceSets  [][]int
	active    int
	activeSet int
	symm      Symm
}

func (g *stubGraph) VertexCount() int            { return len(g.pos) }
func (g *stubGraph) VertexPosition(v int) r3.Vec { return g.pos[v] }

func (g *stubGraph) VertexNormal(v int) r3.Vec {
	if g.normal == nil {
		return r3.Vec{Z: 1}
	}
	return g.normal[v]
}

func (g *stubGraph) Neighbors(v int) []int { return g.adj[v] }

func (g *stubGraph) IsBoundaryVertex(v int) bool {
	return g.boundary != nil && g.boundary[v]
}

func (g *stubGraph) HasFaceSet(v int, id int) bool {
	for _, s := range g.faceSets[v] {
		if s == id {
			return true
		}
	}
	return false
}

func (g *stubGraph) HasUniqueFaceSet(v int) bool {
	return len(g.faceSets[v]) <= 1
}

func (g *stubGraph) ActiveFaceSet() int  { return g.activeSet }
func (g *stubGraph) ActiveVertex() int   { return g.active }
func (g *stubGraph) SymmetryFlags() Symm { return g.symm }

func (g *stubGraph) InsideBrushRadiusSymm(pos, origin r3.Vec, radius float64, symm Symm) bool {
	for axes := Symm(0); axes <= (SymmX | SymmY | SymmZ); axes++ {
		if axes&symm != axes {
			continue
		}
		if r3.Norm(r3.Sub(pos, mirrorPoint(origin, axes))) <= radius {
			return true
		}
	}
	return false
}

func (g *stubGraph) NearestVertex(pos r3.Vec, maxDist float64) (int, bool) {
	best, bestDist := NoActiveVertex, maxDist
	for i, p := range g.pos {
		if d := r3.Norm(r3.Sub(pos, p)); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best != NoActiveVertex
}

// lazyGraph wraps a stubGraph and reports adjacency readiness, exercising
// the degradation path.
type lazyGraph struct {
	*stubGraph
	ready bool
}

func (g *lazyGraph) AdjacencyReady() bool { return g.ready }

// chainGraph builds a line of n vertices spaced one unit apart along X.
// Ends are flagged as boundary; every vertex touches the given face sets.
func chainGraph(n int) *stubGraph {
	g := &stubGraph{
		pos:      make([]r3.Vec, n),
		adj:      make([][]int, n),
		boundary: make([]bool, n),
		faceSets: make([][]int, n),
		active:   NoActiveVertex,
	}
	for i := 0; i < n; i++ {
		g.pos[i] = r3.Vec{X: float64(i)}
		if i > 0 {
			g.adj[i] = append(g.adj[i], i-1)
		}
		if i < n-1 {
			g.adj[i] = append(g.adj[i], i+1)
		}
		g.faceSets[i] = []int{1}
	}
	g.boundary[0] = true
	g.boundary[n-1] = true
	return g
}

// starGraph builds a center vertex with four planar neighbors at unit
// distance, all normals +Z. centerZ offsets the center out of the plane.
func starGraph(centerZ float64) *stubGraph {
	g := &stubGraph{
		pos: []r3.Vec{
			{Z: centerZ},
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1},
		},
		adj: [][]int{
			{1, 2, 3, 4},
			{0}, {0}, {0}, {0},
		},
		boundary: make([]bool, 5),
		faceSets: [][]int{{1}, {1}, {1}, {1}, {1}},
		active:   NoActiveVertex,
	}
	return g
}

// isolatedGraph builds a single vertex with no neighbors.
func isolatedGraph() *stubGraph {
	return &stubGraph{
		pos:      []r3.Vec{{}},
		adj:      [][]int{nil},
		boundary: []bool{false},
		faceSets: [][]int{{1}},
		active:   0,
	}
}
