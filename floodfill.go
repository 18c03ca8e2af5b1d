package automask

import "gonum.org/v1/gonum/spatial/r3"

// FloodFill is a breadth-first traversal over the vertex adjacency graph.
// Seeds are added with Add or AddActive, then Execute walks outward, calling
// a visit callback for every edge discovered. No vertex is visited twice in
// one traversal.
//
// A FloodFill is single-use: create one per traversal.
type FloodFill struct {
	queue   []floodSeed
	visited []bool
}

// floodSeed is a queued vertex together with whether it entered the
// traversal through a mirrored symmetry seed.
type floodSeed struct {
	vertex    int
	duplicate bool
}

// FloodVisitFunc is called for every traversed edge (from, to). duplicate
// reports whether the edge was reached through a mirrored symmetry seed.
// Returning false prunes the traversal at to.
type FloodVisitFunc func(from, to int, duplicate bool) bool

// NewFloodFill creates a flood fill over g's vertices.
func NewFloodFill(g VertexGraph) *FloodFill {
	return &FloodFill{
		visited: make([]bool, g.VertexCount()),
	}
}

// Add seeds the traversal at vertex v.
func (f *FloodFill) Add(v int) {
	f.queue = append(f.queue, floodSeed{vertex: v})
}

// AddActive seeds the traversal at the graph's active vertex and, for every
// enabled combination of symmetry axes, at the vertex nearest the mirrored
// active position within radius. Mirrored seeds are marked as duplicates.
// A graph without an active vertex adds no seeds.
func (f *FloodFill) AddActive(g VertexGraph, radius float64) {
	active := g.ActiveVertex()
	if active == NoActiveVertex {
		return
	}
	co := g.VertexPosition(active)
	symm := g.SymmetryFlags()

	for axes := Symm(0); axes <= (SymmX | SymmY | SymmZ); axes++ {
		if axes&symm != axes {
			continue
		}
		if axes == 0 {
			f.queue = append(f.queue, floodSeed{vertex: active})
			continue
		}
		mirrored := mirrorPoint(co, axes)
		if v, ok := g.NearestVertex(mirrored, radius); ok {
			f.queue = append(f.queue, floodSeed{vertex: v, duplicate: true})
		}
	}
}

// Execute runs the traversal, invoking visit for every discovered edge.
// Traversal continues through a vertex only while visit returns true.
func (f *FloodFill) Execute(g VertexGraph, visit FloodVisitFunc) {
	for _, s := range f.queue {
		f.visited[s.vertex] = true
	}
	for len(f.queue) > 0 {
		s := f.queue[0]
		f.queue = f.queue[1:]

		for _, to := range g.Neighbors(s.vertex) {
			if f.visited[to] {
				continue
			}
			f.visited[to] = true
			if visit(s.vertex, to, s.duplicate) {
				f.queue = append(f.queue, floodSeed{vertex: to, duplicate: s.duplicate})
			}
		}
	}
}

// mirrorPoint reflects p across the planes selected by axes.
func mirrorPoint(p r3.Vec, axes Symm) r3.Vec {
	if axes&SymmX != 0 {
		p.X = -p.X
	}
	if axes&SymmY != 0 {
		p.Y = -p.Y
	}
	if axes&SymmZ != 0 {
		p.Z = -p.Z
	}
	return p
}
