package automask

import "github.com/gogpu/automask/internal/parallel"

// BoundaryMode selects which vertices seed the boundary distance field.
type BoundaryMode int

const (
	// BoundaryModeEdges seeds open mesh boundary vertices.
	BoundaryModeEdges BoundaryMode = iota
	// BoundaryModeFaceSets seeds vertices touching more than one face set.
	BoundaryModeFaceSets
)

// edgeDistanceInf marks a vertex not reached by the distance field.
const edgeDistanceInf = -1

// initBoundaryMask attenuates factor near boundary vertices. A multi-source
// breadth-first distance transform runs from the seed set for steps levels;
// each reached vertex is darkened by a squared ease-out falloff of its edge
// distance, with the seeds themselves going to 0. Vertices beyond the field
// keep their factor.
//
// Each level reads only the previous level's distances (double-buffered), so
// the per-vertex work within a level runs on the pool without synchronization.
func initBoundaryMask(g VertexGraph, mode BoundaryMode, steps int, factor []float64, pool *parallel.Pool) {
	if !adjacencyReady(g) {
		Logger().Warn("boundary automasking: adjacency unavailable, strategy skipped",
			"mode", int(mode))
		return
	}

	n := g.VertexCount()
	dist := make([]int, n)
	next := make([]int, n)

	pool.ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dist[i] = edgeDistanceInf
			switch mode {
			case BoundaryModeEdges:
				if g.IsBoundaryVertex(i) {
					dist[i] = 0
				}
			case BoundaryModeFaceSets:
				if !g.HasUniqueFaceSet(i) {
					dist[i] = 0
				}
			}
		}
	})

	// Level-synchronous propagation: level it is settled before any vertex
	// at it+1 is considered, so a distance written this level can never be
	// misread as belonging to the previous one.
	for it := 0; it < steps; it++ {
		copy(next, dist)
		pool.ForRange(n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				if dist[i] != edgeDistanceInf {
					continue
				}
				for _, ni := range g.Neighbors(i) {
					if dist[ni] == it {
						next[i] = it + 1
						break
					}
				}
			}
		})
		dist, next = next, dist
	}

	pool.ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if dist[i] == edgeDistanceInf {
				continue
			}
			p := 1 - float64(dist[i])/float64(steps)
			factor[i] *= 1 - p*p
		}
	})
}
