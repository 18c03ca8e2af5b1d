package automask

import "github.com/gogpu/automask/internal/parallel"

// strategy is one automasking technique's whole-mesh initializer.
// This is a sealed interface - only types in this package implement it.
type strategy interface {
	// mode returns the flag bit that enables this strategy.
	mode() Mode

	// apply folds the strategy's contribution into the cache's factor
	// array. Every strategy except topology only attenuates existing
	// values; degraded strategies leave the array untouched.
	apply(c *Cache, g VertexGraph, pool *parallel.Pool)
}

// strategyOrder fixes the initialization sequence. Topology must run first:
// it seeds the array with a hard 0/1 reachability gate, and running it later
// would wipe out values other strategies already attenuated. The remaining
// strategies are multiplicative, so their relative order does not change the
// result.
var strategyOrder = []strategy{
	topologyStrategy{},
	faceSetStrategy{},
	cavityStrategy{},
	boundaryEdgeStrategy{},
	boundaryFaceSetStrategy{},
}

// topologyStrategy marks vertices reachable from the stroke origin with 1
// and everything else with 0, flood filling outward and optionally stopping
// at the brush radius.
type topologyStrategy struct{}

func (topologyStrategy) mode() Mode { return ModeTopology }

func (topologyStrategy) apply(c *Cache, g VertexGraph, pool *parallel.Pool) {
	if !adjacencyReady(g) {
		Logger().Warn("topology automasking: adjacency unavailable, strategy skipped")
		return
	}
	if g.ActiveVertex() == NoActiveVertex {
		Logger().Warn("topology automasking: no active vertex, strategy skipped")
		return
	}

	factor := c.factor
	pool.ForRange(len(factor), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			factor[i] = 0
		}
	})

	origin := activeVertexPosition(g)
	symm := g.SymmetryFlags()

	flood := NewFloodFill(g)
	flood.AddActive(g, c.radius)
	flood.Execute(g, func(from, to int, _ bool) bool {
		factor[to] = 1
		factor[from] = 1
		return !c.useRadius ||
			g.InsideBrushRadiusSymm(g.VertexPosition(to), origin, c.radius, symm)
	})
}

// faceSetStrategy zeroes every vertex outside the face set captured at
// stroke start.
type faceSetStrategy struct{}

func (faceSetStrategy) mode() Mode { return ModeFaceSets }

func (faceSetStrategy) apply(c *Cache, g VertexGraph, pool *parallel.Pool) {
	if !adjacencyReady(g) {
		Logger().Warn("face set automasking: adjacency unavailable, strategy skipped")
		return
	}

	factor := c.factor
	set := c.settings.InitialFaceSet
	pool.ForRange(len(factor), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if !g.HasFaceSet(i, set) {
				factor[i] = 0
			}
		}
	})
}

// cavityStrategy attenuates by local concavity, blurred when the brush asks
// for more than one propagation step.
type cavityStrategy struct{}

func (cavityStrategy) mode() Mode { return ModeCavity }

func (cavityStrategy) apply(c *Cache, g VertexGraph, pool *parallel.Pool) {
	initCavityMask(g, &c.settings, c.factor, pool)
}

// boundaryEdgeStrategy protects open mesh boundaries.
type boundaryEdgeStrategy struct{}

func (boundaryEdgeStrategy) mode() Mode { return ModeBoundaryEdges }

func (boundaryEdgeStrategy) apply(c *Cache, g VertexGraph, pool *parallel.Pool) {
	initBoundaryMask(g, BoundaryModeEdges, c.settings.PropagationSteps, c.factor, pool)
}

// boundaryFaceSetStrategy protects face-set borders.
type boundaryFaceSetStrategy struct{}

func (boundaryFaceSetStrategy) mode() Mode { return ModeBoundaryFaceSets }

func (boundaryFaceSetStrategy) apply(c *Cache, g VertexGraph, pool *parallel.Pool) {
	initBoundaryMask(g, BoundaryModeFaceSets, c.settings.PropagationSteps, c.factor, pool)
}
