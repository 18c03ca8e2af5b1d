package automask

import (
	"math"

	"github.com/gogpu/automask/internal/parallel"
)

// Cache holds the automasking state for one stroke. Build it with Init when
// the stroke starts and release it with Free when the stroke ends; it never
// survives a mesh topology change.
//
// A nil *Cache is valid and means automasking is disabled: Factor returns 1
// for every vertex and Free is a no-op.
//
// Once Init returns, the cache is read-only; Factor may be called from any
// number of goroutines without synchronization.
type Cache struct {
	settings Settings

	// factor is the composed whole-mesh weight array, or nil when every
	// active strategy can be evaluated per query.
	factor []float64

	// radius and useRadius capture the stroke's brush radius for the
	// topology flood fill.
	radius    float64
	useRadius bool
}

// Init builds the automasking cache for a stroke, or returns nil when no
// strategy is enabled. stroke may be nil for filter-style callers that mask
// without a running stroke; brush may be nil for scene-only automasking.
//
// When the active strategies need whole-mesh precomputation (topology, or
// any falloff spread over more than one step), each one is run here, in a
// fixed order, over the full vertex range. Otherwise the cache stays
// array-free and Factor evaluates cheap per-vertex predicates on demand.
func Init(scene *SceneConfig, brush *BrushConfig, stroke *StrokeConfig, g VertexGraph) *Cache {
	if !Enabled(scene, brush) {
		return nil
	}

	c := &Cache{
		settings: Settings{
			Flags:            effectiveBits(scene, brush),
			InitialFaceSet:   g.ActiveFaceSet(),
			CavityFactor:     1,
			PropagationSteps: propagationSteps(brush),
		},
		radius: math.MaxFloat64,
	}
	if brush != nil {
		c.settings.CavityFactor = brush.CavityFactor
	}
	if stroke != nil && stroke.Active {
		if stroke.Radius > 0 {
			c.radius = stroke.Radius
		}
		c.useRadius = constrainedByRadius(brush)
	}

	if !needsFactorCache(scene, brush) {
		Logger().Debug("automasking cache initialized",
			"flags", uint8(c.settings.Flags), "factorArray", false)
		return c
	}

	n := g.VertexCount()
	pool := parallel.Default()

	c.factor = make([]float64, n)
	pool.ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			c.factor[i] = 1
		}
	})

	for _, s := range strategyOrder {
		if c.settings.Flags&s.mode() != 0 {
			s.apply(c, g, pool)
		}
	}

	Logger().Debug("automasking cache initialized",
		"flags", uint8(c.settings.Flags), "factorArray", true, "vertices", n)
	return c
}

// Factor returns the automasking weight of vertex v, in [0, 1].
// A nil cache reports 1 (no masking) everywhere.
func (c *Cache) Factor(g VertexGraph, v int) float64 {
	if c == nil {
		return 1
	}
	// A populated factor array is authoritative: it holds the strategies
	// that cannot be evaluated per query.
	if c.factor != nil {
		return c.factor[v]
	}

	if c.settings.Flags&ModeFaceSets != 0 {
		if !g.HasFaceSet(v, c.settings.InitialFaceSet) {
			return 0
		}
	}

	if c.settings.Flags&ModeBoundaryEdges != 0 {
		if g.IsBoundaryVertex(v) {
			return 0
		}
	}

	if c.settings.Flags&ModeBoundaryFaceSets != 0 {
		if !g.HasUniqueFaceSet(v) {
			return 0
		}
	}

	if c.settings.Flags&ModeCavity != 0 {
		return cavityFactor(&c.settings, g, v)
	}

	return 1
}

// Settings returns the effective per-stroke settings.
func (c *Cache) Settings() Settings {
	if c == nil {
		return Settings{}
	}
	return c.settings
}

// Free releases the factor array. Safe on a nil cache and safe to call more
// than once.
func (c *Cache) Free() {
	if c == nil {
		return
	}
	c.factor = nil
}
