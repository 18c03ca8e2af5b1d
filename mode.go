package automask

// Mode is a bitmask of automasking strategies.
type Mode uint8

const (
	// ModeTopology restricts the brush to vertices topologically connected
	// to the stroke origin.
	ModeTopology Mode = 1 << iota
	// ModeFaceSets restricts the brush to the face set under the stroke
	// origin.
	ModeFaceSets
	// ModeBoundaryEdges protects mesh boundary vertices.
	ModeBoundaryEdges
	// ModeBoundaryFaceSets protects vertices on face-set borders.
	ModeBoundaryFaceSets
	// ModeCavity masks vertices by local concavity.
	ModeCavity
	// ModeCavityInvert flips the cavity mask: ridges instead of pockets.
	// Only meaningful together with ModeCavity.
	ModeCavityInvert
)

// modeAny is the set of flags that enable automasking at all.
// ModeCavityInvert alone does nothing.
const modeAny = ModeTopology | ModeFaceSets | ModeBoundaryEdges |
	ModeBoundaryFaceSets | ModeCavity

// Tool identifies the sculpting tool driving the stroke.
// Only the tools that move geometry as a rigid chunk constrain the topology
// flood fill to the brush radius.
type Tool int

const (
	// ToolDraw is a generic surface-deforming tool.
	ToolDraw Tool = iota
	// ToolGrab drags the surface under the brush.
	ToolGrab
	// ToolThumb slides the surface along the view plane.
	ToolThumb
	// ToolRotate rotates the surface around the brush center.
	ToolRotate
)

// FalloffShape selects how brush influence is projected onto the mesh.
type FalloffShape int

const (
	// FalloffSphere attenuates by 3D distance from the brush center.
	FalloffSphere FalloffShape = iota
	// FalloffTube attenuates by 2D distance from the brush axis, with no
	// depth limit.
	FalloffTube
)

// SceneConfig is the scene-level automasking configuration, shared by every
// brush.
type SceneConfig struct {
	// Flags are the scene-wide enabled strategies.
	Flags Mode
}

// BrushConfig is the per-brush automasking configuration.
type BrushConfig struct {
	// Flags are strategies enabled on this brush, OR-ed with the scene's.
	Flags Mode

	// CavityFactor scales the cavity strategy's sensitivity.
	CavityFactor float64

	// PropagationSteps controls how far boundary falloff and cavity blur
	// spread, in edge hops. Must be >= 1; 1 means a hard edge.
	PropagationSteps int

	// Tool is the sculpting tool the brush belongs to.
	Tool Tool

	// Falloff is the brush falloff shape.
	Falloff FalloffShape
}

// StrokeConfig is the per-stroke state captured when the stroke begins.
type StrokeConfig struct {
	// Radius is the brush radius in object space. Zero or negative means
	// unbounded.
	Radius float64

	// Active reports whether a stroke is actually running. Filter-style
	// callers build a cache without a stroke; the radius constraint then
	// does not apply.
	Active bool
}

// Settings is the immutable per-stroke strategy configuration stored in a
// Cache.
type Settings struct {
	// Flags are the effective strategy bits (scene OR brush).
	Flags Mode

	// InitialFaceSet is the face set under the stroke origin, captured at
	// stroke start.
	InitialFaceSet int

	// CavityFactor is the cavity sensitivity, taken from the brush.
	CavityFactor float64

	// PropagationSteps is the boundary falloff / cavity blur depth.
	PropagationSteps int
}

// effectiveBits merges scene- and brush-level strategy flags.
// A nil brush is legal: scene-only automasking.
func effectiveBits(scene *SceneConfig, brush *BrushConfig) Mode {
	if brush != nil {
		return scene.Flags | brush.Flags
	}
	return scene.Flags
}

// Enabled reports whether any automasking strategy is active for the given
// scene and brush configuration.
func Enabled(scene *SceneConfig, brush *BrushConfig) bool {
	return effectiveBits(scene, brush)&modeAny != 0
}

// ModeEnabled reports whether a specific strategy is active, at either scene
// or brush level.
func ModeEnabled(scene *SceneConfig, brush *BrushConfig, mode Mode) bool {
	return effectiveBits(scene, brush)&mode != 0
}

// needsFactorCache reports whether the strategy combination requires a
// whole-mesh factor array. Topology always does (flood fill cannot run per
// query); boundary and cavity strategies only when the falloff spreads over
// more than one step, since the single-step forms reduce to cheap per-vertex
// predicates.
func needsFactorCache(scene *SceneConfig, brush *BrushConfig) bool {
	flags := effectiveBits(scene, brush)
	if flags&ModeTopology != 0 {
		return true
	}
	if flags&(ModeBoundaryEdges|ModeBoundaryFaceSets|ModeCavity) != 0 {
		return brush != nil && propagationSteps(brush) != 1
	}
	return false
}

// constrainedByRadius reports whether the topology flood fill should stop at
// the brush radius. Tube falloff has no depth limit, so it is never
// constrained; of the remaining tools only the rigid-chunk ones are.
func constrainedByRadius(brush *BrushConfig) bool {
	if brush == nil || brush.Falloff == FalloffTube {
		return false
	}
	switch brush.Tool {
	case ToolGrab, ToolThumb, ToolRotate:
		return true
	}
	return false
}

// propagationSteps returns the brush's propagation depth, defaulting to 1.
func propagationSteps(brush *BrushConfig) int {
	if brush == nil || brush.PropagationSteps < 1 {
		return 1
	}
	return brush.PropagationSteps
}
