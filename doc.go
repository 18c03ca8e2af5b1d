// Package automask computes per-vertex brush attenuation for sculpting
// strokes.
//
// # Overview
//
// Automasking assigns every mesh vertex a weight in [0, 1] that scales how
// strongly a sculpting brush affects it, independently of the brush's own
// spatial falloff. Several strategies can be active at once and compose
// multiplicatively:
//
//   - Topology: only vertices connected to the stroke origin are affected.
//   - FaceSets: only vertices of the face set under the stroke origin.
//   - BoundaryEdges: mesh boundary vertices are protected, with a smooth
//     falloff over a configurable number of propagation steps.
//   - BoundaryFaceSets: like BoundaryEdges, but seeded at face-set borders.
//   - Cavity: a concavity estimate masks ridges or pockets, optionally
//     inverted and blurred over the neighborhood.
//
// # Quick Start
//
//	import "github.com/gogpu/automask"
//
//	cache := automask.Init(scene, brush, stroke, mesh)
//	defer cache.Free()
//
//	for _, v := range affected {
//	    strength := base * cache.Factor(mesh, v)
//	    // apply brush with strength
//	}
//
// A nil cache is valid and means "no masking": Factor on a nil *Cache
// returns 1 for every vertex.
//
// # Mesh access
//
// The mesh is consumed through the [VertexGraph] interface: vertex count,
// positions, normals, neighbor lists, boundary and face-set queries, and a
// symmetry-aware radius test. The trimesh subpackage provides a ready
// implementation built from indexed triangles; applications with their own
// mesh structure implement VertexGraph directly.
//
// # Lifecycle
//
// A cache belongs to exactly one stroke. Build it with [Init] when the stroke
// starts, query [Cache.Factor] during the stroke, release it with
// [Cache.Free] when the stroke ends. The cache never survives a topology
// change. Once built, the cache is read-only and Factor may be called
// concurrently without synchronization.
package automask
