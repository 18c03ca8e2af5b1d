package automask

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// cavityScale converts the raw cavity value, roughly the inverse of the
// local edge length, into a usable mask range. Empirical.
const cavityScale = 50.0

// CalcCavity estimates the local concavity at vertex v: the offset from v to
// its neighbor centroid, projected onto the vertex normal and normalized by
// the mean edge length. Positive means the neighborhood bends toward the
// normal (a pocket), negative means away from it (a ridge). A vertex with no
// neighbors yields 0.
func CalcCavity(g VertexGraph, v int) float64 {
	co := g.VertexPosition(v)
	avg := r3.Vec{}
	elen := 0.0
	num := 0

	for _, n := range g.Neighbors(v) {
		co2 := g.VertexPosition(n)
		elen += r3.Norm(r3.Sub(co, co2))
		num++
		avg = r3.Add(avg, co2)
	}

	if num == 0 {
		return 0
	}

	avg = r3.Scale(1/float64(num), avg)
	elen /= float64(num)

	// Distance from v to the neighbor-centroid plane.
	diff := r3.Sub(avg, co)
	return r3.Dot(diff, g.VertexNormal(v)) / elen
}

// cavityFactor maps the raw cavity value at v into a [0, 1] mask weight.
// A flat neighborhood lands exactly on 0.5; pockets pull toward 1 and ridges
// toward 0, scaled by the settings' cavity factor. ModeCavityInvert flips
// the result.
func cavityFactor(s *Settings, g VertexGraph, v int) float64 {
	c := CalcCavity(g, v)
	sign := 1.0
	if c < 0 {
		sign = -1
	}

	f := math.Abs(c) * s.CavityFactor * cavityScale
	f = f*sign*0.5 + 0.5
	f = clamp01(f)

	if s.Flags&ModeCavityInvert != 0 {
		return 1 - f
	}
	return f
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
