package automask

import "github.com/gogpu/automask/internal/parallel"

// initCavityMask multiplies the cavity strategy into factor for the whole
// mesh. With a single propagation step the per-vertex value goes in
// directly. With more steps the cavity values are smoothed first by damped
// Jacobi rounds: each round pulls a vertex halfway toward the neighbor mean
// of the previous round. The two rounds ping-pong between a pair of owned
// buffers selected by index, and the smoothed result is multiplied into
// factor once at the end.
func initCavityMask(g VertexGraph, s *Settings, factor []float64, pool *parallel.Pool) {
	if !adjacencyReady(g) {
		Logger().Warn("cavity automasking: adjacency unavailable, strategy skipped")
		return
	}

	n := g.VertexCount()
	steps := s.PropagationSteps

	if steps <= 1 {
		pool.ForRange(n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				factor[i] *= cavityFactor(s, g, i)
			}
		})
		return
	}

	var buf [2][]float64
	buf[0] = make([]float64, n)
	buf[1] = make([]float64, n)
	cur := 0

	pool.ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			buf[0][i] = cavityFactor(s, g, i)
			buf[1][i] = 1
		}
	})

	// Each round writes the buffer last written two rounds ago and reads
	// the other, so a vertex blends the previous round's neighbor mean
	// with its own value from the round before that.
	for it := 0; it < steps-1; it++ {
		cur ^= 1
		read := buf[cur^1]
		write := buf[cur]
		pool.ForRange(n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				sum := 0.0
				tot := 0
				for _, ni := range g.Neighbors(i) {
					sum += read[ni]
					tot++
				}
				if tot > 0 {
					sum /= float64(tot)
				}
				// An isolated vertex keeps sum == 0, halving its
				// value each round.
				write[i] = (sum + write[i]) * 0.5
			}
		})
	}

	result := buf[cur]
	pool.ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			factor[i] *= result[i]
		}
	})
}
