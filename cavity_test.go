package automask

import (
	"math"
	"testing"
)

func TestCalcCavity(t *testing.T) {
	tests := []struct {
		name string
		g    *stubGraph
		v    int
		want func(c float64) bool
	}{
		{
			name: "isolated vertex returns exactly zero",
			g:    isolatedGraph(),
			v:    0,
			want: func(c float64) bool { return c == 0 },
		},
		{
			name: "flat neighborhood returns exactly zero",
			g:    starGraph(0),
			v:    0,
			want: func(c float64) bool { return c == 0 },
		},
		{
			name: "pocket center is positive",
			g:    starGraph(-0.1),
			v:    0,
			want: func(c float64) bool { return c > 0 },
		},
		{
			name: "ridge center is negative",
			g:    starGraph(0.1),
			v:    0,
			want: func(c float64) bool { return c < 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcCavity(tt.g, tt.v)
			if !tt.want(got) {
				t.Errorf("CalcCavity() = %v", got)
			}
		})
	}
}

func TestCalcCavitySignAntisymmetry(t *testing.T) {
	pocket := CalcCavity(starGraph(-0.1), 0)
	ridge := CalcCavity(starGraph(0.1), 0)
	if math.Abs(pocket+ridge) > 1e-12 {
		t.Errorf("pocket %v and ridge %v are not mirrored", pocket, ridge)
	}
}

func TestCavityFactorRemap(t *testing.T) {
	tests := []struct {
		name    string
		centerZ float64
		factor  float64
		flags   Mode
		want    float64
		tol     float64
	}{
		{
			name:    "flat lands exactly on half",
			centerZ: 0,
			factor:  1,
			flags:   ModeCavity,
			want:    0.5,
		},
		{
			name:    "strong pocket clamps to one",
			centerZ: -0.1,
			factor:  1,
			flags:   ModeCavity,
			want:    1,
		},
		{
			name:    "strong ridge clamps to zero",
			centerZ: 0.1,
			factor:  1,
			flags:   ModeCavity,
			want:    0,
		},
		{
			name:    "gentle pocket stays unclamped",
			centerZ: -0.1,
			factor:  0.1,
			flags:   ModeCavity,
			// |0.1/sqrt(1.01)| * 0.1 * 50 * 0.5 + 0.5
			want: 0.1/math.Sqrt(1.01)*0.1*50*0.5 + 0.5,
			tol:  1e-12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{Flags: tt.flags, CavityFactor: tt.factor}
			got := cavityFactor(s, starGraph(tt.centerZ), 0)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("cavityFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCavityFactorInvertComplement(t *testing.T) {
	g := starGraph(-0.1)
	plain := &Settings{Flags: ModeCavity, CavityFactor: 0.1}
	inverted := &Settings{Flags: ModeCavity | ModeCavityInvert, CavityFactor: 0.1}

	f := cavityFactor(plain, g, 0)
	fi := cavityFactor(inverted, g, 0)
	if math.Abs((1-f)-fi) > 1e-15 {
		t.Errorf("inverted factor %v is not the complement of %v", fi, f)
	}
}

// The factor range must hold for any geometry and sensitivity.
func TestCavityFactorRange(t *testing.T) {
	for _, cf := range []float64{0, 0.1, 1, 10, 1000} {
		for _, z := range []float64{-5, -0.1, 0, 0.1, 5} {
			s := &Settings{Flags: ModeCavity, CavityFactor: cf}
			got := cavityFactor(s, starGraph(z), 0)
			if got < 0 || got > 1 {
				t.Errorf("cavityFactor(z=%v, cf=%v) = %v out of [0,1]", z, cf, got)
			}
		}
	}
}
