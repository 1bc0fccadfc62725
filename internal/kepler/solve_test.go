package kepler

import (
	"math"
	"testing"

	"github.com/litescript/ls-orrery/internal/astro"
)

func TestSolveCircularOrbit(t *testing.T) {
	// With e = 0 Kepler's equation degenerates to E = M.
	for _, m := range []float64{-180, -90, -2.473, 0, 1e-8, 45, 90, 179.9, 180} {
		got := SolveEccentricAnomaly(m, 0)
		if math.Abs(got-m) > 1e-12 {
			t.Errorf("SolveEccentricAnomaly(%v, 0) = %v, want %v", m, got, m)
		}
	}
}

func TestSolveKeplerRoundTrip(t *testing.T) {
	// The solved E must satisfy E − e*·sin(E) ≈ M, with e* the
	// degree-scaled eccentricity.
	eccs := []float64{0, 0.005, 0.0167, 0.0934, 0.2056, 0.2488, 0.299}

	for _, ecc := range eccs {
		eStar := astro.RadToDeg(ecc)
		for m := -180.0; m <= 180.0; m += 15 {
			ea, converged := SolveKepler(m, ecc)
			if !converged {
				t.Fatalf("SolveKepler(%v, %v) did not converge", m, ecc)
			}
			back := ea - eStar*math.Sin(astro.DegToRad(ea))
			if math.Abs(back-m) > 2*SolveToleranceDeg {
				t.Errorf("e=%v M=%v: E=%v round-trips to %v (Δ=%g)",
					ecc, m, ea, back, math.Abs(back-m))
			}
		}
	}
}

func TestSolveKeplerNearCircular(t *testing.T) {
	// Near-zero eccentricity must stay stable, with E ≈ M.
	for _, ecc := range []float64{1e-15, 1e-9, 1e-6} {
		for _, m := range []float64{-170, -1, 0, 1, 170} {
			ea, converged := SolveKepler(m, ecc)
			if !converged {
				t.Fatalf("SolveKepler(%v, %v) did not converge", m, ecc)
			}
			if math.Abs(ea-m) > 1e-3 {
				t.Errorf("SolveKepler(%v, %v) = %v, expected ≈ M", m, ecc, ea)
			}
		}
	}
}

func TestSolveKeplerConvergesFast(t *testing.T) {
	// Planetary eccentricities converge well inside the iteration cap;
	// spot-check convergence across every table row's base eccentricity.
	for body := Mercury; body < NumBodies; body++ {
		ecc := TableShort.Rows[body].E
		for m := -180.0; m <= 180.0; m += 45 {
			if _, converged := SolveKepler(m, ecc); !converged {
				t.Errorf("%s (e=%v): M=%v did not converge", body, ecc, m)
			}
		}
	}
}

func TestSolveDeterminism(t *testing.T) {
	first := SolveEccentricAnomaly(-2.47311027, 0.01671123)
	for i := 0; i < 100; i++ {
		if got := SolveEccentricAnomaly(-2.47311027, 0.01671123); got != first {
			t.Fatalf("call %d = %v, want %v", i, got, first)
		}
	}
}
