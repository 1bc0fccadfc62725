package kepler

import (
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

// SolveToleranceDeg is the Newton–Raphson convergence tolerance on the
// eccentric anomaly, in degrees.
const SolveToleranceDeg = 1e-5

// maxSolveIterations bounds the Newton iteration. For the eccentricities
// in the planetary tables (e < 0.25) convergence takes single digits.
const maxSolveIterations = 1000

// SolveEccentricAnomaly solves Kepler's equation M = E − e·sin(E) for the
// eccentric anomaly E. Both M and the returned E are in degrees.
//
// The solve is unconditional: if the iteration cap is reached before the
// tolerance is met, the best iterate is returned. Callers that want to
// surface non-convergence use SolveKepler.
func SolveEccentricAnomaly(meanAnomDeg, ecc float64) float64 {
	ea, _ := SolveKepler(meanAnomDeg, ecc)
	return ea
}

// SolveKepler is SolveEccentricAnomaly with a convergence report.
func SolveKepler(meanAnomDeg, ecc float64) (eaDeg float64, converged bool) {
	// Degree-scaled eccentricity, so the sine term keeps the whole
	// iteration in degrees.
	eStar := astro.RadToDeg(ecc)

	ea := meanAnomDeg + eStar*math.Sin(astro.DegToRad(meanAnomDeg))
	for i := 0; i < maxSolveIterations; i++ {
		sinE, cosE := math.Sincos(astro.DegToRad(ea))
		dm := meanAnomDeg - (ea - eStar*sinE)
		de := dm / (1 - ecc*cosE)
		ea += de
		if math.Abs(de) <= SolveToleranceDeg {
			return ea, true
		}
	}
	return ea, false
}
