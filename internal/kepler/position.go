package kepler

import (
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

// EclipticPosition computes the heliocentric position in the J2000
// mean-ecliptic frame, in AU, from evaluated elements and the solved
// eccentric anomaly (degrees). The orbital-plane coordinates are rotated
// by argument of perihelion, inclination, and ascending node.
func EclipticPosition(el Elements, eaDeg float64) astro.Vec3 {
	sinE, cosE := math.Sincos(astro.DegToRad(eaDeg))
	xp := el.SemiMajorAU * (cosE - el.Ecc)
	yp := el.SemiMajorAU * math.Sqrt(1-el.Ecc*el.Ecc) * sinE

	sinW, cosW := math.Sincos(astro.DegToRad(el.ArgPeriDeg))
	sinO, cosO := math.Sincos(astro.DegToRad(el.NodeDeg))
	sinI, cosI := math.Sincos(astro.DegToRad(el.InclDeg))

	return astro.Vec3{
		X: (cosW*cosO-sinW*sinO*cosI)*xp + (-sinW*cosO-cosW*sinO*cosI)*yp,
		Y: (cosW*sinO+sinW*cosO*cosI)*xp + (-sinW*sinO+cosW*cosO*cosI)*yp,
		Z: sinW*sinI*xp + cosW*sinI*yp,
	}
}

// ComputeEclipticCoordinates runs the full pipeline for one body at one
// instant: element evaluation, Kepler solve, and rotation into the
// ecliptic frame. Coordinates are in AU.
func ComputeEclipticCoordinates(tbl *ElementTable, body Body, unixMillis int64) (astro.Vec3, error) {
	el, err := Evaluate(tbl, body, unixMillis)
	if err != nil {
		return astro.Vec3{}, err
	}
	ea := SolveEccentricAnomaly(el.MeanAnomDeg, el.Ecc)
	return EclipticPosition(el, ea), nil
}

// ConvertToICRF rotates an ecliptic-frame position into the equatorial
// (ICRF) frame about the fixed J2000 obliquity. It cannot verify that its
// argument really is an ecliptic-frame vector.
func ConvertToICRF(ecl astro.Vec3) astro.Vec3 {
	return astro.EclipticToEquatorial(ecl)
}
