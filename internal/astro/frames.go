package astro

import (
	"math"
)

// ObliquityDeg is Earth's mean obliquity at the J2000 epoch in degrees.
// It is the fixed rotation angle between the ecliptic and equatorial
// (ICRF) frames used throughout this program.
const ObliquityDeg = 23.43928

var sinObl, cosObl = math.Sincos(ObliquityDeg * math.Pi / 180)

// EclipticToEquatorial rotates an ecliptic-frame vector into the
// mean-equatorial (ICRF) frame. Units are preserved.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	return Vec3{
		X: ecl.X,
		Y: cosObl*ecl.Y - sinObl*ecl.Z,
		Z: sinObl*ecl.Y + cosObl*ecl.Z,
	}
}

// EquatorialToEcliptic rotates an equatorial-frame vector back into the
// ecliptic frame. Inverse of EclipticToEquatorial.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	return Vec3{
		X: eq.X,
		Y: cosObl*eq.Y + sinObl*eq.Z,
		Z: -sinObl*eq.Y + cosObl*eq.Z,
	}
}

// EclipticLatitude returns the ecliptic latitude in degrees for a vector.
func EclipticLatitude(v Vec3) float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return RadToDeg(math.Asin(v.Z / r))
}

// EclipticLongitude returns the ecliptic longitude in degrees for a
// vector, in [0, 360).
func EclipticLongitude(v Vec3) float64 {
	lon := RadToDeg(math.Atan2(v.Y, v.X))
	if lon < 0 {
		lon += 360
	}
	return lon
}

// RADec extracts right ascension and declination in degrees from an
// equatorial-frame vector. RA is in [0, 360).
func RADec(eq Vec3) (raDeg, decDeg float64) {
	r := eq.Norm()
	if r == 0 {
		return 0, 0
	}
	raDeg = RadToDeg(math.Atan2(eq.Y, eq.X))
	if raDeg < 0 {
		raDeg += 360
	}
	decDeg = RadToDeg(math.Asin(eq.Z / r))
	return raDeg, decDeg
}
