// Package kepler computes approximate heliocentric positions of the major
// planets from the JPL low-precision Keplerian element tables (Standish,
// "Keplerian Elements for Approximate Positions of the Major Planets").
//
// The pipeline per query is: evaluate the osculating elements at the
// requested instant, solve Kepler's equation for the eccentric anomaly,
// then rotate the orbital-plane position into the J2000 mean-ecliptic
// frame (and optionally on into the equatorial/ICRF frame).
package kepler

// Body identifies one of the nine major solar-system bodies carried by the
// element tables. Earth is represented by the Earth–Moon barycenter.
type Body int

const (
	Mercury Body = iota
	Venus
	EMBarycenter
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	NumBodies
)

// String returns the body's display name.
func (b Body) String() string {
	if b < 0 || b >= NumBodies {
		return "unknown"
	}
	return bodyNames[b]
}

var bodyNames = [NumBodies]string{
	"Mercury", "Venus", "EM Barycenter", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

// ElementRow holds one body's Keplerian elements: the value of each
// element at J2000.0, its rate per Julian century, and the four periodic
// mean-anomaly correction terms (zero except for Jupiter through Pluto in
// the long-span table). Rows are immutable reference data.
type ElementRow struct {
	Name string

	// Element values at J2000.0. Angles in degrees, semi-major axis in AU.
	A float64 // semi-major axis
	E float64 // eccentricity
	I float64 // inclination
	L float64 // mean longitude
	W float64 // longitude of perihelion (ω+Ω)
	O float64 // longitude of ascending node

	// Rates per Julian century.
	ARate float64
	ERate float64
	IRate float64
	LRate float64
	WRate float64
	ORate float64

	// Periodic mean-anomaly correction coefficients.
	B float64
	C float64
	S float64
	F float64
}

// ElementTable is an ordered set of element rows, indexed by Body, with
// the Julian-date span over which the fit is valid.
type ElementTable struct {
	Name   string
	MinJED float64
	MaxJED float64
	Rows   [NumBodies]ElementRow
}

// Covers reports whether the table's fit span includes the given Julian
// Ephemeris Date.
func (t *ElementTable) Covers(jed float64) bool {
	return jed >= t.MinJED && jed <= t.MaxJED
}

// Elements are the osculating orbital elements of one body evaluated at a
// single instant. Ephemeral: computed fresh per query, never cached.
type Elements struct {
	SemiMajorAU float64 // a
	Ecc         float64 // e
	InclDeg     float64 // I
	MeanLonDeg  float64 // L
	LongPeriDeg float64 // ϖ = ω+Ω
	NodeDeg     float64 // Ω
	ArgPeriDeg  float64 // ω = ϖ−Ω
	MeanAnomDeg float64 // M = L−ϖ (+ periodic terms), folded into [−180,180]
}
