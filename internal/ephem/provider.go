// Package ephem turns the Keplerian element tables into heliocentric
// body states for the CLI and the orrery view.
package ephem

import (
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/kepler"
)

// BodyState is one body's fully computed state at an instant: the
// evaluated elements, the solved eccentric anomaly, and the position in
// both output frames.
type BodyState struct {
	Body       kepler.Body
	Time       time.Time
	Elements   kepler.Elements
	EccAnomDeg float64
	Ecliptic   astro.Vec3 // heliocentric ecliptic, AU
	ICRF       astro.Vec3 // heliocentric equatorial, AU
}

// DistanceAU returns the heliocentric distance in AU.
func (s BodyState) DistanceAU() float64 {
	return s.Ecliptic.Norm()
}

// EclipticLonDeg returns the ecliptic longitude in degrees.
func (s BodyState) EclipticLonDeg() float64 {
	return astro.EclipticLongitude(s.Ecliptic)
}

// EclipticLatDeg returns the ecliptic latitude in degrees.
func (s BodyState) EclipticLatDeg() float64 {
	return astro.EclipticLatitude(s.Ecliptic)
}

// RADec returns right ascension and declination in degrees, from the
// ICRF-frame position.
func (s BodyState) RADec() (raDeg, decDeg float64) {
	return astro.RADec(s.ICRF)
}

// Provider supplies body states at arbitrary instants.
type Provider interface {
	// Name returns the provider name for display and logging.
	Name() string

	// State computes one body's state at t.
	State(body kepler.Body, t time.Time) (BodyState, error)

	// Snapshot computes all nine bodies at t, in table order.
	Snapshot(t time.Time) ([]BodyState, error)
}

// Mode selects which element table a provider uses.
type Mode int

const (
	ModeAuto  Mode = iota // short table inside its span, long table otherwise
	ModeShort             // 1800–2050 table only
	ModeLong              // 3000 BC – 3000 AD table only
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeShort:
		return "short"
	case ModeLong:
		return "long"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string, defaulting to auto.
func ParseMode(s string) Mode {
	switch s {
	case "short":
		return ModeShort
	case "long":
		return ModeLong
	default:
		return ModeAuto
	}
}
