package astro

import (
	"math"
)

// ProjectedPoint is a 2D projected position with the original distances
// kept for HUD display.
type ProjectedPoint struct {
	X float64 // display X (ecliptic plane, toward vernal equinox)
	Y float64 // display Y (ecliptic plane, 90° ahead)
	R float64 // true 3D heliocentric distance in AU
	Z float64 // original Z offset in AU (ecliptic latitude)
}

// ScaleMode defines how radial distances map to display space.
type ScaleMode int

const (
	// ScaleLogR uses logarithmic scaling, showing Mercury through Pluto
	// in one view.
	ScaleLogR ScaleMode = iota

	// ScaleInner uses linear scaling clamped at 5 AU for the inner system.
	ScaleInner

	// ScaleOuter compresses the outer system: linear to 5 AU, log beyond.
	ScaleOuter
)

// ProjectionConfig configures the top-down ecliptic projection.
type ProjectionConfig struct {
	Scale float64
	Mode  ScaleMode
}

// DefaultProjectionConfig returns the default projection.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{Scale: 1.0, Mode: ScaleLogR}
}

// ProjectEclipticTopDown projects a heliocentric ecliptic vector onto the
// ecliptic plane for a top-down display, applying the configured radial
// scaling.
func ProjectEclipticTopDown(v Vec3, cfg ProjectionConfig) ProjectedPoint {
	rAU := math.Sqrt(v.X*v.X + v.Y*v.Y)
	rDisplay := scaleRadius(rAU, cfg)
	angle := math.Atan2(v.Y, v.X)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angle) * cfg.Scale,
		Y: rDisplay * math.Sin(angle) * cfg.Scale,
		R: v.Norm(),
		Z: v.Z,
	}
}

func scaleRadius(rAU float64, cfg ProjectionConfig) float64 {
	switch cfg.Mode {
	case ScaleInner:
		if rAU > 5 {
			return 5
		}
		return rAU

	case ScaleOuter:
		if rAU <= 5 {
			return rAU / 5 * 0.5
		}
		return 0.5 + math.Log10(rAU/5+1)*0.5

	default: // ScaleLogR
		// log10(r+1): 0 at the Sun, ~0.78 at Jupiter, ~1.6 at Pluto
		return math.Log10(rAU + 1)
	}
}
