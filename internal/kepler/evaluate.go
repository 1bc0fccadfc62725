package kepler

import (
	"fmt"
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

// Evaluate computes a body's osculating elements at the given instant,
// expressed as milliseconds since the Unix epoch. Each element is a
// linear polynomial in Julian centuries past J2000.0; the mean anomaly
// additionally carries the table's periodic correction terms.
//
// An out-of-range body is the only failure mode.
func Evaluate(tbl *ElementTable, body Body, unixMillis int64) (Elements, error) {
	if body < 0 || body >= NumBodies {
		return Elements{}, fmt.Errorf("kepler: body index %d out of range [0,%d)", body, NumBodies)
	}

	t := astro.JulianCenturies(astro.JulianEphemerisDate(unixMillis))
	row := &tbl.Rows[body]

	el := Elements{
		SemiMajorAU: row.A + row.ARate*t,
		Ecc:         row.E + row.ERate*t,
		InclDeg:     row.I + row.IRate*t,
		MeanLonDeg:  row.L + row.LRate*t,
		LongPeriDeg: row.W + row.WRate*t,
		NodeDeg:     row.O + row.ORate*t,
	}
	el.ArgPeriDeg = el.LongPeriDeg - el.NodeDeg

	sinF, cosF := math.Sincos(astro.DegToRad(row.F * t))
	m := el.MeanLonDeg - el.LongPeriDeg + row.B*t*t + row.C*cosF + row.S*sinF
	el.MeanAnomDeg = foldMeanAnomaly(m)

	return el, nil
}

// foldMeanAnomaly brings a mean anomaly into [−180°, 180°]. Values
// already inside the range are returned untouched, even when they are
// not the canonical modulo-360 representative.
func foldMeanAnomaly(m float64) float64 {
	if m >= -180 && m <= 180 {
		return m
	}
	m = math.Mod(m, 360)
	if m > 180 {
		m -= 360
	} else if m < -180 {
		m += 360
	}
	return m
}
