package astro

import (
	"time"
)

// J2000 is the Julian Ephemeris Date of the J2000.0 epoch
// (2000-01-01T12:00:00Z).
const J2000 = 2451545.0

// DaysPerCentury is the number of days in a Julian century.
const DaysPerCentury = 36525.0

// unixEpochJD is the Julian date of the Unix epoch (1970-01-01T00:00:00Z).
const unixEpochJD = 2440587.5

// JulianEphemerisDate converts milliseconds since the Unix epoch to a
// Julian Ephemeris Date.
func JulianEphemerisDate(unixMillis int64) float64 {
	return float64(unixMillis)/1000/86400 + unixEpochJD
}

// JulianEphemerisDateTime converts a time.Time to a Julian Ephemeris Date.
func JulianEphemerisDateTime(t time.Time) float64 {
	return JulianEphemerisDate(t.UnixMilli())
}

// JulianCenturies converts a Julian Ephemeris Date to Julian centuries
// past the J2000.0 epoch.
func JulianCenturies(jed float64) float64 {
	return (jed - J2000) / DaysPerCentury
}
