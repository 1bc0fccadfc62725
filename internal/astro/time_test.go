package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianEphemerisDate(t *testing.T) {
	tests := []struct {
		name   string
		millis int64
		want   float64
	}{
		{"unix epoch", 0, 2440587.5},
		{"one day in", 86400000, 2440588.5},
		{"J2000 epoch", 946728000000, 2451545.0},
		{"half day", 43200000, 2440588.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JulianEphemerisDate(tt.millis); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JulianEphemerisDate(%d) = %v, want %v", tt.millis, got, tt.want)
			}
		})
	}
}

func TestJulianEphemerisDateTime(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := JulianEphemerisDateTime(j2000); math.Abs(got-J2000) > 1e-9 {
		t.Errorf("JED(2000-01-01T12:00Z) = %v, want %v", got, J2000)
	}
}

func TestJulianCenturies(t *testing.T) {
	tests := []struct {
		jed  float64
		want float64
	}{
		{J2000, 0},
		{J2000 + DaysPerCentury, 1},
		{J2000 - DaysPerCentury/2, -0.5},
		{2440587.5, (2440587.5 - J2000) / DaysPerCentury},
	}

	for _, tt := range tests {
		if got := JulianCenturies(tt.jed); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("JulianCenturies(%v) = %v, want %v", tt.jed, got, tt.want)
		}
	}
}
