package ephem

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-orrery/internal/kepler"
)

var (
	// Inside both table spans.
	tJ2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	// Inside only the long span.
	tMedieval = time.Date(1500, 6, 1, 0, 0, 0, 0, time.UTC)
	// Outside every span.
	tFarFuture = time.Date(5000, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"short", ModeShort},
		{"long", ModeLong},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"invalid", ModeAuto},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseMode(tc.input); got != tc.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeShort, "short"},
		{ModeLong, "long"},
		{ModeAuto, "auto"},
		{Mode(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.mode.String(); got != tc.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tc.mode, got, tc.expected)
		}
	}
}

func TestTableSelection(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		at        time.Time
		wantTable string
		wantErr   bool
	}{
		{"auto in short span", ModeAuto, tJ2000, kepler.TableShort.Name, false},
		{"auto falls back to long", ModeAuto, tMedieval, kepler.TableLong.Name, false},
		{"auto outside all spans", ModeAuto, tFarFuture, "", true},
		{"short in span", ModeShort, tJ2000, kepler.TableShort.Name, false},
		{"short outside span", ModeShort, tMedieval, "", true},
		{"long in span", ModeLong, tMedieval, kepler.TableLong.Name, false},
		{"long outside span", ModeLong, tFarFuture, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewKeplerProvider(tt.mode, nil)
			tbl, err := p.Table(tt.at)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Table: %v", err)
			}
			if tbl.Name != tt.wantTable {
				t.Errorf("table = %s, want %s", tbl.Name, tt.wantTable)
			}
		})
	}
}

func TestSnapshotReturnsAllBodiesInOrder(t *testing.T) {
	p := NewKeplerProvider(ModeAuto, nil)

	states, err := p.Snapshot(tJ2000)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(states) != int(kepler.NumBodies) {
		t.Fatalf("got %d bodies, want %d", len(states), kepler.NumBodies)
	}
	for i, st := range states {
		if st.Body != kepler.Body(i) {
			t.Errorf("states[%d].Body = %v, want %v", i, st.Body, kepler.Body(i))
		}
		if st.Ecliptic.Norm() == 0 {
			t.Errorf("%v has zero position", st.Body)
		}
	}
}

func TestStateEMBarycenter(t *testing.T) {
	p := NewKeplerProvider(ModeShort, nil)

	st, err := p.State(kepler.EMBarycenter, tJ2000)
	if err != nil {
		t.Fatalf("State: %v", err)
	}

	if math.Abs(st.DistanceAU()-1.0) > 0.02 {
		t.Errorf("EM barycenter distance = %.5f AU, want ≈ 1", st.DistanceAU())
	}
	if math.Abs(st.Elements.MeanAnomDeg-(-2.47311027)) > 1e-9 {
		t.Errorf("M = %.9f°, want -2.47311027°", st.Elements.MeanAnomDeg)
	}

	// ICRF position must have the same magnitude as the ecliptic one.
	if math.Abs(st.ICRF.Norm()-st.Ecliptic.Norm()) > 1e-12 {
		t.Errorf("frame rotation changed distance: %v vs %v", st.ICRF.Norm(), st.Ecliptic.Norm())
	}
}

func TestStateDeterminism(t *testing.T) {
	p := NewKeplerProvider(ModeAuto, nil)

	first, err := p.State(kepler.Saturn, tJ2000)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	for i := 0; i < 50; i++ {
		st, err := p.State(kepler.Saturn, tJ2000)
		if err != nil {
			t.Fatalf("State: %v", err)
		}
		if st.Ecliptic != first.Ecliptic || st.ICRF != first.ICRF {
			t.Fatalf("call %d differs: %+v vs %+v", i, st, first)
		}
	}
}

func TestShortAndLongTablesAgreeNearJ2000(t *testing.T) {
	// The two fits differ, but near J2000 they describe the same sky:
	// positions should agree to well under 0.01 AU for the inner bodies.
	pShort := NewKeplerProvider(ModeShort, nil)
	pLong := NewKeplerProvider(ModeLong, nil)

	for _, body := range []kepler.Body{kepler.Mercury, kepler.Venus, kepler.EMBarycenter, kepler.Mars} {
		a, err := pShort.State(body, tJ2000)
		if err != nil {
			t.Fatalf("short %v: %v", body, err)
		}
		b, err := pLong.State(body, tJ2000)
		if err != nil {
			t.Fatalf("long %v: %v", body, err)
		}
		if d := a.Ecliptic.Sub(b.Ecliptic).Norm(); d > 0.01 {
			t.Errorf("%v: short/long positions differ by %.5f AU", body, d)
		}
	}
}
