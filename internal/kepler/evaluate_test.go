package kepler

import (
	"math"
	"testing"
)

// j2000Millis is the Unix-epoch millisecond timestamp of J2000.0
// (2000-01-01T12:00:00Z, JED 2451545.0).
const j2000Millis = int64(946728000000)

func TestEvaluateAtJ2000ReturnsBaseValues(t *testing.T) {
	// At T = 0 every rate term vanishes, so the evaluated elements must
	// equal the table's base column bit-for-bit.
	for body := Mercury; body < NumBodies; body++ {
		t.Run(body.String(), func(t *testing.T) {
			el, err := Evaluate(&TableShort, body, j2000Millis)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}

			row := TableShort.Rows[body]
			if el.SemiMajorAU != row.A {
				t.Errorf("a = %v, want %v", el.SemiMajorAU, row.A)
			}
			if el.Ecc != row.E {
				t.Errorf("e = %v, want %v", el.Ecc, row.E)
			}
			if el.InclDeg != row.I {
				t.Errorf("I = %v, want %v", el.InclDeg, row.I)
			}
			if el.MeanLonDeg != row.L {
				t.Errorf("L = %v, want %v", el.MeanLonDeg, row.L)
			}
			if el.LongPeriDeg != row.W {
				t.Errorf("W = %v, want %v", el.LongPeriDeg, row.W)
			}
			if el.NodeDeg != row.O {
				t.Errorf("O = %v, want %v", el.NodeDeg, row.O)
			}
			if el.ArgPeriDeg != row.W-row.O {
				t.Errorf("w = %v, want %v", el.ArgPeriDeg, row.W-row.O)
			}
		})
	}
}

func TestEvaluateEMBaryMeanAnomalyAtJ2000(t *testing.T) {
	el, err := Evaluate(&TableShort, EMBarycenter, j2000Millis)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// M = L0 − W0 = 100.46457166 − 102.93768193
	want := -2.47311027
	if math.Abs(el.MeanAnomDeg-want) > 1e-9 {
		t.Errorf("M = %.9f°, want %.9f°", el.MeanAnomDeg, want)
	}
}

func TestEvaluatePeriodicTermsAtJ2000(t *testing.T) {
	// At T = 0 the b·T² and s·sin terms vanish but c·cos(0) = c remains,
	// so the long table's outer bodies pick up their c coefficient.
	tests := []struct {
		body Body
		want float64 // L − W + c
	}{
		{Jupiter, 34.33479152 - 14.27495244 + 0.06064060},
		{Saturn, 50.07571329 - 92.86136063 - 0.13434469},
		{Uranus, 314.20276625 - 172.43404441 - 0.97731848},
		{Neptune, 304.22289287 - 46.68158724 + 0.68346318},
	}

	for _, tt := range tests {
		t.Run(tt.body.String(), func(t *testing.T) {
			el, err := Evaluate(&TableLong, tt.body, j2000Millis)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			want := foldMeanAnomaly(tt.want)
			if math.Abs(el.MeanAnomDeg-want) > 1e-9 {
				t.Errorf("M = %.9f°, want %.9f°", el.MeanAnomDeg, want)
			}
		})
	}
}

func TestEvaluateBodyOutOfRange(t *testing.T) {
	for _, body := range []Body{-1, NumBodies, NumBodies + 5} {
		if _, err := Evaluate(&TableShort, body, j2000Millis); err == nil {
			t.Errorf("Evaluate(body=%d) expected error, got nil", body)
		}
	}
}

func TestEvaluateDeterminism(t *testing.T) {
	// 2033-05-18T03:33:20Z, well inside the short span.
	const millis = int64(2000000000000)

	first, err := Evaluate(&TableShort, Mars, millis)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i := 0; i < 100; i++ {
		el, err := Evaluate(&TableShort, Mars, millis)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if el != first {
			t.Fatalf("call %d produced %+v, want %+v", i, el, first)
		}
	}
}

func TestFoldMeanAnomaly(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range positive", 100.5, 100.5},
		{"in range negative", -100.5, -100.5},
		// Exact boundaries are left untouched.
		{"positive boundary", 180, 180},
		{"negative boundary", -180, -180},
		{"just over", 190, -170},
		{"just under", -190, 170},
		{"full turn", 360, 0},
		{"negative full turn", -360, 0},
		{"large positive", 100000, math.Mod(100000, 360) - 360},
		{"wraps past fold", 550, -170},
		{"wraps past negative fold", -550, 170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foldMeanAnomaly(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("foldMeanAnomaly(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < -180 || got > 180 {
				t.Errorf("foldMeanAnomaly(%v) = %v, outside [-180,180]", tt.in, got)
			}
		})
	}
}

func TestTablesAreNeverMutated(t *testing.T) {
	shortBefore := TableShort
	longBefore := TableLong

	for i := 0; i < 1000; i++ {
		body := Body(i % int(NumBodies))
		millis := j2000Millis + int64(i)*86400000
		if _, err := Evaluate(&TableShort, body, millis); err != nil {
			t.Fatalf("Evaluate short: %v", err)
		}
		if _, err := ComputeEclipticCoordinates(&TableLong, body, millis); err != nil {
			t.Fatalf("compute long: %v", err)
		}
	}

	if TableShort != shortBefore {
		t.Error("TableShort was mutated by queries")
	}
	if TableLong != longBefore {
		t.Error("TableLong was mutated by queries")
	}
}
