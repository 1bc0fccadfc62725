package ephem

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
)

// SnapshotExport is the JSON-serializable form of a solar-system snapshot.
type SnapshotExport struct {
	Epoch  time.Time    `json:"epoch"`
	JED    float64      `json:"jed"`
	Table  string       `json:"table"`
	Bodies []BodyExport `json:"bodies"`
}

// BodyExport is a JSON-friendly body state.
type BodyExport struct {
	Name        string     `json:"name"`
	EclipticAU  [3]float64 `json:"ecliptic_au"`
	ICRFAU      [3]float64 `json:"icrf_au"`
	DistanceAU  float64    `json:"distance_au"`
	EclLonDeg   float64    `json:"ecl_lon_deg"`
	EclLatDeg   float64    `json:"ecl_lat_deg"`
	RADeg       float64    `json:"ra_deg"`
	DecDeg      float64    `json:"dec_deg"`
	MeanAnomDeg float64    `json:"mean_anomaly_deg"`
	EccAnomDeg  float64    `json:"eccentric_anomaly_deg"`
}

// ExportSnapshot converts computed body states to an exportable format.
func ExportSnapshot(states []BodyState, epoch time.Time, tableName string) *SnapshotExport {
	export := &SnapshotExport{
		Epoch: epoch,
		JED:   astro.JulianEphemerisDateTime(epoch),
		Table: tableName,
	}

	for _, st := range states {
		ra, dec := st.RADec()
		export.Bodies = append(export.Bodies, BodyExport{
			Name:        st.Body.String(),
			EclipticAU:  [3]float64{st.Ecliptic.X, st.Ecliptic.Y, st.Ecliptic.Z},
			ICRFAU:      [3]float64{st.ICRF.X, st.ICRF.Y, st.ICRF.Z},
			DistanceAU:  st.DistanceAU(),
			EclLonDeg:   st.EclipticLonDeg(),
			EclLatDeg:   st.EclipticLatDeg(),
			RADeg:       ra,
			DecDeg:      dec,
			MeanAnomDeg: st.Elements.MeanAnomDeg,
			EccAnomDeg:  st.EccAnomDeg,
		})
	}
	return export
}

// WriteJSON writes the snapshot as indented JSON.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummaryTable writes a text table of all bodies to w.
func WriteSummaryTable(w io.Writer, states []BodyState, epoch time.Time, tableName string) {
	fmt.Fprintf(w, "Solar system @ %s (JED %.5f, %s table)\n",
		epoch.UTC().Format(time.RFC3339), astro.JulianEphemerisDateTime(epoch), tableName)
	fmt.Fprintln(w, strings.Repeat("─", 86))

	fmt.Fprintf(w, "%-14s %12s %12s %12s %10s %9s %8s\n",
		"Body", "X (AU)", "Y (AU)", "Z (AU)", "r (AU)", "Lon", "Lat")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	for _, st := range states {
		fmt.Fprintf(w, "%-14s %12.6f %12.6f %12.6f %10.4f %8.2f° %7.2f°\n",
			st.Body.String(),
			st.Ecliptic.X, st.Ecliptic.Y, st.Ecliptic.Z,
			st.DistanceAU(), st.EclipticLonDeg(), st.EclipticLatDeg())
	}
}

// WriteBodyCard writes a detailed readout for one body to w.
func WriteBodyCard(w io.Writer, st BodyState) {
	ra, dec := st.RADec()

	fmt.Fprintf(w, "%s @ %s\n", st.Body, st.Time.UTC().Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 48))
	fmt.Fprintf(w, "  a = %.8f AU    e = %.8f\n", st.Elements.SemiMajorAU, st.Elements.Ecc)
	fmt.Fprintf(w, "  I = %.6f°   Ω = %.6f°   ω = %.6f°\n",
		st.Elements.InclDeg, st.Elements.NodeDeg, st.Elements.ArgPeriDeg)
	fmt.Fprintf(w, "  M = %.6f°   E = %.6f°\n", st.Elements.MeanAnomDeg, st.EccAnomDeg)
	fmt.Fprintf(w, "  ecliptic: (%.6f, %.6f, %.6f) AU\n",
		st.Ecliptic.X, st.Ecliptic.Y, st.Ecliptic.Z)
	fmt.Fprintf(w, "  ICRF:     (%.6f, %.6f, %.6f) AU\n",
		st.ICRF.X, st.ICRF.Y, st.ICRF.Z)
	fmt.Fprintf(w, "  r = %.4f AU   lon = %.2f°   lat = %.2f°   RA = %.2f°   Dec = %.2f°\n",
		st.DistanceAU(), st.EclipticLonDeg(), st.EclipticLatDeg(), ra, dec)
}
