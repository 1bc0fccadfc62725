package ephem

import (
	"fmt"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/kepler"
	"github.com/litescript/ls-orrery/internal/logging"
)

// KeplerProvider computes body states locally from the bundled element
// tables. It is stateless apart from its configuration; every query is an
// independent evaluation.
type KeplerProvider struct {
	mode Mode
	log  *logging.Logger
}

// NewKeplerProvider creates a provider using the given table mode.
// A nil logger discards diagnostics.
func NewKeplerProvider(mode Mode, log *logging.Logger) *KeplerProvider {
	if log == nil {
		log = logging.Discard()
	}
	return &KeplerProvider{mode: mode, log: log}
}

// Name implements Provider.
func (p *KeplerProvider) Name() string {
	return "kepler/" + p.mode.String()
}

// Table returns the element table the provider would use at t, or an
// error when the requested instant falls outside every allowed table's
// fit span.
func (p *KeplerProvider) Table(t time.Time) (*kepler.ElementTable, error) {
	jed := astro.JulianEphemerisDateTime(t)

	switch p.mode {
	case ModeShort:
		if !kepler.TableShort.Covers(jed) {
			return nil, fmt.Errorf("ephem: %s outside %s table span", t.Format(time.RFC3339), kepler.TableShort.Name)
		}
		return &kepler.TableShort, nil

	case ModeLong:
		if !kepler.TableLong.Covers(jed) {
			return nil, fmt.Errorf("ephem: %s outside %s table span", t.Format(time.RFC3339), kepler.TableLong.Name)
		}
		return &kepler.TableLong, nil

	default: // ModeAuto
		if kepler.TableShort.Covers(jed) {
			return &kepler.TableShort, nil
		}
		if kepler.TableLong.Covers(jed) {
			p.log.Debug("instant %s outside short table span, using %s", t.Format(time.RFC3339), kepler.TableLong.Name)
			return &kepler.TableLong, nil
		}
		return nil, fmt.Errorf("ephem: %s outside every table span", t.Format(time.RFC3339))
	}
}

// State implements Provider.
func (p *KeplerProvider) State(body kepler.Body, t time.Time) (BodyState, error) {
	tbl, err := p.Table(t)
	if err != nil {
		return BodyState{}, err
	}
	return p.state(tbl, body, t)
}

// Snapshot implements Provider.
func (p *KeplerProvider) Snapshot(t time.Time) ([]BodyState, error) {
	tbl, err := p.Table(t)
	if err != nil {
		return nil, err
	}

	states := make([]BodyState, 0, kepler.NumBodies)
	for body := kepler.Mercury; body < kepler.NumBodies; body++ {
		st, err := p.state(tbl, body, t)
		if err != nil {
			return nil, err
		}
		states = append(states, st)
	}
	return states, nil
}

func (p *KeplerProvider) state(tbl *kepler.ElementTable, body kepler.Body, t time.Time) (BodyState, error) {
	el, err := kepler.Evaluate(tbl, body, t.UnixMilli())
	if err != nil {
		return BodyState{}, err
	}

	ea, converged := kepler.SolveKepler(el.MeanAnomDeg, el.Ecc)
	if !converged {
		// The value is still usable; the solve returns its best iterate.
		p.log.Warn("Kepler solve for %s did not converge within the iteration cap (M=%.6f°, e=%.6f)",
			body, el.MeanAnomDeg, el.Ecc)
	}

	ecl := kepler.EclipticPosition(el, ea)
	return BodyState{
		Body:       body,
		Time:       t,
		Elements:   el,
		EccAnomDeg: ea,
		Ecliptic:   ecl,
		ICRF:       kepler.ConvertToICRF(ecl),
	}, nil
}
