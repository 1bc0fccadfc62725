// Command ls-orrery computes approximate positions of the major planets
// from the JPL Keplerian element tables and renders a terminal orrery.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/ephem"
	"github.com/litescript/ls-orrery/internal/kepler"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/ui"
	"github.com/litescript/ls-orrery/internal/version"
)

// CLI flags for headless mode
var (
	bodyName    string
	atSpec      string
	tableMode   string
	frameName   string
	summaryMode bool
	jsonPath    string
	watchEvery  time.Duration
	showVersion bool
)

const (
	defaultRefresh = 1 * time.Second
	minRefresh     = 100 * time.Millisecond
	maxRefresh     = 5 * time.Minute
)

func main() {
	refresh := flag.Duration("refresh", defaultRefresh, "TUI recompute interval (e.g., 1s)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&bodyName, "body", "", "Print a card for one body (e.g., mars, em-bary)")
	flag.StringVar(&atSpec, "at", "", "Epoch as RFC3339 (default: now)")
	flag.StringVar(&tableMode, "table", "auto", "Element table: short, long, or auto")
	flag.StringVar(&frameName, "frame", "ecliptic", "Output frame for -body: ecliptic or icrf")
	flag.BoolVar(&summaryMode, "summary", false, "Print a table of all bodies instead of the TUI")
	flag.StringVar(&jsonPath, "json", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchEvery, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-orrery v" + version.Version)
		return
	}

	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	epoch, err := parseEpoch(atSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	provider := ephem.NewKeplerProvider(ephem.ParseMode(tableMode), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	headless := bodyName != "" || summaryMode || jsonPath != "" || watchEvery > 0
	if headless {
		runHeadless(ctx, provider, epoch)
		return
	}

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = *refresh
	stateMgr := state.NewManager(stateCfg)

	model := ui.New(provider, stateMgr, logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// parseEpoch interprets the -at flag. Empty means now.
func parseEpoch(spec string) (time.Time, error) {
	if spec == "" || spec == "now" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse -at %q: %w", spec, err)
	}
	return t, nil
}

// parseBody maps a CLI body name to its table index.
func parseBody(name string) (kepler.Body, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mercury":
		return kepler.Mercury, nil
	case "venus":
		return kepler.Venus, nil
	case "earth", "em-bary", "embary", "em bary":
		return kepler.EMBarycenter, nil
	case "mars":
		return kepler.Mars, nil
	case "jupiter":
		return kepler.Jupiter, nil
	case "saturn":
		return kepler.Saturn, nil
	case "uranus":
		return kepler.Uranus, nil
	case "neptune":
		return kepler.Neptune, nil
	case "pluto":
		return kepler.Pluto, nil
	}
	return 0, fmt.Errorf("unknown body %q", name)
}

// runHeadless handles all non-TUI modes.
func runHeadless(ctx context.Context, provider *ephem.KeplerProvider, epoch time.Time) {
	// In watch mode with no fixed epoch, each pass uses the current time.
	followClock := atSpec == "" || atSpec == "now"

	outputOnce := func(t time.Time) error {
		// Single-body card
		if bodyName != "" {
			body, err := parseBody(bodyName)
			if err != nil {
				return err
			}
			st, err := provider.State(body, t)
			if err != nil {
				return err
			}
			if strings.EqualFold(frameName, "icrf") {
				fmt.Printf("%s ICRF: %.8f %.8f %.8f AU\n",
					st.Body, st.ICRF.X, st.ICRF.Y, st.ICRF.Z)
			} else {
				ephem.WriteBodyCard(os.Stdout, st)
			}
			return nil
		}

		states, err := provider.Snapshot(t)
		if err != nil {
			return err
		}
		tbl, err := provider.Table(t)
		if err != nil {
			return err
		}

		if jsonPath != "" {
			export := ephem.ExportSnapshot(states, t, tbl.Name)
			if jsonPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(jsonPath)
				if err != nil {
					return fmt.Errorf("create JSON file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode || (jsonPath == "" && bodyName == "") {
			ephem.WriteSummaryTable(os.Stdout, states, t, tbl.Name)
		}
		return nil
	}

	if watchEvery == 0 {
		if err := outputOnce(epoch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval.
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if err := outputOnce(epoch); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case tick := <-ticker.C:
			if isTTY {
				fmt.Println()
			}
			t := epoch
			if followClock {
				t = tick
			}
			if err := outputOnce(t); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
