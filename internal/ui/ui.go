// Package ui provides the terminal orrery using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/ephem"
	"github.com/litescript/ls-orrery/internal/kepler"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/state"
)

// Msg types for Bubble Tea.
type (
	// TickMsg triggers a periodic recompute of the snapshot.
	TickMsg time.Time
)

// Model is the root Bubble Tea model: an interactive top-down orrery.
type Model struct {
	provider ephem.Provider
	stateMgr *state.Manager
	log      *logging.Logger

	// Queried epoch. In realtime mode it follows the wall clock; time
	// stepping keys switch to a fixed epoch.
	epoch    time.Time
	realtime bool

	width  int
	height int
	ready  bool

	// View state
	focusIdx   int // index into snapshot.Bodies, -1 = Sun
	zoomLevel  int
	panX       float64
	panY       float64
	scaleMode  astro.ScaleMode
	showICRF   bool // HUD shows ICRF coordinates instead of ecliptic
	showLabels bool
	userPanned bool

	snapshot state.Snapshot
}

// Discrete zoom levels for clean stepping.
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

const defaultZoomLevel = 3 // 1.0x

// New creates the root UI model.
func New(provider ephem.Provider, stateMgr *state.Manager, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		provider:   provider,
		stateMgr:   stateMgr,
		log:        log,
		epoch:      time.Now(),
		realtime:   true,
		focusIdx:   -1,
		zoomLevel:  defaultZoomLevel,
		scaleMode:  astro.ScaleLogR,
		showLabels: true,
	}
}

func (m Model) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.recomputeCmd(), m.tickCmd())
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.stateMgr.RefreshInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// recomputeCmd computes a fresh snapshot for the current epoch.
func (m Model) recomputeCmd() tea.Cmd {
	provider := m.provider
	epoch := m.epoch
	mgr := m.stateMgr
	return func() tea.Msg {
		snap := computeSnapshot(provider, epoch)
		mgr.Publish(snap)
		return snap
	}
}

// computeSnapshot evaluates all bodies at the given epoch.
func computeSnapshot(provider ephem.Provider, epoch time.Time) state.Snapshot {
	snap := state.Snapshot{
		Epoch:      epoch,
		ComputedAt: time.Now(),
		Table:      provider.Name(),
	}
	bodies, err := provider.Snapshot(epoch)
	if err != nil {
		snap.Err = err
		return snap
	}
	snap.Bodies = bodies
	return snap
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case state.Snapshot:
		m.snapshot = msg
		if msg.Err != nil {
			m.log.Error("snapshot failed: %v", msg.Err)
		}

	case TickMsg:
		if m.realtime {
			m.epoch = time.Time(msg)
			return m, tea.Batch(m.recomputeCmd(), m.tickCmd())
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Focus navigation
	case "j", "[":
		m.focusPrev()
	case "k", "]":
		m.focusNext()

	// Viewport panning
	case "up":
		m.panY -= 0.1 / m.scale()
		m.userPanned = true
	case "down":
		m.panY += 0.1 / m.scale()
		m.userPanned = true
	case "left":
		m.panX -= 0.1 / m.scale()
		m.userPanned = true
	case "right":
		m.panX += 0.1 / m.scale()
		m.userPanned = true
	case "c":
		m.panX, m.panY = 0, 0
		m.userPanned = false
	case "f":
		m.centerOnFocused()
		m.userPanned = false

	// Zoom
	case "+", "=":
		if m.zoomLevel < len(zoomLevels)-1 {
			m.zoomLevel++
			if !m.userPanned {
				m.centerOnFocused()
			}
		}
	case "-":
		if m.zoomLevel > 0 {
			m.zoomLevel--
			if !m.userPanned {
				m.centerOnFocused()
			}
		}
	case "0":
		m.zoomLevel = defaultZoomLevel
		if !m.userPanned {
			m.centerOnFocused()
		}

	// Display toggles
	case "z":
		m.scaleMode = (m.scaleMode + 1) % 3
		if !m.userPanned {
			m.centerOnFocused()
		}
	case "l":
		m.showLabels = !m.showLabels
	case "e":
		m.showICRF = !m.showICRF

	// Time stepping: fixes the epoch and steps it
	case ",":
		return m.stepEpoch(0, 0, -1)
	case ".":
		return m.stepEpoch(0, 0, 1)
	case "m":
		return m.stepEpoch(0, -1, 0)
	case "M":
		return m.stepEpoch(0, 1, 0)
	case "<":
		return m.stepEpoch(-1, 0, 0)
	case ">":
		return m.stepEpoch(1, 0, 0)
	case "n":
		m.realtime = true
		m.epoch = time.Now()
		return m, m.recomputeCmd()

	case "r":
		m.panX, m.panY = 0, 0
		m.zoomLevel = defaultZoomLevel
		m.userPanned = false
	}
	return m, nil
}

func (m Model) stepEpoch(years, months, days int) (tea.Model, tea.Cmd) {
	m.realtime = false
	m.epoch = m.epoch.AddDate(years, months, days)
	return m, m.recomputeCmd()
}

func (m *Model) focusNext() {
	n := len(m.snapshot.Bodies)
	if n == 0 {
		return
	}
	m.focusIdx++
	if m.focusIdx >= n {
		m.focusIdx = -1 // wrap to Sun
	}
	m.centerOnFocused()
	m.userPanned = false
}

func (m *Model) focusPrev() {
	n := len(m.snapshot.Bodies)
	if n == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < -1 {
		m.focusIdx = n - 1
	}
	m.centerOnFocused()
	m.userPanned = false
}

// centerOnFocused pans the view to center on the focused body.
func (m *Model) centerOnFocused() {
	if m.focusIdx < 0 || m.focusIdx >= len(m.snapshot.Bodies) {
		m.panX, m.panY = 0, 0
		return
	}

	body := m.snapshot.Bodies[m.focusIdx]
	cfg := astro.ProjectionConfig{Scale: 1.0, Mode: m.scaleMode}
	proj := astro.ProjectEclipticTopDown(body.Ecliptic, cfg)
	m.panX = -proj.X
	m.panY = -proj.Y
}

// FocusedBody returns the currently focused body state, or nil for Sun.
func (m Model) FocusedBody() *ephem.BodyState {
	if m.focusIdx >= 0 && m.focusIdx < len(m.snapshot.Bodies) {
		return &m.snapshot.Bodies[m.focusIdx]
	}
	return nil
}

// SetFocus sets the focused body.
func (m *Model) SetFocus(body kepler.Body) {
	for i := range m.snapshot.Bodies {
		if m.snapshot.Bodies[i].Body == body {
			m.focusIdx = i
			return
		}
	}
}
