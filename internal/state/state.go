// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-orrery/internal/ephem"
)

// Snapshot is one computed view of the solar system: all body states at a
// single epoch. Snapshots are immutable once published.
type Snapshot struct {
	Epoch      time.Time // the instant the positions are computed for
	ComputedAt time.Time // wall-clock time of the computation
	Table      string    // element table used
	Bodies     []ephem.BodyState
	Err        error // non-nil when the last computation failed
}

// Body returns the state for a named body, or nil if absent.
func (s Snapshot) Body(name string) *ephem.BodyState {
	for i := range s.Bodies {
		if s.Bodies[i].Body.String() == name {
			return &s.Bodies[i]
		}
	}
	return nil
}

// Config holds configuration for the state manager.
type Config struct {
	RefreshInterval time.Duration
	MaxHistoryLen   int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		RefreshInterval: time.Second,
		MaxHistoryLen:   120,
	}
}

// Manager holds the latest snapshot and a short history, guarded for
// concurrent access from the compute loop and the UI.
type Manager struct {
	mu sync.RWMutex

	current Snapshot
	history []Snapshot
	maxHist int

	refreshInterval time.Duration
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxHist := cfg.MaxHistoryLen
	if maxHist <= 0 {
		maxHist = 120
	}
	return &Manager{
		maxHist:         maxHist,
		refreshInterval: cfg.RefreshInterval,
	}
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// Publish atomically replaces the current snapshot and appends it to the
// history buffer.
func (m *Manager) Publish(snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = snap

	if snap.Err == nil {
		m.history = append(m.history, snap)
		if len(m.history) > m.maxHist {
			m.history = m.history[len(m.history)-m.maxHist:]
		}
	}
}

// Snapshot returns the current snapshot.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// History returns the retained snapshots, oldest first.
func (m *Manager) History() []Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Snapshot, len(m.history))
	copy(out, m.history)
	return out
}
