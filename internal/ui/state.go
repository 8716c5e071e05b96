package ui

import (
	"sync"
	"time"

	"github.com/OpenTraceLab/menukit/pkg/menu"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Source    string
	Container menu.Container
	Selected  string
	Logs      []string

	LastUpdated time.Time
}

// AppState tracks the previewed tree and the activity log shared between
// the Gio event loop and callers.
type AppState struct {
	mu sync.RWMutex

	source    string
	container menu.Container
	selected  string

	logs     []string
	logLimit int

	lastUpdated time.Time
}

// NewState returns a state previewing c.
func NewState(source string, c menu.Container) *AppState {
	if c == nil {
		c = &menu.ContextMenu{}
	}
	return &AppState{
		source:      source,
		container:   c,
		logLimit:    200,
		lastUpdated: time.Now(),
	}
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	return StateSnapshot{
		Source:      s.source,
		Container:   s.container,
		Selected:    s.selected,
		Logs:        logCopy,
		LastUpdated: s.lastUpdated,
	}
}

// Select records a leaf activation in the activity log.
func (s *AppState) Select(e entry) {
	msg := activation(e)
	if msg == "" {
		return
	}
	s.mu.Lock()
	if e.Group == nil {
		s.selected = e.ID
	}
	s.mu.Unlock()
	s.AppendLog(msg)
}

// AppendLog appends a log message, trimming the oldest entries past the limit.
func (s *AppState) AppendLog(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, time.Now().Format(time.TimeOnly)+" "+msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
	s.lastUpdated = time.Now()
}
