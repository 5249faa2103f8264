package screen

import (
	"strings"
	"sync"

	"github.com/Tanishkag23/xpense/internal/session"
)

// Row is one rendered table row. ID is set for rows that carry an action
// (the expense delete button); Weight is a 0-1 bar length for chart rows.
type Row struct {
	ID     int64
	Cells  []string
	Weight float64
}

// Screen is safe for concurrent use. Renderers running in different
// goroutines may write the same region; the last write wins.
type Screen struct {
	mu      sync.RWMutex
	inputs  map[ElementID]string
	text    map[ElementID]string
	tables  map[ElementID][]Row
	visible map[ElementID]bool
	alerts  []string
}

// New returns an empty screen showing the guest greeting and the login panel.
func New() *Screen {
	s := &Screen{
		inputs:  make(map[ElementID]string),
		text:    make(map[ElementID]string),
		tables:  make(map[ElementID][]Row),
		visible: make(map[ElementID]bool),
	}
	s.ApplySession(session.Project(session.Guest()))
	return s
}

// SetInput stores the value of an input field.
func (s *Screen) SetInput(id ElementID, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[id] = v
}

// Input returns an input value with surrounding whitespace trimmed.
func (s *Screen) Input(id ElementID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.TrimSpace(s.inputs[id])
}

// ClearInputs empties the given fields.
func (s *Screen) ClearInputs(ids ...ElementID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.inputs, id)
	}
}

// SetText sets a text cell.
func (s *Screen) SetText(id ElementID, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text[id] = v
}

// Text returns a text cell.
func (s *Screen) Text(id ElementID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text[id]
}

// ReplaceRows swaps the whole body of a table. Rows are never merged.
func (s *Screen) ReplaceRows(id ElementID, rows []Row) {
	cp := make([]Row, len(rows))
	copy(cp, rows)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[id] = cp
}

// Rows returns a copy of a table body.
func (s *Screen) Rows(id ElementID) []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]Row, len(s.tables[id]))
	copy(cp, s.tables[id])
	return cp
}

// ApplySession writes a session projection: the greeting and panel flag.
func (s *Screen) ApplySession(p session.Presentation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text[HelloUser] = p.Greeting
	s.visible[LoginPanel] = p.PanelVisible
}

// Visible reports whether the container id is shown. Containers never
// toggled are hidden.
func (s *Screen) Visible(id ElementID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible[id]
}

// PanelVisible reports whether the login panel is shown.
func (s *Screen) PanelVisible() bool {
	return s.Visible(LoginPanel)
}

// Alert queues a message for the user.
func (s *Screen) Alert(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, msg)
}

// TakeAlerts returns and clears pending alerts, oldest first.
func (s *Screen) TakeAlerts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.alerts
	s.alerts = nil
	return out
}

// Snapshot is a consistent copy of everything a renderer draws.
type Snapshot struct {
	Text         map[ElementID]string
	Inputs       map[ElementID]string
	Tables       map[ElementID][]Row
	PanelVisible bool
}

// Snapshot copies the current screen state under one lock.
func (s *Screen) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Text:         make(map[ElementID]string, len(s.text)),
		Inputs:       make(map[ElementID]string, len(s.inputs)),
		Tables:       make(map[ElementID][]Row, len(s.tables)),
		PanelVisible: s.visible[LoginPanel],
	}
	for k, v := range s.text {
		snap.Text[k] = v
	}
	for k, v := range s.inputs {
		snap.Inputs[k] = v
	}
	for k, rows := range s.tables {
		cp := make([]Row, len(rows))
		copy(cp, rows)
		snap.Tables[k] = cp
	}
	return snap
}
