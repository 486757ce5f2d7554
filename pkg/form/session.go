package form

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resumefill/pkg/nlp"
	"github.com/artem13815/resumefill/pkg/resume"
)

// Status of a form session.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusFailed  Status = "failed"
	StatusReady   Status = "ready"
)

var (
	ErrBusy     = errors.New("an extraction is already in progress")
	ErrStale    = errors.New("result belongs to a reset session")
	ErrNotReady = errors.New("form has no data to edit")
	ErrNotFound = errors.New("form session not found")
)

// Ticket authorises delivering exactly one extraction result.
type Ticket struct {
	generation uint64
}

// State is a point-in-time copy of a session for rendering.
type State struct {
	ID        uuid.UUID            `json:"id"`
	Status    Status               `json:"status"`
	Error     string               `json:"error,omitempty"`
	Filename  string               `json:"filename,omitempty"`
	Data      *resume.ResumeRecord `json:"data,omitempty"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Session holds the transient state of one form editor.
type Session struct {
	id  uuid.UUID
	now func() time.Time

	mu         sync.Mutex
	status     Status
	errMsg     string
	filename   string
	data       *resume.ResumeRecord
	generation uint64
	touched    time.Time
}

func newSession(now func() time.Time) *Session {
	return &Session{id: uuid.New(), now: now, status: StatusIdle, touched: now()}
}

func (s *Session) ID() uuid.UUID { return s.id }

// Begin starts an extraction. Only one may be outstanding at a time.
func (s *Session) Begin(filename string) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusLoading {
		return Ticket{}, ErrBusy
	}
	s.generation++
	s.status = StatusLoading
	s.errMsg = ""
	s.data = nil
	s.filename = filename
	s.touched = s.now()
	return Ticket{generation: s.generation}, nil
}

// Complete stores a successful result if t is still current.
func (s *Session) Complete(t Ticket, rec resume.ResumeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.generation != s.generation || s.status != StatusLoading {
		return ErrStale
	}
	cp := rec.Clone()
	s.data = &cp
	s.status = StatusReady
	s.touched = s.now()
	return nil
}

// Fail stores the user-facing message if t is still current.
func (s *Session) Fail(t Ticket, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.generation != s.generation || s.status != StatusLoading {
		return ErrStale
	}
	s.status = StatusFailed
	s.errMsg = message
	s.touched = s.now()
	return nil
}

// Reset returns to idle and invalidates any pending ticket.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.status = StatusIdle
	s.errMsg = ""
	s.filename = ""
	s.data = nil
	s.touched = s.now()
}

// Update replaces the record with the user's edits. Skills typed by hand are
// trimmed and de-duplicated; everything else is stored as given.
func (s *Session) Update(rec resume.ResumeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady {
		return ErrNotReady
	}
	cp := rec.Clone()
	cp.Skills = nlp.CleanList(cp.Skills)
	s.data = &cp
	s.touched = s.now()
	return nil
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		ID:        s.id,
		Status:    s.status,
		Error:     s.errMsg,
		Filename:  s.filename,
		UpdatedAt: s.touched,
	}
	if s.data != nil {
		cp := s.data.Clone()
		st.Data = &cp
	}
	return st
}

// idleSince reports the last activity time; loading sessions are never idle.
func (s *Session) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched, s.status != StatusLoading
}
