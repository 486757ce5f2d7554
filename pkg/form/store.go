package form

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store keeps form sessions in memory. Nothing is persisted; idle sessions
// are dropped after ttl.
type Store struct {
	ttl time.Duration
	now func() time.Time
	log *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewStore creates a store. A janitor sweeps expired sessions every ttl/2
// until Close; ttl <= 0 disables expiry.
func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		ttl:      ttl,
		now:      time.Now,
		log:      logger,
		sessions: make(map[uuid.UUID]*Session),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor(ttl / 2)
	} else {
		close(s.done)
	}
	return s
}

func (s *Store) Create() *Session {
	sess := newSession(s.now)
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess
}

func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	// a late extraction result for this session must not land anywhere
	sess.Reset()
	delete(s.sessions, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than ttl and returns how many were dropped.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		last, idle := sess.idleSince()
		if idle && last.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Close stops the janitor.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Store) janitor(every time.Duration) {
	defer close(s.done)
	if every <= 0 {
		every = time.Second
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				s.log.Info("form.sessions.expired", zap.Int("count", n), zap.Int("remaining", s.Len()))
			}
		}
	}
}
