package server

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/suolenkainen/venue-simulation/sim"
)

// Session is one live generator. Ticks on a session are serialised by its
// own mutex, so concurrent advance and stream requests never interleave
// inside a transition.
type Session struct {
	ID      string
	Created time.Time

	mu  sync.Mutex
	gen *sim.SequenceGenerator
}

// SessionState is the JSON view of a session.
type SessionState struct {
	ID          string            `json:"id"`
	Created     time.Time         `json:"created"`
	Seed        uint32            `json:"seed"`
	InitialSeed uint32            `json:"initial_seed"`
	Ticks       int64             `json:"ticks"`
	History     []float64         `json:"history"`
	Summary     sim.SeriesSummary `json:"summary"`
}

// TickFrame is sent for every tick, over HTTP and on the stream.
type TickFrame struct {
	SessionID string `json:"session_id"`
	Tick      int64  `json:"tick"`
	InputSeed uint32 `json:"input_seed"`
	sim.Sample
	History []float64 `json:"history"`
}

// Advance executes one tick.
func (s *Session) Advance() TickFrame {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed, tick := s.gen.Seed(), s.gen.Ticks()
	sample := s.gen.Advance()
	return TickFrame{
		SessionID: s.ID,
		Tick:      tick,
		InputSeed: seed,
		Sample:    sample,
		History:   s.gen.History(),
	}
}

// State returns a snapshot of the session.
func (s *Session) State() (SessionState, error) {
	s.mu.Lock()
	st := s.gen.State()
	s.mu.Unlock()

	summary, err := sim.SummarizeSeries(st.History)
	if err != nil {
		return SessionState{}, err
	}
	return SessionState{
		ID:          s.ID,
		Created:     s.Created,
		Seed:        st.Seed,
		InitialSeed: st.InitialSeed,
		Ticks:       st.Ticks,
		History:     st.History,
		Summary:     summary,
	}, nil
}

// Reset rewinds the session to its initial seed.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.Reset()
}

// ErrSessionLimit is returned by Create when the store is full.
var ErrSessionLimit = errors.New("session limit reached")

// SessionStore keeps sessions in memory, keyed by id.
type SessionStore struct {
	mu              sync.RWMutex
	sessions        map[string]*Session
	historyCapacity int
	maxSessions     int // <= 0 means unlimited
	now             func() time.Time
}

// NewSessionStore creates an empty store whose sessions keep historyCapacity
// values. At most maxSessions sessions live at once; a non-positive
// maxSessions lifts the limit.
func NewSessionStore(historyCapacity, maxSessions int) *SessionStore {
	return &SessionStore{
		sessions:        make(map[string]*Session),
		historyCapacity: historyCapacity,
		maxSessions:     maxSessions,
		now:             time.Now,
	}
}

// Create starts a session at seed. It fails with ErrSessionLimit when the
// store already holds maxSessions sessions.
func (st *SessionStore) Create(seed uint32) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.maxSessions > 0 && len(st.sessions) >= st.maxSessions {
		return nil, fmt.Errorf("%w (%d live)", ErrSessionLimit, len(st.sessions))
	}
	s := &Session{
		ID:      uuid.NewString(),
		Created: st.now().UTC(),
		gen:     sim.NewSequenceGenerator(seed, st.historyCapacity),
	}
	st.sessions[s.ID] = s
	return s, nil
}

// Get returns the session with id.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes the session with id and reports whether it existed.
func (st *SessionStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
