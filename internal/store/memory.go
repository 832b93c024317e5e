// Package store keeps per-session analyst state in memory: the user
// label, the current table, and the chat history. Nothing survives a
// process restart.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/insightedge/insightedge-backend/internal"
	"github.com/insightedge/insightedge-backend/internal/table"
)

// Session is the mutable state of one interactive session. All methods
// are safe for concurrent use; reads hand out defensive copies.
type Session struct {
	id string

	mu      sync.Mutex
	user    string
	tbl     *table.Table
	history []internal.Exchange
}

func (s *Session) ID() string { return s.id }

// SetUser sets or resets the user label.
func (s *Session) SetUser(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = label
}

func (s *Session) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetTable replaces the current table wholesale.
func (s *Session) SetTable(t *table.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tbl = t
}

func (s *Session) Table() *table.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tbl
}

// AppendExchange adds one exchange to the history. History is
// append-only; entries are never edited or reordered.
func (s *Session) AppendExchange(e internal.Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, e)
}

// History returns a copy of the exchanges in append order.
func (s *Session) History() []internal.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]internal.Exchange, len(s.history))
	copy(cp, s.history)
	return cp
}

// Store holds sessions keyed by ID. Each session carries its own lock;
// the store lock only guards the map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new empty session under a fresh UUID.
func (st *Store) Create() *Session {
	s := &Session{id: uuid.NewString()}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.id] = s
	return s
}

// Get looks up a session by ID.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
