// Package session keeps per-session conversation history. Histories
// are append-only, isolated per session, and live for the process
// lifetime only.
package session

import (
	"sync"

	"faq-chatbot/internal/models"

	"github.com/google/uuid"
)

type Session struct {
	ID string

	mu    sync.Mutex
	turns []models.ConversationTurn
}

// Append records a completed turn. Serialized per session so
// interleaved appends cannot corrupt order.
func (s *Session) Append(turn models.ConversationTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
}

// History returns a copy for read-only use by the composer.
func (s *Session) History() []models.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Create() *Session {
	id := uuid.NewString()
	s := &Session{ID: id}
	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return s
}

// GetOrCreate resolves a client-supplied session ID, minting a fresh
// session for unknown or empty IDs.
func (st *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s
		}
	}
	return st.Create()
}
