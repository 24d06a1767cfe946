package service

import (
	"sync"
	"time"

	"honest/internal/core/lexicon"
	"honest/internal/platform/logger"
	"honest/internal/services/session/domain"

	"github.com/google/uuid"
)

// Manager tracks live sessions by id
type Manager struct {
	mu       sync.Mutex
	lex      *lexicon.Pack
	debounce time.Duration
	sessions map[uuid.UUID]*Session
	log      logger.Logger
}

// NewManager creates a session manager. debounce <= 0 uses the default window
func NewManager(lex *lexicon.Pack, debounce time.Duration) *Manager {
	if lex == nil {
		panic("session.Manager requires a non nil lexicon")
	}
	return &Manager{
		lex:      lex,
		debounce: debounce,
		sessions: make(map[uuid.UUID]*Session),
		log:      *logger.Named("session"),
	}
}

// Open creates a session wired to the given emitter
func (m *Manager) Open(emit func(domain.Outbound)) *Session {
	s := newSession(m.lex, m.debounce, emit)
	m.mu.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()
	m.log.Info().Str("session_id", s.ID.String()).Int("active", n).Msg("session opened")
	return s
}

// Close stops the session and forgets it
func (m *Manager) Close(s *Session) {
	if s == nil {
		return
	}
	s.Close()
	m.mu.Lock()
	delete(m.sessions, s.ID)
	n := len(m.sessions)
	m.mu.Unlock()
	m.log.Info().Str("session_id", s.ID.String()).Int("active", n).Msg("session closed")
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
