package web

import (
	"sync"

	"github.com/google/uuid"
)

// sessions maps login cookie tokens to user names.
type sessions struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func newSessions() *sessions {
	return &sessions{tokens: make(map[string]string)}
}

// create starts a session for user and returns its token.
func (s *sessions) create(user string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = user
	s.mu.Unlock()
	return token
}

// user returns the user for token.
func (s *sessions) user(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.tokens[token]
	return u, ok
}

// remove ends a session.
func (s *sessions) remove(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
