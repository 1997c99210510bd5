// internal/session/session.go
package session

import (
	"sync"

	"github.com/pocketmart/pocketmart-data/internal/models"
)

// Session holds the currently signed-in user for the lifetime of the
// process. It is created empty by the application root and passed by
// reference to presentation code; nothing is persisted, so a restart
// signs everyone out.
type Session struct {
	mu   sync.RWMutex
	user *models.User
}

func New() *Session {
	return &Session{}
}

// SignIn replaces the current user wholesale. Profile updates re-call this
// with the fresh record.
func (s *Session) SignIn(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
}

func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Current returns a copy of the signed-in user, or nil. It never
// re-validates against the store.
func (s *Session) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
