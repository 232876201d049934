package auth

import (
	"errors"
	"strings"
	"sync"
)

// ErrNotAuthenticated is returned by any authenticated call made before a
// successful login. Such calls never reach the network.
var ErrNotAuthenticated = errors.New("not authenticated: login required")

type SessionState int

const (
	Unauthenticated SessionState = iota
	Authenticated
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Session holds the access token of the current process. It only moves from
// Unauthenticated to Authenticated; a failed login leaves it untouched.
type Session struct {
	mu    sync.RWMutex
	state SessionState
	token string
}

func NewSession() *Session {
	return &Session{state: Unauthenticated}
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the access token or ErrNotAuthenticated.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return "", ErrNotAuthenticated
	}
	return s.token, nil
}

// Establish stores the token of a successful login. An empty token is
// rejected and the session keeps its previous state.
func (s *Session) Establish(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty access token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.state = Authenticated
	return nil
}
