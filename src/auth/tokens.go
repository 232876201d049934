package auth

import (
	"sync"

	"cardexcli/src/model"

	"github.com/google/uuid"
)

// TokenStore issues and resolves the demo API's bearer tokens. Tokens live
// in memory for the lifetime of the server process.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]*model.User
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]*model.User)}
}

func (s *TokenStore) Issue(user *model.User) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = user
	s.mu.Unlock()
	return token
}

func (s *TokenStore) Lookup(token string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.tokens[token]
	return user, ok
}
