package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_StartsUnauthenticated(t *testing.T) {
	s := NewSession()

	assert.Equal(t, Unauthenticated, s.State())
	token, err := s.Token()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, token)
}

func TestSession_Establish(t *testing.T) {
	s := NewSession()

	require.NoError(t, s.Establish("tok-1"))
	assert.Equal(t, Authenticated, s.State())

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestSession_EmptyTokenKeepsState(t *testing.T) {
	s := NewSession()
	assert.Error(t, s.Establish("  "))
	assert.Equal(t, Unauthenticated, s.State())

	require.NoError(t, s.Establish("tok-1"))
	assert.Error(t, s.Establish(""))

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token, "a rejected token must not replace the current one")
}
