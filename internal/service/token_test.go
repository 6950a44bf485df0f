package service

import (
	"testing"
	"time"

	"cityhop/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", time.Minute)
	user := &model.User{ID: "user-1", Email: "a@b.c"}

	token, err := svc.issueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@b.c", claims.Email)
}

func TestToken_WrongSecretRejected(t *testing.T) {
	issuer := NewAuthService(nil, "secret-one", time.Minute)
	verifier := NewAuthService(nil, "secret-two", time.Minute)

	token, err := issuer.issueToken(&model.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestToken_ExpiredRejected(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", -time.Minute)

	token, err := svc.issueToken(&model.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}
