package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthUseCase(t *testing.T) *AuthUseCase {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	uc := NewAuthUseCase(AuthConfig{
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		AdminEmail:        "Admin@Agency.test",
		AdminPasswordHash: hash,
	}, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestAuthUseCase_LoginAndParse(t *testing.T) {
	uc := newTestAuthUseCase(t)

	tok, err := uc.Login(context.Background(), " admin@agency.test ", "correct horse")
	require.NoError(t, err)
	assert.True(t, tok.ExpiresAt.Equal(fixedNow.Add(time.Hour)))

	s, err := uc.ParseToken(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@agency.test", s.Email)
	assert.Equal(t, RoleAdmin, s.Role)
}

func TestAuthUseCase_LoginRejected(t *testing.T) {
	uc := newTestAuthUseCase(t)

	_, err := uc.Login(context.Background(), "admin@agency.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = uc.Login(context.Background(), "someone@agency.test", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	unconfigured := NewAuthUseCase(AuthConfig{}, nil)
	_, err = unconfigured.Login(context.Background(), "admin@agency.test", "x")
	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}

func TestAuthUseCase_ParseTokenRejects(t *testing.T) {
	uc := newTestAuthUseCase(t)
	tok, err := uc.Login(context.Background(), "admin@agency.test", "correct horse")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := *uc
		later.now = func() time.Time { return fixedNow.Add(2 * time.Hour) }
		_, err := later.ParseToken(tok.Token)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := *uc
		other.cfg.JWTSecret = "another-secret"
		_, err := other.ParseToken(tok.Token)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("non admin role", func(t *testing.T) {
		claims := JWTClaims{
			Email: "client@example.com",
			Role:  "client",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = uc.ParseToken(signed)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := uc.ParseToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})
}
