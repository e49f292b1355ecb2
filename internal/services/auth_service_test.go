package services

import (
	"testing"
	"time"

	"timin-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_IssueAndVerify(t *testing.T) {
	svc := NewAuthService("test-secret", zerolog.Nop())
	user := &models.User{ID: "usr_1", Role: "worker"}

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := svc.VerifyToken(token)
	require.NotNil(t, claims)
	assert.Equal(t, "usr_1", claims.UserID)
	assert.Equal(t, "worker", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_VerifyFailsClosed(t *testing.T) {
	svc := NewAuthService("test-secret", zerolog.Nop())

	t.Run("malformed token", func(t *testing.T) {
		assert.Nil(t, svc.VerifyToken(""))
		assert.Nil(t, svc.VerifyToken("not-a-token"))
		assert.Nil(t, svc.VerifyToken("a.b"))
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewAuthService("other-secret", zerolog.Nop())
		token, err := other.IssueToken(&models.User{ID: "usr_1", Role: "worker"})
		require.NoError(t, err)
		assert.Nil(t, svc.VerifyToken(token))
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &Claims{
			UserID: "usr_1",
			Role:   "worker",
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		assert.Nil(t, svc.VerifyToken(token))
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := &Claims{UserID: "usr_1", Role: "worker"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		assert.Nil(t, svc.VerifyToken(token))
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := svc.IssueToken(&models.User{ID: "usr_1", Role: "worker"})
		require.NoError(t, err)
		assert.Nil(t, svc.VerifyToken(token+"x"))
	})
}
