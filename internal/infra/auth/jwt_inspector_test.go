package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server_side_secret"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_Inspect(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := signToken(t, jwt.MapClaims{
		"token_type": "access",
		"exp":        exp.Unix(),
		"user_id":    42,
	})

	claims, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.True(t, exp.Equal(claims.ExpiresAt))
}

func TestJWTInspector_SubjectFallback(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "7"})

	claims, err := NewJWTInspector().Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestJWTInspector_InvalidToken(t *testing.T) {
	_, err := NewJWTInspector().Inspect("not-a-jwt")
	assert.Error(t, err)

	assert.True(t, ExpiresAt(NewJWTInspector(), "not-a-jwt").IsZero())
	assert.True(t, ExpiresAt(nil, "x").IsZero())
}
