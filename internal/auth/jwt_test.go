package auth

import (
	"testing"
	"time"

	"sampada/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *TokenService {
	return NewTokenService(config.Config{JWTSecret: secret, JWTExpiresIn: time.Hour})
}

func TestTokenService_RoundTrip(t *testing.T) {
	ts := newTestService("test-secret")

	token, err := ts.GenerateToken("Asha Rao")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	name, err := ts.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", name)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := newTestService("one").GenerateToken("Asha Rao")
	require.NoError(t, err)

	_, err = newTestService("two").ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	ts := newTestService("test-secret")
	ts.now = func() time.Time { return time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC) }

	token, err := ts.GenerateToken("Asha Rao")
	require.NoError(t, err)

	ts.now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	_, err = ts.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlg(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"name": "Mallory",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestService("test-secret").ParseToken(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_BlankName(t *testing.T) {
	ts := newTestService("test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": "   ",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ts.ParseToken(raw)
	require.ErrorIs(t, err, ErrInvalidClaims)
}

func TestTokenService_Garbage(t *testing.T) {
	_, err := newTestService("test-secret").ParseToken("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
