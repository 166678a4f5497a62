package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgjet/internal/shared/config"
)

func newTestService(secret string, expMinutes int) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:           secret,
		AccessExpMinutes: expMinutes,
	})
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestService("test-secret", 60)

	token, err := svc.Issue(42, "COORDINATOR")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "COORDINATOR", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, err := newTestService("secret-a", 60).Issue(1, "ADMIN")
	require.NoError(t, err)

	_, err = newTestService("secret-b", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_ExpiredToken(t *testing.T) {
	svc := newTestService("test-secret", -5)

	token, err := svc.Issue(1, "REQUESTER")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_RejectsUnsignedToken(t *testing.T) {
	svc := newTestService("test-secret", 60)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := newTestService("test-secret", 60)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}
