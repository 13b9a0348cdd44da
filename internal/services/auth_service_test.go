package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/melroseheights/portfolio-backend/internal/utils"
)

func testAuthService(t *testing.T, password string) AuthService {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	return NewAuthService()
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc := testAuthService(t, "hunter2")

	token, err := svc.Login(context.Background(), "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)
	require.Equal(t, "admin", claims.Subject)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := testAuthService(t, "hunter2")

	_, err := svc.Login(context.Background(), "wrong")
	require.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestLoginDisabledWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	svc := NewAuthService()

	require.False(t, svc.Enabled())
	_, err := svc.Login(context.Background(), "anything")
	require.Error(t, err)
}
