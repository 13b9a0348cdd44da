package services

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/melroseheights/portfolio-backend/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AuthService issues admin tokens for the optional auth layer. When
// JWT_SECRET is unset the layer is disabled and every endpoint stays open.
type AuthService interface {
	Enabled() bool
	Secret() string
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	secret       string
	passwordHash string
}

func NewAuthService() AuthService {
	return &authService{
		secret:       os.Getenv("JWT_SECRET"),
		passwordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func (s *authService) Enabled() bool { return s.secret != "" }

func (s *authService) Secret() string { return s.secret }

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	const op = "AuthService.Login"

	if !s.Enabled() {
		return "", utils.E(utils.CodeUnavailable, op, "auth is not configured", nil)
	}
	if s.passwordHash == "" {
		return "", utils.E(utils.CodeInternal, op, "ADMIN_PASSWORD_HASH is not set", nil)
	}
	if err := utils.CheckPassword(s.passwordHash, password); err != nil {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", err)
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	})

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return signed, nil
}
