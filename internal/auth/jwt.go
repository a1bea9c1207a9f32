// internal/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sampada/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		expiresIn: cfg.JWTExpiresIn,
		now:       time.Now,
	}
}

// GenerateToken signs a session token carrying the holder's display name.
func (s *TokenService) GenerateToken(name string) (string, error) {
	issuedAt := s.now()
	expTime := issuedAt.Add(s.expiresIn)
	claims := jwt.MapClaims{
		"name": name,
		"iat":  issuedAt.Unix(),
		"exp":  expTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	slog.Info("JWT generated", "holder", name, "expires_at", expTime.Format("2006-01-02 15:04:05"))
	return tokenStr, nil
}

// ParseToken returns the display name from a valid token.
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidClaims
	}
	name, ok := claims["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", ErrInvalidClaims
	}
	slog.Debug("JWT parsed successfully", "holder", name)
	return name, nil
}
