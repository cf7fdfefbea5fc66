// internal/auth/jwt.go
package auth

import (
	"errors"
	"log/slog"
	"time"

	"contaflow-bot/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService проверяет токены, выпущенные сервисом авторизации (HS256, user id в "sub").
type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		expiresIn: 24 * time.Hour,
	}
}

// GenerateToken выпускает токен в том же формате; нужен для локальной отладки и тестов.
func (s *TokenService) GenerateToken(userID string) (string, error) {
	expTime := time.Now().Add(s.expiresIn)
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(expTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err == nil {
		slog.Debug("JWT generated", "user_id", userID, "expires_at", expTime.Format("2006-01-02 15:04:05"))
	}
	return tokenStr, err
}

// ParseToken возвращает user id из claim "sub".
func (s *TokenService) ParseToken(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", errors.New("invalid token subject")
	}
	return userID.String(), nil
}
