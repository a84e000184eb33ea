package service

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultJWTSecret is used when no secret is configured and JWT_SECRET is unset.
// Never rely on it in production.
const DefaultJWTSecret = "dev-secret-change-in-production"

// Token errors.
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

var (
	secretMu         sync.RWMutex
	configuredSecret string
)

// SetJWTSecret sets the signing secret used by GenerateToken and ValidateToken.
// An empty secret falls back to JWT_SECRET.
func SetJWTSecret(secret string) {
	secretMu.Lock()
	configuredSecret = secret
	secretMu.Unlock()
}

func jwtSecret() []byte {
	secretMu.RLock()
	secret := configuredSecret
	secretMu.RUnlock()
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		secret = DefaultJWTSecret
	}
	return []byte(secret)
}

// GenerateToken creates a signed HS256 token for userID. Tokens are issued by
// the dashboard's identity service; this exists for local development and tests.
func GenerateToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses and validates a JWT token string.
// Returns the user ID if valid, or an error if invalid.
func ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidClaims
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidClaims
	}

	return userID, nil
}
