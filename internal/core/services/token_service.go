package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

// sessionClaims is the payload of a session token. Subject carries the
// account id; Device records the device the session was opened on, the same
// key the anonymous-identity fallback uses.
type sessionClaims struct {
	Device string `json:"dev,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates session tokens. Validation is strict:
// HMAC only, issuer pinned, and the account must still exist, so tokens of a
// deleted account die immediately instead of at expiry.
type TokenService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	users     domain.UserRepository
}

func NewTokenService(secretKey string, issuer string, ttl time.Duration, users domain.UserRepository) *TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		users:     users,
	}
}

func (s *TokenService) GenerateToken(userID, deviceID string) (string, error) {
	now := time.Now()

	claims := sessionClaims{
		Device: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken returns the account id a session token belongs to.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	var claims sessionClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	if claims.Issuer != s.issuer {
		return "", errors.New("invalid token issuer")
	}
	if claims.Subject == "" {
		return "", errors.New("invalid token subject")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := s.users.GetByID(ctx, claims.Subject); err != nil {
		return "", fmt.Errorf("user no longer exists or db error: %w", err)
	}

	return claims.Subject, nil
}
