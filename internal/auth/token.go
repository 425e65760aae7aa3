package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adarshshan/stationaryPro/internal/domain"
)

// Identity is the verified claims pair extracted from a credential.
// It is a value, not a live session; nothing is looked up server-side.
type Identity struct {
	UserID string
	Mobile string
}

// TokenManager issues and verifies HS256-signed, time-bound credentials
// embedding the user's id and mobile number.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a credential for the user, valid for the configured window.
func (m *TokenManager) Issue(user domain.User) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrServerMisconfigured
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":     user.ID,
		"mobile": user.Mobile,
		"iat":    jwt.NewNumericDate(now),
		"exp":    jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token failed: %w", err)
	}
	return signed, nil
}

// Verify checks the credential and returns the embedded identity. A missing
// signing key fails closed; unsigned input is never accepted.
func (m *TokenManager) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrMissingCredential
	}
	if len(m.secret) == 0 {
		return Identity{}, ErrServerMisconfigured
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidCredential
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidCredential
	}
	id, _ := claims["id"].(string)
	mobile, _ := claims["mobile"].(string)
	if id == "" || mobile == "" {
		return Identity{}, ErrInvalidCredential
	}

	return Identity{UserID: id, Mobile: mobile}, nil
}
