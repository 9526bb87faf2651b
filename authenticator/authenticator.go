// Package authenticator issues and verifies the bearer tokens that gate the
// operator endpoints.
package authenticator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned when a token was valid but is past its expiry.
// The middleware surfaces it with a distinct message.
var ErrTokenExpired = errors.New("token has expired")

// Claims are the verified contents of an operator token
type Claims struct {
	Username string
	IssuedAt time.Time
	Expiry   time.Time
}

// Manager signs and verifies HS256 operator tokens
type Manager struct {
	secret []byte
	expiry time.Duration
}

// NewManager creates a token manager. The expiry applies to every token issued.
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// IssueToken creates a signed token for the given operator
func (m *Manager) IssueToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(m.expiry).Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates a token string and returns its claims
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	username, _ := mapClaims["sub"].(string)
	if username == "" {
		return nil, errors.New("token has no subject")
	}

	claims := &Claims{Username: username}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.Expiry = exp.Time
	}

	return claims, nil
}
