// Package session issues and verifies the signed session tokens the
// transport layer hands to clients after login. Tokens are HS256 JWTs whose
// jti is also recorded server-side, so logout can revoke a session before
// it expires.
package session

import (
	"context"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/client-registry/internal/domain"
)

// ErrInvalidSession is returned for tampered, expired or revoked tokens.
var ErrInvalidSession = errors.New("invalid session")

// Claims describes the session token payload.
type Claims struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// Manager issues, verifies and revokes session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
}

// NewManager builds a manager over the given marker store.
func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl, store: store}
}

// TTL returns the session lifetime, used for cookie expiry.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the marker and records it server-side.
func (m *Manager) Issue(ctx context.Context, marker domain.SessionMarker) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)
	claims := &Claims{
		ClientID: marker.ClientID,
		Name:     marker.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	if err := m.store.Save(ctx, claims.ID, marker, m.ttl); err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates the token signature and expiry and requires the session
// to still be present in the store.
func (m *Manager) Verify(ctx context.Context, tokenStr string) (*domain.SessionMarker, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return nil, ErrInvalidSession
	}

	marker, err := m.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return marker, nil
}

// Revoke removes the session marker, invalidating the token immediately.
func (m *Manager) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return ErrInvalidSession
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *Manager) parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
