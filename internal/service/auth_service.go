package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/client-registry/internal/credentials"
	"github.com/spec-kit/client-registry/internal/domain"
	"github.com/spec-kit/client-registry/internal/events"
	"github.com/spec-kit/client-registry/internal/repository"
	"github.com/spec-kit/client-registry/internal/sanitize"
	apperrors "github.com/spec-kit/client-registry/pkg/util"
)

// AuthService authenticates clients against their stored password hash.
type AuthService struct {
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(clients repository.ClientRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{clients: clients, dispatcher: dispatcher}
}

// Authenticate verifies the password for the given email and returns a
// session marker on success. A missing account and a wrong password yield
// the same generic error, so callers cannot enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.SessionMarker, error) {
	email = sanitize.Clean(email)
	if email == "" || password == "" {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	client, err := s.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.NewInternalError(err)
	}

	if err := credentials.Verify(client.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventClientLoggedIn,
			Timestamp: time.Now(),
			Payload:   events.ClientLoggedInPayload{ClientID: client.ID},
		})
	}

	return &domain.SessionMarker{ClientID: client.ID, Name: client.Name}, nil
}
