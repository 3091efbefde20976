package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClient(t *testing.T, repo *stubClientRepo, email, password string) {
	t.Helper()
	svc := NewRegistrationService(repo, newStubSupplierRepo(), nil, 4)
	in := validClientInput()
	in.Email = email
	in.Password = password
	_, err := svc.RegisterClient(context.Background(), in)
	require.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	repo := newStubClientRepo()
	seedClient(t, repo, "maria@example.com", "correct-horse")
	svc := NewAuthService(repo, nil)

	marker, err := svc.Authenticate(context.Background(), "maria@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, int64(1), marker.ClientID)
	assert.Equal(t, "Maria Silva", marker.Name)
}

func TestAuthenticateSanitizesEmail(t *testing.T) {
	repo := newStubClientRepo()
	seedClient(t, repo, "maria@example.com", "correct-horse")
	svc := NewAuthService(repo, nil)

	marker, err := svc.Authenticate(context.Background(), "  maria@example.com;  ", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", marker.Name)
}

func TestAuthenticateGenericFailure(t *testing.T) {
	repo := newStubClientRepo()
	seedClient(t, repo, "maria@example.com", "correct-horse")
	svc := NewAuthService(repo, nil)

	_, unknownErr := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	require.Error(t, unknownErr)

	_, wrongErr := svc.Authenticate(context.Background(), "maria@example.com", "wrong-pass")
	require.Error(t, wrongErr)

	assert.Equal(t, unknownErr, wrongErr,
		"missing account and wrong password must be indistinguishable")
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, unknownErr))
}

func TestAuthenticateEmptyInput(t *testing.T) {
	svc := NewAuthService(newStubClientRepo(), nil)

	_, err := svc.Authenticate(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, err))
}
