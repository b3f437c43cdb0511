package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterRequest is the backend account registration payload.
type RegisterRequest struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

// AuthGateway signs the shopper in against the backend.
// The backend answers with a session cookie, which the gateway's cookie jar keeps.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*entity.User, error)
	Register(ctx context.Context, req *RegisterRequest) error
}

// CredentialStore holds the backend session credentials between calls.
type CredentialStore interface {
	// Reset forgets every credential, in memory and persisted.
	Reset(ctx context.Context) error
}
