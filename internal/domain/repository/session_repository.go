package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionRepository persists the logged-in user record and the backend session cookies.
type SessionRepository interface {
	// LoadUser returns the stored user, or nil when no readable record exists.
	LoadUser(ctx context.Context) (*entity.User, error)
	SaveUser(ctx context.Context, user *entity.User) error
	DeleteUser(ctx context.Context) error

	// LoadCookies returns the raw cookie snapshot, or nil when none is stored.
	LoadCookies(ctx context.Context) ([]byte, error)
	SaveCookies(ctx context.Context, data []byte) error
	DeleteCookies(ctx context.Context) error
}
