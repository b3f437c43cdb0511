package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

type sessionRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewSessionRepository creates a SessionRepository stored under the user and session_cookies keys
func NewSessionRepository(store repository.KVStore, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{store: store, logger: logger}
}

// LoadUser returns the stored user, or nil when absent or unreadable
func (r *sessionRepository) LoadUser(ctx context.Context) (*entity.User, error) {
	data, err := r.store.Get(ctx, constants.UserKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		r.logger.WarnContext(ctx, "Stored user record is unreadable, treating as logged out",
			slog.Any("error", err),
		)

		return nil, nil
	}

	return &user, nil
}

// SaveUser stores the user record
func (r *sessionRepository) SaveUser(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode user")
	}

	return errors.Wrap(r.store.Set(ctx, constants.UserKey, data), "save user")
}

// DeleteUser removes the user record
func (r *sessionRepository) DeleteUser(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, constants.UserKey), "delete user")
}

// LoadCookies returns the stored cookie snapshot, or nil when absent
func (r *sessionRepository) LoadCookies(ctx context.Context) ([]byte, error) {
	data, err := r.store.Get(ctx, constants.SessionCookiesKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session cookies")
	}

	return data, nil
}

// SaveCookies stores the cookie snapshot
func (r *sessionRepository) SaveCookies(ctx context.Context, data []byte) error {
	return errors.Wrap(r.store.Set(ctx, constants.SessionCookiesKey, data), "save session cookies")
}

// DeleteCookies removes the cookie snapshot
func (r *sessionRepository) DeleteCookies(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, constants.SessionCookiesKey), "delete session cookies")
}
