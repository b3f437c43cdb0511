package impl

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// requireLogin fails with ErrLoginRequired unless a user record is stored.
func requireLogin(ctx context.Context, sessions repository.SessionRepository) error {
	user, err := sessions.LoadUser(ctx)
	if err != nil {
		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if user == nil {
		return domainerrors.ErrLoginRequired
	}

	return nil
}
