package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// GuestCartRepository persists the anonymous shopper's cart.
type GuestCartRepository interface {
	// Load returns the stored guest cart. A missing or unreadable value yields an empty cart.
	Load(ctx context.Context) (*entity.Cart, error)

	// Save overwrites the stored guest cart.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the stored guest cart.
	Delete(ctx context.Context) error
}
