package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

// guestCartDocument is the stored shape of the guest cart: {items, totalAmount, totalItems}.
type guestCartDocument struct {
	Items       []entity.LineItem `json:"items"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	TotalItems  int               `json:"totalItems"`
}

type guestCartRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewGuestCartRepository creates a GuestCartRepository stored under the guest_cart key
func NewGuestCartRepository(store repository.KVStore, logger *slog.Logger) repository.GuestCartRepository {
	return &guestCartRepository{store: store, logger: logger}
}

// Load returns the stored guest cart; missing or corrupt data reads as an empty cart
func (r *guestCartRepository) Load(ctx context.Context) (*entity.Cart, error) {
	data, err := r.store.Get(ctx, constants.GuestCartKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return entity.NewGuestCart(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load guest cart")
	}

	var doc guestCartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.WarnContext(ctx, "Stored guest cart is unreadable, starting empty",
			slog.Any("error", err),
		)

		return entity.NewGuestCart(), nil
	}

	cart := entity.NewGuestCart()
	if doc.Items != nil {
		cart.Items = doc.Items
	}
	// totals are derived, never trusted from storage
	cart.Recalculate()

	return cart, nil
}

// Save overwrites the stored guest cart
func (r *guestCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	items := cart.Items
	if items == nil {
		items = []entity.LineItem{}
	}

	data, err := json.Marshal(guestCartDocument{
		Items:       items,
		TotalAmount: cart.TotalAmount,
		TotalItems:  cart.TotalItems,
	})
	if err != nil {
		return errors.Wrap(err, "encode guest cart")
	}

	return errors.Wrap(r.store.Set(ctx, constants.GuestCartKey, data), "save guest cart")
}

// Delete removes the stored guest cart
func (r *guestCartRepository) Delete(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, constants.GuestCartKey), "delete guest cart")
}
