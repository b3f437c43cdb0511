package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartGateway is the backend cart resource of the logged-in shopper.
// Every mutating call returns the new authoritative cart.
type CartGateway interface {
	GetCart(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, item entity.TransferItem) (*entity.Cart, error)
	UpdateItem(ctx context.Context, cartItemID int64, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, cartItemID int64) (*entity.Cart, error)
	ClearCart(ctx context.Context) (*entity.Cart, error)
}
