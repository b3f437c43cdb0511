// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AddToCartInput defines a product line to add to the active cart.
// Product is optional: when nil and the shopper is a guest, the product is looked up by ProductID.
type AddToCartInput struct {
	ProductID int64           `json:"productId" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gte=1"`
	VariantID *int64          `json:"variantId,omitempty" validate:"omitempty,gt=0"`
	Product   *entity.Product `json:"-"`
}

// AddCartItemInput defines a line added to the authenticated cart.
type AddCartItemInput struct {
	ProductID int64  `validate:"required,gt=0"`
	Quantity  int    `validate:"required,gte=1"`
	VariantID *int64 `validate:"omitempty,gt=0"`
}

// --- Output DTOs ---

// MergeReport describes what a guest cart merge replayed.
type MergeReport struct {
	Replayed int  `json:"replayed"`
	Failed   int  `json:"failed"`
	Skipped  bool `json:"skipped"` // The guest cart was empty.
}

// CartUsecase is the single cart entry point. It routes every call to the guest
// or the authenticated store according to the login state at call time.
type CartUsecase interface {
	GetCart(ctx context.Context) (*entity.Cart, error)
	AddToCart(ctx context.Context, input *AddToCartInput) (*entity.Cart, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error)
	ClearCart(ctx context.Context) (*entity.Cart, error)
	// ItemCount returns the total quantity in the active cart, or 0 on any error.
	ItemCount(ctx context.Context) int
	// Total returns the active cart amount, or 0 on any error.
	Total(ctx context.Context) decimal.Decimal
}

// GuestCartUsecase manages the anonymous cart kept in the durable local store.
type GuestCartUsecase interface {
	Get(ctx context.Context) (*entity.Cart, error)
	Add(ctx context.Context, product *entity.Product, quantity int, variantID *int64) (*entity.Cart, error)
	Update(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	Remove(ctx context.Context, itemID string) (*entity.Cart, error)
	Clear(ctx context.Context) (*entity.Cart, error)
	// Snapshot returns the lines in transferable form, in cart order.
	Snapshot(ctx context.Context) ([]entity.TransferItem, error)
}

// UserCartUsecase manages the cart owned by the backend for the logged-in shopper.
type UserCartUsecase interface {
	Get(ctx context.Context) (*entity.Cart, error)
	Add(ctx context.Context, input *AddCartItemInput) (*entity.Cart, error)
	Update(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	Remove(ctx context.Context, itemID string) (*entity.Cart, error)
	Clear(ctx context.Context) (*entity.Cart, error)
}

// CartMergeUsecase moves the guest cart into the authenticated cart after login.
type CartMergeUsecase interface {
	MergeGuestCart(ctx context.Context) (*entity.Cart, *MergeReport, error)
}
