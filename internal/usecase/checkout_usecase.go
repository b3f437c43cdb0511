package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// BeginCheckoutInput selects the cart lines to check out. Empty means the whole cart.
type BeginCheckoutInput struct {
	CartItemIDs []string `json:"cartItemIds"`
}

// PlaceOrderInput carries the free-text part of an order.
type PlaceOrderInput struct {
	Notes string `json:"notes" validate:"max=500"`
}

// OrderSummaryUsecase prices a checkout.
type OrderSummaryUsecase interface {
	// Calculate asks the backend for a summary and falls back to a local computation
	// when the address is unknown or the backend call fails. It never fails.
	Calculate(ctx context.Context, items []entity.LineItem, addressID int64, discountCode string) *entity.OrderSummary
}

// CheckoutUsecase drives a checkout from cart snapshot to placed order.
type CheckoutUsecase interface {
	Begin(ctx context.Context, input *BeginCheckoutInput) (*entity.Checkout, error)
	Get(ctx context.Context, checkoutID uuid.UUID) (*entity.Checkout, error)
	SelectAddress(ctx context.Context, checkoutID uuid.UUID, addressID int64) (*entity.Checkout, error)
	SelectPaymentMethod(ctx context.Context, checkoutID uuid.UUID, method string) (*entity.Checkout, error)
	ApplyDiscountCode(ctx context.Context, checkoutID uuid.UUID, code string) (*entity.Checkout, error)
	PlaceOrder(ctx context.Context, checkoutID uuid.UUID, input *PlaceOrderInput) (*entity.Checkout, error)
}
