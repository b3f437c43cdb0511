package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CancelOrderInput defines an order cancellation.
type CancelOrderInput struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// ConfirmPaymentInput defines a completed bank transfer.
type ConfirmPaymentInput struct {
	TransactionID string          `json:"transactionId" validate:"required,max=100"`
	Amount        decimal.Decimal `json:"amount"`
}

// UpdatePaymentStatusInput sets the payment state of an order.
type UpdatePaymentStatusInput struct {
	Status        string `json:"status" validate:"required,oneof=pending completed failed refunded"`
	TransactionID string `json:"transactionId" validate:"max=100"`
}

// OrderUsecase covers the shopper's order history.
type OrderUsecase interface {
	// List returns one page of orders; a limit of zero uses the configured page size.
	List(ctx context.Context, page, limit int) (*entity.OrderPage, error)
	Cancel(ctx context.Context, orderID int64, input *CancelOrderInput) error
	ConfirmPayment(ctx context.Context, orderID int64, input *ConfirmPaymentInput) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, input *UpdatePaymentStatusInput) error
	GenerateInvoice(ctx context.Context, orderID int64) (*entity.Invoice, error)
	GetInvoice(ctx context.Context, orderID int64) (*entity.Invoice, error)
}
