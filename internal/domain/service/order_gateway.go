package service

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// SummaryItem is a priced line sent for order summary calculation.
type SummaryItem struct {
	ProductID int64
	VariantID *int64
	Quantity  int
	Price     decimal.Decimal
}

// SummaryRequest asks the backend to price a checkout.
type SummaryRequest struct {
	Items        []SummaryItem
	AddressID    int64
	DiscountCode string
}

// CreateOrderRequest places an order from server cart lines.
type CreateOrderRequest struct {
	ShippingAddressID int64
	PaymentMethod     string
	CartItemIDs       []int64
	Notes             string
}

// ConfirmPaymentRequest reports a completed bank transfer.
type ConfirmPaymentRequest struct {
	OrderID       int64
	TransactionID string
	Amount        decimal.Decimal
}

// OrderGateway covers order pricing, placement and history on the backend.
type OrderGateway interface {
	CalculateSummary(ctx context.Context, req *SummaryRequest) (*entity.OrderSummary, error)
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error)
	ListOrders(ctx context.Context, page, limit int) (*entity.OrderPage, error)
	CancelOrder(ctx context.Context, orderID int64, reason string) error
	ConfirmPayment(ctx context.Context, req *ConfirmPaymentRequest) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, status, transactionID string) error
	GenerateInvoice(ctx context.Context, orderID int64) (*entity.Invoice, error)
	GetInvoice(ctx context.Context, orderID int64) (*entity.Invoice, error)
}
