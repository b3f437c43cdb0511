package service

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// ShippingQuote is the backend rate card. A rate is invalid when the backend left it out.
type ShippingQuote struct {
	BaseShipping          decimal.NullDecimal
	ExpressShipping       decimal.NullDecimal
	FreeShippingThreshold decimal.NullDecimal
}

// PaymentGateway exposes the backend payment configuration.
type PaymentGateway interface {
	ListPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error)
	GetBankTransferInfo(ctx context.Context) (*entity.BankTransferInfo, error)
	CalculateShippingFee(ctx context.Context, addressID int64, cartTotal decimal.Decimal) (*ShippingQuote, error)
}
