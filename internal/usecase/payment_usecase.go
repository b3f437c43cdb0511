package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ShippingFeeInput asks for the rate card of a cart shipped to an address.
type ShippingFeeInput struct {
	AddressID int64           `json:"addressId" validate:"gte=0"`
	CartTotal decimal.Decimal `json:"cartTotal"`
}

// PaymentUsecase exposes payment options. Backend failures fall back to configured defaults.
type PaymentUsecase interface {
	ListMethods(ctx context.Context) []*entity.PaymentMethod
	// BankTransferInfo returns the transfer account; a non-empty order number fills the transfer content.
	BankTransferInfo(ctx context.Context, orderNumber string) *entity.BankTransferInfo
	// BankTransferQR renders the transfer details for an order as a PNG QR code.
	BankTransferQR(ctx context.Context, orderNumber string) ([]byte, error)
	// ShippingFee returns the backend rate card; missing rates use the configured fallback.
	ShippingFee(ctx context.Context, input *ShippingFeeInput) (*entity.ShippingFee, error)
}
