package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Payment method identifiers known to the storefront.
const (
	PaymentMethodBankTransfer   = "bank_transfer"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

// Payment status values accepted by the backend.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// PaymentMethod is a payment option offered at checkout.
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// BankTransferInfo holds the account a bank transfer should be sent to.
type BankTransferInfo struct {
	BankName        string `json:"bankName"`
	AccountNumber   string `json:"accountNumber"`
	AccountName     string `json:"accountName"`
	TransferContent string `json:"transferContent"`
	QRCodeURL       string `json:"qrCodeUrl,omitempty"`
}

// OrderNumberPlaceholder is replaced with the order number in a transfer content template.
const OrderNumberPlaceholder = "[ORDER_NUMBER]"

// ForOrder returns a copy of the info with the transfer content filled in for the order.
func (b *BankTransferInfo) ForOrder(orderNumber string) *BankTransferInfo {
	filled := *b
	filled.TransferContent = strings.ReplaceAll(b.TransferContent, OrderNumberPlaceholder, orderNumber)

	return &filled
}

// ShippingSource records whether shipping rates came from the backend or local defaults.
type ShippingSource string

const (
	ShippingSourceGateway  ShippingSource = "gateway"
	ShippingSourceFallback ShippingSource = "fallback"
)

// ShippingFee is the rate card for delivering a cart to an address.
type ShippingFee struct {
	BaseShipping          decimal.Decimal `json:"baseShipping"`
	ExpressShipping       decimal.Decimal `json:"expressShipping"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	Source                ShippingSource  `json:"source"`
}

// Fee is what the cart pays. Carts at or above a positive threshold ship free.
func (f *ShippingFee) Fee(cartTotal decimal.Decimal, express bool) decimal.Decimal {
	if f.FreeShippingThreshold.IsPositive() && cartTotal.GreaterThanOrEqual(f.FreeShippingThreshold) {
		return decimal.Zero
	}
	if express {
		return f.ExpressShipping
	}

	return f.BaseShipping
}
