package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummarySource records where an order summary came from.
type SummarySource string

const (
	SummarySourceGateway  SummarySource = "gateway"
	SummarySourceFallback SummarySource = "fallback"
)

// OrderSummary is the priced breakdown of a checkout.
type OrderSummary struct {
	Items       []LineItem      `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	Source      SummarySource   `json:"source"`
	AddressID   int64           `json:"addressId"`
	Fingerprint string          `json:"fingerprint"` // Digest of the inputs the summary was computed from.
}

// Order status values reported by the backend.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a placed order. Status and PaymentStatus are owned by the backend.
type Order struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
	Items           []LineItem      `json:"items,omitempty"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt,omitzero"`
}

// OrderPage is one page of order history.
type OrderPage struct {
	Orders []*Order `json:"orders"`
	Total  int      `json:"total"`
	Page   int      `json:"page"`
	Limit  int      `json:"limit"`
}

// InvoiceCustomer is the billing party printed on an invoice.
type InvoiceCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Invoice is the backend-issued bill for an order. Amounts are taken as sent.
type Invoice struct {
	InvoiceID     int64           `json:"invoiceId"`
	OrderID       int64           `json:"orderId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	IssuedDate    time.Time       `json:"issuedDate,omitzero"`
	DueDate       time.Time       `json:"dueDate,omitzero"`
	Customer      InvoiceCustomer `json:"customerInfo"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingFee   decimal.Decimal `json:"shippingFee"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
}
