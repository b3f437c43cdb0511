package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutStep is the position of a checkout in the address, payment, review flow.
type CheckoutStep string

const (
	CheckoutStepAddress   CheckoutStep = "address"
	CheckoutStepPayment   CheckoutStep = "payment"
	CheckoutStepReview    CheckoutStep = "review"
	CheckoutStepCompleted CheckoutStep = "completed"
)

// Checkout is an in-progress purchase of a cart snapshot.
type Checkout struct {
	ID             uuid.UUID        `json:"id"`
	Items          []LineItem       `json:"items"`
	CartItemIDs    []string         `json:"cartItemIds"`
	Address        *Address         `json:"address,omitempty"`
	PaymentMethod  string           `json:"paymentMethod,omitempty"`
	PaymentMethods []*PaymentMethod `json:"paymentMethods"`
	DiscountCode   string           `json:"discountCode,omitempty"`
	Summary        *OrderSummary    `json:"summary,omitempty"`
	Step           CheckoutStep     `json:"step"`
	Order          *Order           `json:"order,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// AddressID returns the selected address ID, or zero when none is selected.
func (c *Checkout) AddressID() int64 {
	if c.Address == nil {
		return 0
	}

	return c.Address.ID
}

// Completed reports whether an order was placed from this checkout.
func (c *Checkout) Completed() bool {
	return c.Step == CheckoutStepCompleted
}

// Clone returns a copy whose slices can be changed without touching c.
// Address, summary and order are replaced rather than mutated, so they are shared.
func (c *Checkout) Clone() *Checkout {
	clone := *c
	clone.Items = append([]LineItem(nil), c.Items...)
	clone.CartItemIDs = append([]string(nil), c.CartItemIDs...)
	clone.PaymentMethods = append([]*PaymentMethod(nil), c.PaymentMethods...)

	return &clone
}
