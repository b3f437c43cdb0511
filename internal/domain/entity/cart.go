// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartKind tells which store owns a cart.
type CartKind string

const (
	CartKindGuest CartKind = "guest"
	CartKindUser  CartKind = "user"
)

// VariantInfo describes the selected variant of a product line.
type VariantInfo struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// LineItem is one product line of a cart.
// Guest lines carry a locally generated ID; authenticated lines carry the server cart item ID.
type LineItem struct {
	ID              string              `json:"id"`                        // "guest_<uuid>" or the server cartItemId.
	ProductID       int64               `json:"productId"`                 // Catalog product identifier.
	ProductName     string              `json:"productName"`               // Display name at the time the line was priced.
	ProductImage    string              `json:"productImage"`              // Image URL, placeholder when the product has none.
	VariantID       *int64              `json:"variantId,omitempty"`       // Selected variant, nil for the base product.
	VariantInfo     *VariantInfo        `json:"variantInfo,omitempty"`     // Variant color/size when known.
	Quantity        int                 `json:"quantity"`                  // Always >= 1 while the line exists.
	UnitPrice       decimal.Decimal     `json:"unitPrice"`                 // Regular unit price.
	DiscountedPrice decimal.NullDecimal `json:"discountedPrice,omitempty"` // Flash-sale price, when the product has one.
	TotalPrice      decimal.Decimal     `json:"totalPrice"`                // Server total for authenticated lines, else Quantity x UnitPrice.
	AddedAt         time.Time           `json:"addedAt"`
}

// SameProduct reports whether the line holds the given product and variant.
func (l *LineItem) SameProduct(productID int64, variantID *int64) bool {
	if l.ProductID != productID {
		return false
	}
	if l.VariantID == nil || variantID == nil {
		return l.VariantID == nil && variantID == nil
	}

	return *l.VariantID == *variantID
}

// SetQuantity sets the quantity and reprices the line.
func (l *LineItem) SetQuantity(quantity int) {
	l.Quantity = quantity
	l.TotalPrice = l.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// EffectivePrice is the price a checkout charges for one unit: the discounted price when present,
// otherwise the unit price.
func (l *LineItem) EffectivePrice() decimal.Decimal {
	if l.DiscountedPrice.Valid && l.DiscountedPrice.Decimal.IsPositive() {
		return l.DiscountedPrice.Decimal
	}

	return l.UnitPrice
}

// Cart is the aggregate of line items plus totals derived from them.
type Cart struct {
	Kind        CartKind        `json:"kind"`
	CartID      int64           `json:"cartId,omitempty"` // Server cart ID, zero for guest carts.
	Items       []LineItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"` // Sum of TotalPrice.
	TotalItems  int             `json:"totalItems"`  // Sum of Quantity.
	UpdatedAt   time.Time       `json:"updatedAt,omitzero"`
}

// NewGuestCart returns an empty guest cart.
func NewGuestCart() *Cart {
	return &Cart{
		Kind:        CartKindGuest,
		Items:       []LineItem{},
		TotalAmount: decimal.Zero,
	}
}

// Recalculate recomputes TotalAmount and TotalItems from the items.
// Totals are always rebuilt from scratch so they cannot drift from the lines.
func (c *Cart) Recalculate() {
	total := decimal.Zero
	count := 0
	for i := range c.Items {
		total = total.Add(c.Items[i].TotalPrice)
		count += c.Items[i].Quantity
	}
	c.TotalAmount = total
	c.TotalItems = count
}

// FindItem returns the index of the line with the given ID, or -1.
func (c *Cart) FindItem(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}

	return -1
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TransferItem is the portable form of a guest line replayed into the authenticated cart.
type TransferItem struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	VariantID *int64 `json:"variantId,omitempty"`
}
