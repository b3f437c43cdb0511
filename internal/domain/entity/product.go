package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant is a purchasable variation of a product.
type ProductVariant struct {
	VariantID     int64  `json:"variantId"`
	Color         string `json:"color"`
	Size          string `json:"size"`
	StockQuantity int    `json:"stockQuantity"`
}

// Product is the catalog view of a product, normalized from the backend response.
type Product struct {
	ProductID       int64               `json:"productId"`
	Name            string              `json:"name"`
	CategoryName    string              `json:"categoryName,omitempty"`
	ImageURL        string              `json:"imageUrl"`
	Price           decimal.Decimal     `json:"price"`
	DiscountedPrice decimal.NullDecimal `json:"discountedPrice,omitempty"`
	Description     string              `json:"description,omitempty"`
	StockQuantity   int                 `json:"stockQuantity,omitempty"`
	Variants        []ProductVariant    `json:"variants,omitempty"`
}

// Variant returns the variant with the given ID.
func (p *Product) Variant(variantID int64) (*ProductVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].VariantID == variantID {
			return &p.Variants[i], true
		}
	}

	return nil, false
}

// Category is a top-level catalog grouping such as "Nam" or "Nữ".
type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// DiscountedProduct is a product on a time-boxed sale.
type DiscountedProduct struct {
	ProductID          int64           `json:"productId"`
	ProductName        string          `json:"productName"`
	Description        string          `json:"description,omitempty"`
	ImageURL           string          `json:"imageUrl"`
	OriginalPrice      decimal.Decimal `json:"originalPrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountedPrice    decimal.Decimal `json:"discountedPrice"`
	DiscountStartDate  time.Time       `json:"discountStartDate,omitzero"`
	DiscountEndDate    time.Time       `json:"discountEndDate,omitzero"`
	IsActive           bool            `json:"isActive"`
}

// OnSaleAt reports whether the discount applies at t. Open-ended windows are allowed.
func (d *DiscountedProduct) OnSaleAt(t time.Time) bool {
	if !d.IsActive {
		return false
	}
	if !d.DiscountStartDate.IsZero() && t.Before(d.DiscountStartDate) {
		return false
	}

	return d.DiscountEndDate.IsZero() || !t.After(d.DiscountEndDate)
}
