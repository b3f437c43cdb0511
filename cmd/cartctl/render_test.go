package main

import (
	"bytes"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderCart(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		renderCart(&buf, entity.NewGuestCart())

		assert.Equal(t, "Cart (guest) is empty\n", buf.String())
	})

	t.Run("lines and totals", func(t *testing.T) {
		cart := &entity.Cart{
			Kind: entity.CartKindUser,
			Items: []entity.LineItem{
				{
					ID:              "501",
					ProductName:     "Áo thun",
					Quantity:        2,
					UnitPrice:       decimal.NewFromInt(125000),
					DiscountedPrice: decimal.NewNullDecimal(decimal.NewFromInt(100000)),
					TotalPrice:      decimal.NewFromInt(250000),
					VariantInfo:     &entity.VariantInfo{Color: "Đỏ", Size: "M"},
				},
			},
			TotalAmount: decimal.NewFromInt(250000),
			TotalItems:  2,
		}

		var buf bytes.Buffer
		renderCart(&buf, cart)

		out := buf.String()
		assert.Contains(t, out, "Áo thun (Đỏ/M)")
		assert.Contains(t, out, "100.000 ₫")
		assert.Contains(t, out, "Cart (user): 2 item(s), total 250.000 ₫")
	})
}

func TestRenderCheckoutSummary(t *testing.T) {
	checkout := &entity.Checkout{
		Step:          entity.CheckoutStepReview,
		PaymentMethod: entity.PaymentMethodBankTransfer,
		Summary: &entity.OrderSummary{
			Subtotal:    decimal.NewFromInt(250000),
			ShippingFee: decimal.NewFromInt(30000),
			Total:       decimal.NewFromInt(280000),
		},
	}

	var buf bytes.Buffer
	renderCheckout(&buf, checkout)

	out := buf.String()
	assert.Contains(t, out, "step review")
	assert.Contains(t, out, "Payment: bank_transfer")
	assert.Contains(t, out, "280.000 ₫")
	assert.NotContains(t, out, "Discount")
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{"501", "502"}, splitIDs(" 501, ,502 "))
	assert.Nil(t, splitIDs(""))
}

func TestCommandsHaveUsage(t *testing.T) {
	for name, cmd := range commands() {
		assert.NotEmpty(t, cmd.usage, name)
		assert.NotNil(t, cmd.run, name)
		assert.Equal(t, name, cmd.flags.Name())
	}
}

func TestRenderShipping(t *testing.T) {
	fee := &entity.ShippingFee{
		BaseShipping:          decimal.NewFromInt(30000),
		ExpressShipping:       decimal.NewFromInt(50000),
		FreeShippingThreshold: decimal.NewFromInt(500000),
		Source:                entity.ShippingSourceFallback,
	}

	var buf bytes.Buffer
	renderShipping(&buf, fee, decimal.NewFromInt(200000), true)
	assert.Contains(t, buf.String(), "Free from 500.000 ₫ (fallback rates)")
	assert.Contains(t, buf.String(), "This cart pays 50.000 ₫")

	buf.Reset()
	renderShipping(&buf, fee, decimal.NewFromInt(500000), false)
	assert.Contains(t, buf.String(), "This cart pays 0 ₫")
}

func TestRenderInvoice(t *testing.T) {
	invoice := &entity.Invoice{
		OrderID:       9,
		InvoiceNumber: "INV-9",
		Customer:      entity.InvoiceCustomer{Name: "An", Email: "an@example.com"},
		Items:         []entity.LineItem{{ProductName: "Áo", Quantity: 2, TotalPrice: decimal.NewFromInt(200000)}},
		Subtotal:      decimal.NewFromInt(200000),
		ShippingFee:   decimal.NewFromInt(30000),
		Total:         decimal.NewFromInt(230000),
		PaymentMethod: entity.PaymentMethodBankTransfer,
		PaymentStatus: entity.PaymentStatusPending,
	}

	var buf bytes.Buffer
	renderInvoice(&buf, invoice)

	out := buf.String()
	assert.Contains(t, out, "Invoice INV-9 for order 9")
	assert.Contains(t, out, "Bill to: An <an@example.com>")
	assert.Contains(t, out, "230.000 ₫")
	assert.NotContains(t, out, "Discount")
	assert.Contains(t, out, "Payment: bank_transfer, pending")
}
