package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderSummaryService_FallbackWithoutAddress(t *testing.T) {
	orders := mockService.NewMockOrderGateway(t)
	srv := NewOrderSummaryService(orders, newTestConfig(), newDiscardLogger())
	items := []entity.LineItem{userLine("501", 1, 125000, 2)}

	summary := srv.Calculate(context.Background(), items, 0, "")

	assert.Equal(t, entity.SummarySourceFallback, summary.Source)
	assert.True(t, decimal.NewFromInt(250000).Equal(summary.Subtotal))
	assert.True(t, decimal.NewFromInt(30000).Equal(summary.ShippingFee))
	assert.True(t, summary.Discount.IsZero())
	assert.True(t, summary.Tax.IsZero())
	assert.True(t, decimal.NewFromInt(280000).Equal(summary.Total))
	assert.NotEmpty(t, summary.Fingerprint)
	orders.AssertNotCalled(t, "CalculateSummary", mock.Anything, mock.Anything)
}

func TestOrderSummaryService_FallbackOnGatewayFailure(t *testing.T) {
	orders := mockService.NewMockOrderGateway(t)
	srv := NewOrderSummaryService(orders, newTestConfig(), newDiscardLogger())
	items := []entity.LineItem{userLine("501", 1, 125000, 2)}

	orders.EXPECT().CalculateSummary(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInternalError).Once()

	summary := srv.Calculate(context.Background(), items, 9, "SALE10")

	assert.Equal(t, entity.SummarySourceFallback, summary.Source)
	assert.Equal(t, int64(9), summary.AddressID)
	assert.True(t, decimal.NewFromInt(280000).Equal(summary.Total))
}

func TestOrderSummaryService_FallbackUsesDiscountedPrice(t *testing.T) {
	orders := mockService.NewMockOrderGateway(t)
	srv := NewOrderSummaryService(orders, newTestConfig(), newDiscardLogger())
	item := userLine("501", 1, 125000, 2)
	item.DiscountedPrice = decimal.NewNullDecimal(decimal.NewFromInt(100000))

	summary := srv.Calculate(context.Background(), []entity.LineItem{item}, 0, "")

	assert.True(t, decimal.NewFromInt(200000).Equal(summary.Subtotal))
	assert.True(t, decimal.NewFromInt(230000).Equal(summary.Total))
}

func TestOrderSummaryService_GatewaySummaryIsUsedVerbatim(t *testing.T) {
	orders := mockService.NewMockOrderGateway(t)
	srv := NewOrderSummaryService(orders, newTestConfig(), newDiscardLogger())
	item := userLine("501", 1, 125000, 2)
	item.VariantID = int64Ptr(10)
	item.DiscountedPrice = decimal.NewNullDecimal(decimal.NewFromInt(100000))

	upstream := &entity.OrderSummary{
		Subtotal:    decimal.NewFromInt(200000),
		ShippingFee: decimal.NewFromInt(15000),
		Discount:    decimal.NewFromInt(20000),
		Tax:         decimal.NewFromInt(1000),
		Total:       decimal.NewFromInt(196000),
		Source:      entity.SummarySourceGateway,
		AddressID:   9,
	}
	orders.EXPECT().
		CalculateSummary(mock.Anything, &service.SummaryRequest{
			Items: []service.SummaryItem{
				{ProductID: 1, VariantID: int64Ptr(10), Quantity: 2, Price: decimal.NewFromInt(100000)},
			},
			AddressID:    9,
			DiscountCode: "SALE10",
		}).
		Return(upstream, nil).
		Once()

	summary := srv.Calculate(context.Background(), []entity.LineItem{item}, 9, "SALE10")
	require.Same(t, upstream, summary)

	assert.Equal(t, entity.SummarySourceGateway, summary.Source)
	assert.True(t, decimal.NewFromInt(196000).Equal(summary.Total))
	assert.Equal(t, summaryFingerprint([]entity.LineItem{item}, 9, "SALE10"), summary.Fingerprint)
}

func TestSummaryFingerprint_ChangesWithInputs(t *testing.T) {
	items := []entity.LineItem{userLine("501", 1, 125000, 2)}
	base := summaryFingerprint(items, 9, "")

	assert.Equal(t, base, summaryFingerprint([]entity.LineItem{userLine("501", 1, 125000, 2)}, 9, ""))
	assert.NotEqual(t, base, summaryFingerprint(items, 10, ""))
	assert.NotEqual(t, base, summaryFingerprint(items, 9, "SALE10"))
	assert.NotEqual(t, base, summaryFingerprint([]entity.LineItem{userLine("501", 1, 125000, 3)}, 9, ""))
}
