package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_ListMethodsFallsBackToDefaults(t *testing.T) {
	payments := mockService.NewMockPaymentGateway(t)
	srv := NewPaymentService(payments, mockService.NewMockQRCodeService(t), newTestConfig(), newDiscardLogger())
	ctx := context.Background()

	payments.EXPECT().ListPaymentMethods(mock.Anything).Return(nil, domainerrors.ErrInternalError).Once()
	payments.EXPECT().ListPaymentMethods(mock.Anything).Return([]*entity.PaymentMethod{}, nil).Once()

	for range 2 {
		methods := srv.ListMethods(ctx)
		require.Len(t, methods, 2)
		assert.Equal(t, entity.PaymentMethodBankTransfer, methods[0].ID)
		assert.Equal(t, "Chuyển khoản ngân hàng", methods[0].Name)
		assert.Equal(t, entity.PaymentMethodCashOnDelivery, methods[1].ID)
	}
}

func TestPaymentService_ListMethodsFromBackend(t *testing.T) {
	payments := mockService.NewMockPaymentGateway(t)
	srv := NewPaymentService(payments, mockService.NewMockQRCodeService(t), newTestConfig(), newDiscardLogger())
	upstream := []*entity.PaymentMethod{{ID: "momo", Name: "MoMo", Enabled: true}}

	payments.EXPECT().ListPaymentMethods(mock.Anything).Return(upstream, nil).Once()

	assert.Equal(t, upstream, srv.ListMethods(context.Background()))
}

func TestPaymentService_BankTransferInfo(t *testing.T) {
	payments := mockService.NewMockPaymentGateway(t)
	srv := NewPaymentService(payments, mockService.NewMockQRCodeService(t), newTestConfig(), newDiscardLogger())
	ctx := context.Background()

	payments.EXPECT().
		GetBankTransferInfo(mock.Anything).
		Return(&entity.BankTransferInfo{
			BankName:        "Techcombank",
			AccountNumber:   "1903",
			AccountName:     "SHOP",
			TransferContent: "DH [ORDER_NUMBER]",
		}, nil).
		Once()
	payments.EXPECT().GetBankTransferInfo(mock.Anything).Return(nil, errors.New("boom")).Once()

	info := srv.BankTransferInfo(ctx, "ORD-1")
	assert.Equal(t, "Techcombank", info.BankName)
	assert.Equal(t, "DH ORD-1", info.TransferContent)

	info = srv.BankTransferInfo(ctx, "ORD-2")
	assert.Equal(t, "Vietcombank", info.BankName)
	assert.Equal(t, "Thanh toan don hang ORD-2", info.TransferContent)
}

func TestPaymentService_BankTransferQR(t *testing.T) {
	payments := mockService.NewMockPaymentGateway(t)
	qrcodes := mockService.NewMockQRCodeService(t)
	srv := NewPaymentService(payments, qrcodes, newTestConfig(), newDiscardLogger())
	ctx := context.Background()

	_, err := srv.BankTransferQR(ctx, "  ")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	payments.EXPECT().GetBankTransferInfo(mock.Anything).Return(nil, errors.New("offline")).Twice()
	qrcodes.EXPECT().
		GenerateBankTransferQR(mock.MatchedBy(func(info *entity.BankTransferInfo) bool {
			return info.AccountNumber == "0123456789"
		}), "ORD-9").
		Return([]byte("png"), nil).
		Once()
	qrcodes.EXPECT().GenerateBankTransferQR(mock.Anything, "ORD-10").Return(nil, errors.New("too long")).Once()

	png, err := srv.BankTransferQR(ctx, "ORD-9")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = srv.BankTransferQR(ctx, "ORD-10")
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestPaymentService_ShippingFeeOverlaysBackendRates(t *testing.T) {
	payments := mockService.NewMockPaymentGateway(t)
	srv := NewPaymentService(payments, mockService.NewMockQRCodeService(t), newTestConfig(), newDiscardLogger())
	total := decimal.NewFromInt(120000)

	payments.EXPECT().
		CalculateShippingFee(mock.Anything, int64(5), total).
		Return(&service.ShippingQuote{BaseShipping: decimal.NewNullDecimal(decimal.NewFromInt(25000))}, nil).
		Once()

	fee, err := srv.ShippingFee(context.Background(), &usecase.ShippingFeeInput{AddressID: 5, CartTotal: total})
	require.NoError(t, err)
	assert.Equal(t, entity.ShippingSourceGateway, fee.Source)
	assert.True(t, fee.BaseShipping.Equal(decimal.NewFromInt(25000)))
	assert.True(t, fee.ExpressShipping.Equal(decimal.NewFromInt(50000)), "missing rates keep the fallback")
	assert.True(t, fee.FreeShippingThreshold.Equal(decimal.NewFromInt(500000)))
	assert.True(t, fee.Fee(total, false).Equal(decimal.NewFromInt(25000)))
}

func TestPaymentService_ShippingFeeFallsBack(t *testing.T) {
	payments := mockService.NewMockPaymentGateway(t)
	srv := NewPaymentService(payments, mockService.NewMockQRCodeService(t), newTestConfig(), newDiscardLogger())
	ctx := context.Background()

	_, err := srv.ShippingFee(ctx, &usecase.ShippingFeeInput{CartTotal: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	payments.EXPECT().CalculateShippingFee(mock.Anything, int64(0), mock.Anything).Return(nil, errors.New("boom")).Once()

	fee, err := srv.ShippingFee(ctx, &usecase.ShippingFeeInput{CartTotal: decimal.NewFromInt(600000)})
	require.NoError(t, err)
	assert.Equal(t, entity.ShippingSourceFallback, fee.Source)
	assert.True(t, fee.BaseShipping.Equal(decimal.NewFromInt(30000)))
	assert.True(t, fee.ExpressShipping.Equal(decimal.NewFromInt(50000)))
	assert.True(t, fee.Fee(decimal.NewFromInt(600000), true).IsZero(), "free shipping above the threshold")
	assert.True(t, fee.Fee(decimal.NewFromInt(499999), true).Equal(decimal.NewFromInt(50000)))
}
