package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockPaymentUsecase) {
	t.Helper()

	paymentUC := mockUsecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/payment/methods", h.ListMethods)
	e.GET("/payment/bank-info", h.BankTransferInfo)
	e.GET("/payment/bank-info/qr", h.BankTransferQR)
	e.POST("/payment/shipping-fee", h.ShippingFee)

	return e, paymentUC
}

func TestPaymentHandler_ListMethodsAndBankInfo(t *testing.T) {
	e, paymentUC := newPaymentTestEcho(t)
	paymentUC.EXPECT().ListMethods(mock.Anything).Return([]*entity.PaymentMethod{{ID: "bank_transfer", Enabled: true}}).Once()
	paymentUC.EXPECT().
		BankTransferInfo(mock.Anything, "ORD-1").
		Return(&entity.BankTransferInfo{BankName: "Vietcombank", TransferContent: "DH ORD-1"}).
		Once()

	requireStatus(t, serve(e, http.MethodGet, "/payment/methods", ""), http.StatusOK)

	rec := serve(e, http.MethodGet, "/payment/bank-info?order=ORD-1", "")
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "DH ORD-1")
}

func TestPaymentHandler_BankTransferQR(t *testing.T) {
	e, paymentUC := newPaymentTestEcho(t)
	paymentUC.EXPECT().BankTransferQR(mock.Anything, "ORD-1").Return([]byte("\x89PNG"), nil).Once()
	paymentUC.EXPECT().BankTransferQR(mock.Anything, "").Return(nil, domainerrors.ErrValidationFailed).Once()

	rec := serve(e, http.MethodGet, "/payment/bank-info/qr?order=ORD-1", "")
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())

	requireStatus(t, serve(e, http.MethodGet, "/payment/bank-info/qr", ""), http.StatusBadRequest)
}

func TestPaymentHandler_ShippingFee(t *testing.T) {
	e, paymentUC := newPaymentTestEcho(t)
	paymentUC.EXPECT().
		ShippingFee(mock.Anything, mock.MatchedBy(func(in *usecase.ShippingFeeInput) bool {
			return in.AddressID == 5 && in.CartTotal.Equal(decimal.NewFromInt(120000))
		})).
		Return(&entity.ShippingFee{
			BaseShipping:          decimal.NewFromInt(30000),
			ExpressShipping:       decimal.NewFromInt(50000),
			FreeShippingThreshold: decimal.NewFromInt(500000),
			Source:                entity.ShippingSourceFallback,
		}, nil).
		Once()

	rec := serve(e, http.MethodPost, "/payment/shipping-fee", `{"addressId":5,"cartTotal":120000}`)
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"source":"fallback"`)

	requireStatus(t, serve(e, http.MethodPost, "/payment/shipping-fee", `{"addressId":-1,"cartTotal":1}`), http.StatusBadRequest)
}
