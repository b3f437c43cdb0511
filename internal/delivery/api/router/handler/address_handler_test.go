package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func newAddressTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockAddressUsecase) {
	t.Helper()

	addressUC := mockUsecase.NewMockAddressUsecase(t)
	h := NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/addresses", h.ListAddresses)
	e.POST("/addresses", h.CreateAddress)
	e.PUT("/addresses/:id", h.UpdateAddress)
	e.DELETE("/addresses/:id", h.DeleteAddress)
	e.PUT("/addresses/:id/default", h.SetDefaultAddress)

	return e, addressUC
}

const testAddressBody = `{"receiverName":"Lan","addressLine1":"12 Nguyễn Huệ","city":"Hồ Chí Minh","state":"Quận 1","postalCode":"700000"}`

func TestAddressHandler_CRUD(t *testing.T) {
	e, addressUC := newAddressTestEcho(t)
	addressUC.EXPECT().List(mock.Anything).Return([]*entity.Address{{ID: 1}}, nil).Once()
	addressUC.EXPECT().Add(mock.Anything, mock.AnythingOfType("*usecase.AddressInput")).Return(nil).Once()
	addressUC.EXPECT().
		Update(mock.Anything, int64(1), mock.MatchedBy(func(in *usecase.AddressInput) bool { return in.City == "Hồ Chí Minh" })).
		Return(&entity.Address{ID: 1}, nil).
		Once()
	addressUC.EXPECT().Delete(mock.Anything, int64(1)).Return(nil).Once()
	addressUC.EXPECT().SetDefault(mock.Anything, int64(2)).Return(nil).Once()

	requireStatus(t, serve(e, http.MethodGet, "/addresses", ""), http.StatusOK)
	requireStatus(t, serve(e, http.MethodPost, "/addresses", testAddressBody), http.StatusCreated)
	requireStatus(t, serve(e, http.MethodPut, "/addresses/1", testAddressBody), http.StatusOK)
	requireStatus(t, serve(e, http.MethodDelete, "/addresses/1", ""), http.StatusOK)
	requireStatus(t, serve(e, http.MethodPut, "/addresses/2/default", ""), http.StatusOK)
}

func TestAddressHandler_Validation(t *testing.T) {
	e, _ := newAddressTestEcho(t)

	requireStatus(t, serve(e, http.MethodPost, "/addresses", `{"city":"Huế"}`), http.StatusBadRequest)
	requireStatus(t, serve(e, http.MethodDelete, "/addresses/0", ""), http.StatusBadRequest)
}

func TestAddressHandler_LoginRequired(t *testing.T) {
	e, addressUC := newAddressTestEcho(t)
	addressUC.EXPECT().List(mock.Anything).Return(nil, domainerrors.ErrLoginRequired).Once()

	requireStatus(t, serve(e, http.MethodGet, "/addresses", ""), http.StatusUnauthorized)
}
