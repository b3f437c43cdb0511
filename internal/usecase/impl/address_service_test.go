package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressService_RequiresLogin(t *testing.T) {
	store := newTestStore(t)
	srv := NewAddressService(mockService.NewMockAddressGateway(t), store.sessions, newDiscardLogger())
	ctx := context.Background()

	_, err := srv.List(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)

	err = srv.Add(ctx, &usecase.AddressInput{AddressLine1: "1 Lê Lợi"})
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)

	assert.ErrorIs(t, srv.SetDefault(ctx, 4), domainerrors.ErrLoginRequired)
}

func TestAddressService_RejectsInvalidID(t *testing.T) {
	store := newTestStore(t)
	store.login(t)
	srv := NewAddressService(mockService.NewMockAddressGateway(t), store.sessions, newDiscardLogger())
	ctx := context.Background()

	_, err := srv.Update(ctx, 0, &usecase.AddressInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, srv.Delete(ctx, -1), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, srv.SetDefault(ctx, 0), domainerrors.ErrValidationFailed)
}

func TestAddressService_Default(t *testing.T) {
	store := newTestStore(t)
	store.login(t)
	addresses := mockService.NewMockAddressGateway(t)
	srv := NewAddressService(addresses, store.sessions, newDiscardLogger())
	ctx := context.Background()

	addresses.EXPECT().ListAddresses(mock.Anything).Return([]*entity.Address{{ID: 1}, {ID: 2, IsDefault: true}}, nil).Once()
	addresses.EXPECT().ListAddresses(mock.Anything).Return([]*entity.Address{{ID: 3}, {ID: 4}}, nil).Once()
	addresses.EXPECT().ListAddresses(mock.Anything).Return(nil, nil).Once()

	def, err := srv.Default(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), def.ID)

	def, err = srv.Default(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), def.ID)

	def, err = srv.Default(ctx)
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestAddressService_Mutations(t *testing.T) {
	store := newTestStore(t)
	store.login(t)
	addresses := mockService.NewMockAddressGateway(t)
	srv := NewAddressService(addresses, store.sessions, newDiscardLogger())
	ctx := context.Background()
	input := &usecase.AddressInput{
		ReceiverName: "Lan",
		AddressLine1: "12 Nguyễn Huệ",
		City:         "Hồ Chí Minh",
		State:        "Quận 1",
		PostalCode:   "700000",
	}

	addresses.EXPECT().
		AddAddress(mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
			return a.ID == 0 && a.AddressLine1 == "12 Nguyễn Huệ"
		})).
		Return(nil).
		Once()
	addresses.EXPECT().
		UpdateAddress(mock.Anything, mock.MatchedBy(func(a *entity.Address) bool { return a.ID == 5 })).
		Return(&entity.Address{ID: 5, City: "Hồ Chí Minh"}, nil).
		Once()
	addresses.EXPECT().DeleteAddress(mock.Anything, int64(5)).Return(nil).Once()
	addresses.EXPECT().SetDefaultAddress(mock.Anything, int64(6)).Return(nil).Once()

	require.NoError(t, srv.Add(ctx, input))
	updated, err := srv.Update(ctx, 5, input)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.ID)
	require.NoError(t, srv.Delete(ctx, 5))
	require.NoError(t, srv.SetDefault(ctx, 6))
}
