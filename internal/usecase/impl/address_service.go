package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addresses service.AddressGateway
	sessions  repository.SessionRepository
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	addresses service.AddressGateway,
	sessions repository.SessionRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addresses: addresses,
		sessions:  sessions,
		logger:    logger,
	}
}

func (srv *addressService) List(ctx context.Context) ([]*entity.Address, error) {
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return nil, err
	}

	return srv.addresses.ListAddresses(ctx)
}

func (srv *addressService) Default(ctx context.Context) (*entity.Address, error) {
	addresses, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}

	return entity.DefaultAddress(addresses), nil
}

func (srv *addressService) Add(ctx context.Context, input *usecase.AddressInput) error {
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return err
	}

	return srv.addresses.AddAddress(ctx, input.ToEntity(0))
}

func (srv *addressService) Update(ctx context.Context, addressID int64, input *usecase.AddressInput) (*entity.Address, error) {
	if addressID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address id must be positive")
	}
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return nil, err
	}

	return srv.addresses.UpdateAddress(ctx, input.ToEntity(addressID))
}

func (srv *addressService) Delete(ctx context.Context, addressID int64) error {
	if addressID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("address id must be positive")
	}
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return err
	}

	return srv.addresses.DeleteAddress(ctx, addressID)
}

func (srv *addressService) SetDefault(ctx context.Context, addressID int64) error {
	if addressID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("address id must be positive")
	}
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return err
	}

	return srv.addresses.SetDefaultAddress(ctx, addressID)
}
