package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddressGateway is the backend address book of the logged-in shopper.
type AddressGateway interface {
	ListAddresses(ctx context.Context) ([]*entity.Address, error)
	AddAddress(ctx context.Context, address *entity.Address) error
	UpdateAddress(ctx context.Context, address *entity.Address) (*entity.Address, error)
	DeleteAddress(ctx context.Context, addressID int64) error
	SetDefaultAddress(ctx context.Context, addressID int64) error
}
