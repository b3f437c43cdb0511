package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddressInput defines an address book entry.
type AddressInput struct {
	ReceiverName  string `json:"receiverName" validate:"omitempty,max=100"`
	ReceiverPhone string `json:"receiverPhone" validate:"omitempty,max=20"`
	AddressLine1  string `json:"addressLine1" validate:"required,max=255"`
	AddressLine2  string `json:"addressLine2" validate:"omitempty,max=255"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
	PostalCode    string `json:"postalCode" validate:"required,max=20"`
	Country       string `json:"country" validate:"omitempty,max=100"`
	IsDefault     bool   `json:"isDefault"`
}

// ToEntity converts the input into an address with the given ID.
func (in *AddressInput) ToEntity(id int64) *entity.Address {
	return &entity.Address{
		ID:            id,
		ReceiverName:  in.ReceiverName,
		ReceiverPhone: in.ReceiverPhone,
		AddressLine1:  in.AddressLine1,
		AddressLine2:  in.AddressLine2,
		City:          in.City,
		State:         in.State,
		PostalCode:    in.PostalCode,
		Country:       in.Country,
		IsDefault:     in.IsDefault,
	}
}

// AddressUsecase manages the logged-in shopper's address book.
type AddressUsecase interface {
	List(ctx context.Context) ([]*entity.Address, error)
	// Default returns the address checkout pre-selects, or nil when the book is empty.
	Default(ctx context.Context) (*entity.Address, error)
	Add(ctx context.Context, input *AddressInput) error
	Update(ctx context.Context, addressID int64, input *AddressInput) (*entity.Address, error)
	Delete(ctx context.Context, addressID int64) error
	SetDefault(ctx context.Context, addressID int64) error
}
