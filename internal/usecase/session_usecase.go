package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginInput defines the data required for a shopper to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to create a backend account.
type RegisterInput struct {
	FullName        string `json:"fullName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Phone           string `json:"phone" validate:"omitempty,max=20"`
}

// SessionUsecase defines the interface for shopper session operations.
// The persisted user record is the only login state; there is no in-memory copy.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)
	Register(ctx context.Context, input *RegisterInput) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entity.User, error)
	IsLoggedIn(ctx context.Context) bool
}
