package gateway

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

type authGateway struct {
	client *Client
}

// NewAuthGateway creates the login/register client
func NewAuthGateway(client *Client) service.AuthGateway {
	return &authGateway{client: client}
}

// Login posts the credentials; the session cookie lands in the client's jar.
func (g *authGateway) Login(ctx context.Context, email, password string) (*entity.User, error) {
	var resp loginResponseDTO
	if err := g.client.Do(ctx, http.MethodPost, "user/login", nil, &loginDTO{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.ErrInvalidCredentials.WithDetails(resp.Message)
	}

	user := &entity.User{
		UserID:     resp.User.UserID,
		FullName:   resp.User.FullName,
		Email:      resp.User.Email,
		Phone:      resp.User.Phone,
		LoggedInAt: time.Now().UTC(),
	}
	if user.Email == "" {
		user.Email = email
	}

	return user, nil
}

func (g *authGateway) Register(ctx context.Context, req *service.RegisterRequest) error {
	return g.client.Do(ctx, http.MethodPost, "user/register", nil, &registerDTO{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
	}, nil)
}
