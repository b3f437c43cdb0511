// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for sessionService, injected by Fx
type SessionServiceParams struct {
	fx.In

	Auth        service.AuthGateway
	Sessions    repository.SessionRepository
	Credentials service.CredentialStore
	Events      service.EventBus
	Logger      *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth        service.AuthGateway
	sessions    repository.SessionRepository
	credentials service.CredentialStore
	events      service.EventBus
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		auth:        params.Auth,
		sessions:    params.Sessions,
		credentials: params.Credentials,
		events:      params.Events,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Login signs in against the backend, persists the user record and announces the login.
// Subscribers of userChanged (the guest cart merge) run before Login returns.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	srv.log(ctx).Info("Logging in", slog.String("email", input.Email))

	user, err := srv.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		var gwErr *domainerrors.GatewayError
		if errors.As(err, &gwErr) && (gwErr.StatusCode == http.StatusUnauthorized || gwErr.StatusCode == http.StatusBadRequest) {
			return nil, domainerrors.ErrInvalidCredentials.WithDetails(gwErr.Message())
		}
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.sessions.SaveUser(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to persist user record", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	event := newEvent(ctx, service.EventUserChanged)
	event.LoggedIn = true
	srv.events.Publish(ctx, event)

	srv.log(ctx).Info("Logged in", slog.String("email", user.Email))

	return user, nil
}

// Register creates a backend account. It does not log in.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	err := srv.auth.Register(ctx, &service.RegisterRequest{
		FullName:        input.FullName,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
		Phone:           input.Phone,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	return nil
}

// Logout removes the user record and the session cookies. It makes no backend call.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessions.DeleteUser(ctx); err != nil {
		srv.log(ctx).Error("Failed to remove user record", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if err := srv.credentials.Reset(ctx); err != nil {
		srv.log(ctx).Warn("Failed to reset session cookies", slog.Any("error", err))
	}

	srv.events.Publish(ctx, newEvent(ctx, service.EventUserChanged))
	srv.log(ctx).Info("Logged out")

	return nil
}

// CurrentUser returns the stored user record, or nil when logged out.
func (srv *sessionService) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, err := srv.sessions.LoadUser(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return user, nil
}

// IsLoggedIn reports whether a readable user record is stored.
func (srv *sessionService) IsLoggedIn(ctx context.Context) bool {
	user, err := srv.CurrentUser(ctx)

	return err == nil && user != nil
}
