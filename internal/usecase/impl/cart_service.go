package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartServiceParams holds dependencies for the cart router, injected by Fx
type CartServiceParams struct {
	fx.In

	Sessions repository.SessionRepository
	Guest    usecase.GuestCartUsecase
	User     usecase.UserCartUsecase
	Catalog  service.CatalogGateway
	Events   service.EventBus
	Logger   *slog.Logger
}

// cartService implements the CartUsecase interface.
// The login state is read from the session store on every call.
type cartService struct {
	sessions repository.SessionRepository
	guest    usecase.GuestCartUsecase
	user     usecase.UserCartUsecase
	catalog  service.CatalogGateway
	events   service.EventBus
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		sessions: params.Sessions,
		guest:    params.Guest,
		user:     params.User,
		catalog:  params.Catalog,
		events:   params.Events,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// loggedIn reports whether a user record is stored. An unreadable store counts as logged out.
func (srv *cartService) loggedIn(ctx context.Context) bool {
	user, err := srv.sessions.LoadUser(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to read session, routing to guest cart", slog.Any("error", err))

		return false
	}

	return user != nil
}

// GetCart returns the active cart.
func (srv *cartService) GetCart(ctx context.Context) (*entity.Cart, error) {
	if srv.loggedIn(ctx) {
		return srv.user.Get(ctx)
	}

	return srv.guest.Get(ctx)
}

// AddToCart adds a product line to the active cart.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*entity.Cart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	loggedIn := srv.loggedIn(ctx)

	var cart *entity.Cart
	var err error
	if loggedIn {
		cart, err = srv.user.Add(ctx, &usecase.AddCartItemInput{
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			VariantID: input.VariantID,
		})
	} else {
		product := input.Product
		if product == nil {
			product, err = srv.catalog.GetProduct(ctx, input.ProductID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to look up product")
			}
		}
		cart, err = srv.guest.Add(ctx, product, input.Quantity, input.VariantID)
	}
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, loggedIn, cart)

	return cart, nil
}

// UpdateItem sets the quantity of a line in the active cart.
func (srv *cartService) UpdateItem(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	return srv.mutate(ctx, func(loggedIn bool) (*entity.Cart, error) {
		if loggedIn {
			return srv.user.Update(ctx, itemID, quantity)
		}

		return srv.guest.Update(ctx, itemID, quantity)
	})
}

// RemoveItem drops a line from the active cart.
func (srv *cartService) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	return srv.mutate(ctx, func(loggedIn bool) (*entity.Cart, error) {
		if loggedIn {
			return srv.user.Remove(ctx, itemID)
		}

		return srv.guest.Remove(ctx, itemID)
	})
}

// ClearCart empties the active cart.
func (srv *cartService) ClearCart(ctx context.Context) (*entity.Cart, error) {
	return srv.mutate(ctx, func(loggedIn bool) (*entity.Cart, error) {
		if loggedIn {
			return srv.user.Clear(ctx)
		}

		return srv.guest.Clear(ctx)
	})
}

// ItemCount returns the total quantity of the active cart, or 0 on any error.
func (srv *cartService) ItemCount(ctx context.Context) int {
	cart, err := srv.GetCart(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to count cart items", slog.Any("error", err))

		return 0
	}

	return cart.TotalItems
}

// Total returns the amount of the active cart, or 0 on any error.
func (srv *cartService) Total(ctx context.Context) decimal.Decimal {
	cart, err := srv.GetCart(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to total cart", slog.Any("error", err))

		return decimal.Zero
	}

	return cart.TotalAmount
}

func (srv *cartService) mutate(ctx context.Context, fn func(loggedIn bool) (*entity.Cart, error)) (*entity.Cart, error) {
	loggedIn := srv.loggedIn(ctx)

	cart, err := fn(loggedIn)
	if err != nil {
		return nil, err
	}
	srv.publish(ctx, loggedIn, cart)

	return cart, nil
}

func (srv *cartService) publish(ctx context.Context, loggedIn bool, cart *entity.Cart) {
	srv.events.Publish(ctx, newCartChangedEvent(ctx, loggedIn, cart.TotalItems))
}
