package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// userCartService implements the UserCartUsecase interface.
// Gateway errors are returned unmodified and never retried.
type userCartService struct {
	carts  service.CartGateway
	logger *slog.Logger
}

// NewUserCartService is the constructor for userCartService.
func NewUserCartService(carts service.CartGateway, logger *slog.Logger) usecase.UserCartUsecase {
	return &userCartService{
		carts:  carts,
		logger: logger,
	}
}

func (srv *userCartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Get fetches the authenticated cart.
func (srv *userCartService) Get(ctx context.Context) (*entity.Cart, error) {
	return srv.carts.GetCart(ctx)
}

// Add adds a line to the authenticated cart.
func (srv *userCartService) Add(ctx context.Context, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if input.ProductID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id must be positive")
	}
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	cart, err := srv.carts.AddItem(ctx, entity.TransferItem{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		VariantID: input.VariantID,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add item to user cart",
			slog.Int64("product_id", input.ProductID),
			slog.Any("error", err),
		)

		return nil, err
	}

	return cart, nil
}

// Update sets the quantity of a server cart line. Removing is done with Remove.
func (srv *userCartService) Update(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}
	cartItemID, err := parseCartItemID(itemID)
	if err != nil {
		return nil, err
	}

	return srv.carts.UpdateItem(ctx, cartItemID, quantity)
}

// Remove deletes a server cart line.
func (srv *userCartService) Remove(ctx context.Context, itemID string) (*entity.Cart, error) {
	cartItemID, err := parseCartItemID(itemID)
	if err != nil {
		return nil, err
	}

	return srv.carts.RemoveItem(ctx, cartItemID)
}

// Clear empties the server cart.
func (srv *userCartService) Clear(ctx context.Context) (*entity.Cart, error) {
	return srv.carts.ClearCart(ctx)
}

// parseCartItemID converts a line ID to the numeric server cart item ID.
func parseCartItemID(itemID string) (int64, error) {
	id, err := strconv.ParseInt(itemID, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidCartItemID.WithDetails(itemID)
	}

	return id, nil
}
