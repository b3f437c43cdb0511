package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// guestCartService implements the GuestCartUsecase interface.
// mu serializes every read-modify-write of the stored cart.
type guestCartService struct {
	mu               sync.Mutex
	carts            repository.GuestCartRepository
	placeholderImage string
	logger           *slog.Logger
}

// NewGuestCartService is the constructor for guestCartService.
func NewGuestCartService(
	carts repository.GuestCartRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GuestCartUsecase {
	return &guestCartService{
		carts:            carts,
		placeholderImage: cfg.Checkout.PlaceholderImage,
		logger:           logger,
	}
}

func (srv *guestCartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Get returns the stored guest cart.
func (srv *guestCartService) Get(ctx context.Context) (*entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.load(ctx)
}

// Add merges the product into an existing line with the same product and variant,
// or appends a new line.
func (srv *guestCartService) Add(
	ctx context.Context,
	product *entity.Product,
	quantity int,
	variantID *int64,
) (*entity.Cart, error) {
	if product == nil || product.ProductID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is required")
	}
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.SameProduct(product.ProductID, variantID) {
			item.SetQuantity(item.Quantity + quantity)
			merged = true

			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, srv.newLine(product, quantity, variantID))
	}
	cart.Recalculate()

	if err := srv.save(ctx, cart); err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Guest cart item added",
		slog.Int64("product_id", product.ProductID),
		slog.Int("quantity", quantity),
		slog.Bool("merged", merged),
	)

	return cart, nil
}

func (srv *guestCartService) newLine(product *entity.Product, quantity int, variantID *int64) entity.LineItem {
	image := product.ImageURL
	if image == "" {
		image = srv.placeholderImage
	}

	item := entity.LineItem{
		ID:              constants.GuestItemIDPrefix + uuid.NewString(),
		ProductID:       product.ProductID,
		ProductName:     product.Name,
		ProductImage:    image,
		UnitPrice:       product.Price,
		DiscountedPrice: product.DiscountedPrice,
		AddedAt:         time.Now().UTC(),
	}
	if variantID != nil {
		id := *variantID
		item.VariantID = &id
		if variant, ok := product.Variant(id); ok {
			item.VariantInfo = &entity.VariantInfo{Color: variant.Color, Size: variant.Size}
		}
	}
	item.SetQuantity(quantity)

	return item
}

// Update sets the quantity of a line; a quantity of zero or less removes it.
// An unknown item ID leaves the cart unchanged.
func (srv *guestCartService) Update(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItem(itemID)
	if idx < 0 {
		return cart, nil
	}
	if quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].SetQuantity(quantity)
	}
	cart.Recalculate()

	if err := srv.save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// Remove drops the line with the given ID.
func (srv *guestCartService) Remove(ctx context.Context, itemID string) (*entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	cart, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItem(itemID)
	if idx < 0 {
		return cart, nil
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.Recalculate()

	if err := srv.save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// Clear deletes the stored cart.
func (srv *guestCartService) Clear(ctx context.Context) (*entity.Cart, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.carts.Delete(ctx); err != nil {
		srv.log(ctx).Error("Failed to clear guest cart", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return entity.NewGuestCart(), nil
}

// Snapshot returns the stored lines as transferable items.
func (srv *guestCartService) Snapshot(ctx context.Context) ([]entity.TransferItem, error) {
	cart, err := srv.Get(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.TransferItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, entity.TransferItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			VariantID: item.VariantID,
		})
	}

	return items, nil
}

func (srv *guestCartService) load(ctx context.Context) (*entity.Cart, error) {
	cart, err := srv.carts.Load(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load guest cart", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return cart, nil
}

func (srv *guestCartService) save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	if err := srv.carts.Save(ctx, cart); err != nil {
		srv.log(ctx).Error("Failed to save guest cart", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return nil
}
