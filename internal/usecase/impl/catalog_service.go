package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog service.CatalogGateway
	now     func() time.Time
	logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalog service.CatalogGateway, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
		now:     time.Now,
		logger:  logger,
	}
}

func (srv *catalogService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	if productID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id must be positive")
	}

	return srv.catalog.GetProduct(ctx, productID)
}

func (srv *catalogService) ListProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return srv.catalog.ListProducts(ctx)
	}

	return srv.catalog.ListProductsByCategory(ctx, category)
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return srv.catalog.ListCategories(ctx)
}

func (srv *catalogService) ListDiscountedProducts(ctx context.Context, onSaleOnly bool) ([]*entity.DiscountedProduct, error) {
	deals, err := srv.catalog.ListDiscountedProducts(ctx)
	if err != nil || !onSaleOnly {
		return deals, err
	}

	now := srv.now()
	onSale := make([]*entity.DiscountedProduct, 0, len(deals))
	for _, deal := range deals {
		if deal.OnSaleAt(now) {
			onSale = append(onSale, deal)
		}
	}

	return onSale, nil
}
