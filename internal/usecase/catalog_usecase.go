package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase reads the product catalog.
type CatalogUsecase interface {
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	// ListProducts returns every product, or the products of one category when category is set.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	// ListDiscountedProducts returns the sale list; onSaleOnly drops inactive and out-of-window deals.
	ListDiscountedProducts(ctx context.Context, onSaleOnly bool) ([]*entity.DiscountedProduct, error)
}
