package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogGateway reads products from the backend catalog.
type CatalogGateway interface {
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListDiscountedProducts(ctx context.Context) ([]*entity.DiscountedProduct, error)
}
