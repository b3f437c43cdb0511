package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts(t *testing.T) {
	catalog := mockService.NewMockCatalogGateway(t)
	srv := NewCatalogService(catalog, newDiscardLogger())
	ctx := context.Background()
	all := []*entity.Product{testProduct(1, 100000), testProduct(2, 200000)}
	fashion := []*entity.Product{testProduct(2, 200000)}

	catalog.EXPECT().ListProducts(mock.Anything).Return(all, nil).Once()
	catalog.EXPECT().ListProductsByCategory(mock.Anything, "Thời trang").Return(fashion, nil).Once()

	products, err := srv.ListProducts(ctx, " ")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = srv.ListProducts(ctx, " Thời trang ")
	require.NoError(t, err)
	assert.Equal(t, fashion, products)
}

func TestCatalogService_GetProduct(t *testing.T) {
	catalog := mockService.NewMockCatalogGateway(t)
	srv := NewCatalogService(catalog, newDiscardLogger())
	ctx := context.Background()

	_, err := srv.GetProduct(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	catalog.EXPECT().GetProduct(mock.Anything, int64(1)).Return(testProduct(1, 100000), nil).Once()

	product, err := srv.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ProductID)
}

func TestCatalogService_ListCategories(t *testing.T) {
	catalog := mockService.NewMockCatalogGateway(t)
	srv := NewCatalogService(catalog, newDiscardLogger())
	categories := []*entity.Category{{CategoryID: 1, CategoryName: "Nam"}, {CategoryID: 2, CategoryName: "Nữ"}}

	catalog.EXPECT().ListCategories(mock.Anything).Return(categories, nil).Once()

	got, err := srv.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func TestCatalogService_ListDiscountedProducts(t *testing.T) {
	catalog := mockService.NewMockCatalogGateway(t)
	srv := NewCatalogService(catalog, newDiscardLogger())
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	srv.(*catalogService).now = func() time.Time { return now }
	deals := []*entity.DiscountedProduct{
		{ProductID: 1, IsActive: true},
		{ProductID: 2, IsActive: true, DiscountEndDate: now.Add(-time.Hour)},
		{ProductID: 3, IsActive: true, DiscountStartDate: now.Add(time.Hour)},
		{ProductID: 4, IsActive: false},
		{ProductID: 5, IsActive: true, DiscountStartDate: now.Add(-time.Hour), DiscountEndDate: now},
	}

	catalog.EXPECT().ListDiscountedProducts(mock.Anything).Return(deals, nil).Twice()

	all, err := srv.ListDiscountedProducts(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	onSale, err := srv.ListDiscountedProducts(context.Background(), true)
	require.NoError(t, err)
	ids := make([]int64, 0, len(onSale))
	for _, deal := range onSale {
		ids = append(ids, deal.ProductID)
	}
	assert.Equal(t, []int64{1, 5}, ids)
}

func TestCatalogService_ListDiscountedProductsError(t *testing.T) {
	catalog := mockService.NewMockCatalogGateway(t)
	srv := NewCatalogService(catalog, newDiscardLogger())

	catalog.EXPECT().ListDiscountedProducts(mock.Anything).Return(nil, domainerrors.ErrInternalError).Once()

	_, err := srv.ListDiscountedProducts(context.Background(), true)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
