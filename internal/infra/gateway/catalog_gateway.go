package gateway

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type catalogGateway struct {
	client *Client
}

// NewCatalogGateway creates the product catalog client
func NewCatalogGateway(client *Client) service.CatalogGateway {
	return &catalogGateway{client: client}
}

func (g *catalogGateway) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	var dto productDTO
	if err := g.client.Do(ctx, http.MethodGet, "Products/"+strconv.FormatInt(productID, 10), nil, nil, &dto); err != nil {
		return nil, err
	}
	product := g.client.normalize.product(&dto)
	if product.ProductID == 0 {
		product.ProductID = productID
	}

	return product, nil
}

func (g *catalogGateway) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return g.list(ctx, "Products/all")
}

func (g *catalogGateway) ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	// Client.Do escapes the path when building the request URL.
	return g.list(ctx, "Products/category/"+category)
}

func (g *catalogGateway) list(ctx context.Context, path string) ([]*entity.Product, error) {
	var dtos []productDTO
	if err := g.client.Do(ctx, http.MethodGet, path, nil, nil, &dtos); err != nil {
		return nil, err
	}

	return g.client.normalize.products(dtos), nil
}

func (g *catalogGateway) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var dtos []categoryDTO
	if err := g.client.Do(ctx, http.MethodGet, "Categories", nil, nil, &dtos); err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, 0, len(dtos))
	for i := range dtos {
		categories = append(categories, g.client.normalize.category(&dtos[i]))
	}

	return categories, nil
}

func (g *catalogGateway) ListDiscountedProducts(ctx context.Context) ([]*entity.DiscountedProduct, error) {
	var dtos []discountedProductDTO
	if err := g.client.Do(ctx, http.MethodGet, "Products/discounted", nil, nil, &dtos); err != nil {
		return nil, err
	}

	products := make([]*entity.DiscountedProduct, 0, len(dtos))
	for i := range dtos {
		products = append(products, g.client.normalize.discounted(&dtos[i]))
	}

	return products, nil
}
