package gateway

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type cartGateway struct {
	client *Client
}

// NewCartGateway creates the ShoppingCart resource client
func NewCartGateway(client *Client) service.CartGateway {
	return &cartGateway{client: client}
}

func (g *cartGateway) GetCart(ctx context.Context) (*entity.Cart, error) {
	return g.call(ctx, http.MethodGet, "ShoppingCart", nil)
}

func (g *cartGateway) AddItem(ctx context.Context, item entity.TransferItem) (*entity.Cart, error) {
	return g.call(ctx, http.MethodPost, "ShoppingCart", &addCartItemDTO{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		VariantID: item.VariantID,
	})
}

func (g *cartGateway) UpdateItem(ctx context.Context, cartItemID int64, quantity int) (*entity.Cart, error) {
	return g.call(ctx, http.MethodPut, "ShoppingCart/items/"+strconv.FormatInt(cartItemID, 10), &updateCartItemDTO{
		Quantity: quantity,
	})
}

func (g *cartGateway) RemoveItem(ctx context.Context, cartItemID int64) (*entity.Cart, error) {
	return g.call(ctx, http.MethodDelete, "ShoppingCart/"+strconv.FormatInt(cartItemID, 10), nil)
}

func (g *cartGateway) ClearCart(ctx context.Context) (*entity.Cart, error) {
	return g.call(ctx, http.MethodDelete, "ShoppingCart", nil)
}

func (g *cartGateway) call(ctx context.Context, method, path string, in any) (*entity.Cart, error) {
	var dto cartDTO
	if err := g.client.Do(ctx, method, path, nil, in, &dto); err != nil {
		return nil, err
	}

	return g.client.normalize.cart(&dto), nil
}
