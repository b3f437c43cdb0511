package gateway

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type addressGateway struct {
	client *Client
}

// NewAddressGateway creates the address book resource client
func NewAddressGateway(client *Client) service.AddressGateway {
	return &addressGateway{client: client}
}

func (g *addressGateway) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	var dtos []addressDTO
	if err := g.client.Do(ctx, http.MethodGet, "user/addresses", nil, nil, &dtos); err != nil {
		return nil, err
	}

	addresses := make([]*entity.Address, 0, len(dtos))
	for i := range dtos {
		addresses = append(addresses, g.client.normalize.address(&dtos[i]))
	}

	return addresses, nil
}

func (g *addressGateway) AddAddress(ctx context.Context, address *entity.Address) error {
	return g.client.Do(ctx, http.MethodPost, "User/AddAddress", nil, toAddressDTO(address), nil)
}

func (g *addressGateway) UpdateAddress(ctx context.Context, address *entity.Address) (*entity.Address, error) {
	var envelope addressEnvelope
	path := "user/addresses/" + strconv.FormatInt(address.ID, 10)
	if err := g.client.Do(ctx, http.MethodPut, path, nil, toAddressDTO(address), &envelope); err != nil {
		return nil, err
	}
	if envelope.Address == nil {
		updated := *address

		return &updated, nil
	}

	return g.client.normalize.address(envelope.Address), nil
}

func (g *addressGateway) DeleteAddress(ctx context.Context, addressID int64) error {
	return g.client.Do(ctx, http.MethodDelete, "user/addresses/"+strconv.FormatInt(addressID, 10), nil, nil, nil)
}

func (g *addressGateway) SetDefaultAddress(ctx context.Context, addressID int64) error {
	path := "user/addresses/" + strconv.FormatInt(addressID, 10) + "/default"

	return g.client.Do(ctx, http.MethodPut, path, nil, struct{}{}, nil)
}
