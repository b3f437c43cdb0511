package gateway

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
)

type paymentGateway struct {
	client *Client
}

// NewPaymentGateway creates the payment configuration client
func NewPaymentGateway(client *Client) service.PaymentGateway {
	return &paymentGateway{client: client}
}

func (g *paymentGateway) ListPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error) {
	var envelope paymentMethodsEnvelope
	if err := g.client.Do(ctx, http.MethodGet, "payment/methods", nil, nil, &envelope); err != nil {
		return nil, err
	}

	methods := make([]*entity.PaymentMethod, 0, len(envelope.Methods))
	for i := range envelope.Methods {
		methods = append(methods, paymentMethod(&envelope.Methods[i]))
	}

	return methods, nil
}

func (g *paymentGateway) GetBankTransferInfo(ctx context.Context) (*entity.BankTransferInfo, error) {
	var envelope bankInfoEnvelope
	if err := g.client.Do(ctx, http.MethodGet, "payment/bank-info", nil, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.BankInfo == nil {
		return nil, errors.NewGatewayError(http.MethodGet, "payment/bank-info", http.StatusOK, "response has no bankInfo")
	}

	return bankInfo(envelope.BankInfo), nil
}

// CalculateShippingFee posts to shipping/calculate and returns the {shipping} rate card.
func (g *paymentGateway) CalculateShippingFee(ctx context.Context, addressID int64, cartTotal decimal.Decimal) (*service.ShippingQuote, error) {
	body := shippingRequestDTO{AddressID: addressID, CartTotal: cartTotal.InexactFloat64()}

	var envelope shippingEnvelope
	if err := g.client.Do(ctx, http.MethodPost, "shipping/calculate", nil, &body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Shipping == nil {
		return nil, errors.NewGatewayError(http.MethodPost, "shipping/calculate", http.StatusOK, "response has no shipping")
	}

	return shippingQuote(envelope.Shipping), nil
}
