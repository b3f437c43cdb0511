package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

type orderGateway struct {
	client *Client
}

// NewOrderGateway creates the order resource client
func NewOrderGateway(client *Client) service.OrderGateway {
	return &orderGateway{client: client}
}

// CalculateSummary posts to orders/calculate. The {summary} wrapper is optional on the wire.
func (g *orderGateway) CalculateSummary(ctx context.Context, req *service.SummaryRequest) (*entity.OrderSummary, error) {
	body := calculateSummaryDTO{
		Items:        make([]summaryItemDTO, 0, len(req.Items)),
		AddressID:    req.AddressID,
		DiscountCode: req.DiscountCode,
	}
	for _, item := range req.Items {
		body.Items = append(body.Items, summaryItemDTO{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			Price:     item.Price.InexactFloat64(),
		})
	}

	var envelope struct {
		summaryEnvelope
		summaryDTO
	}
	if err := g.client.Do(ctx, http.MethodPost, "orders/calculate", nil, &body, &envelope); err != nil {
		return nil, err
	}

	dto := envelope.Summary
	if dto == nil {
		dto = &envelope.summaryDTO
	}

	return g.client.normalize.summary(dto, req.AddressID), nil
}

func (g *orderGateway) CreateOrder(ctx context.Context, req *service.CreateOrderRequest) (*entity.Order, error) {
	body := createOrderDTO{
		ShippingAddressID: req.ShippingAddressID,
		PaymentMethod:     req.PaymentMethod,
		CartItemIDs:       req.CartItemIDs,
		OrderNotes:        req.Notes,
	}
	if body.CartItemIDs == nil {
		body.CartItemIDs = []int64{}
	}

	var dto orderDTO
	if err := g.client.Do(ctx, http.MethodPost, "Order/OrderProduces", nil, &body, &dto); err != nil {
		return nil, err
	}

	return g.client.normalize.order(&dto), nil
}

func (g *orderGateway) ListOrders(ctx context.Context, page, limit int) (*entity.OrderPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var dto orderPageDTO
	if err := g.client.Do(ctx, http.MethodGet, "user/orders", query, nil, &dto); err != nil {
		return nil, err
	}

	result := &entity.OrderPage{
		Orders: make([]*entity.Order, 0, len(dto.Orders)),
		Total:  dto.Total,
		Page:   page,
		Limit:  limit,
	}
	for i := range dto.Orders {
		result.Orders = append(result.Orders, g.client.normalize.order(&dto.Orders[i]))
	}

	return result, nil
}

func (g *orderGateway) CancelOrder(ctx context.Context, orderID int64, reason string) error {
	path := "orders/" + strconv.FormatInt(orderID, 10) + "/cancel"

	return g.client.Do(ctx, http.MethodPut, path, nil, &cancelOrderDTO{Reason: reason}, nil)
}

func (g *orderGateway) ConfirmPayment(ctx context.Context, req *service.ConfirmPaymentRequest) error {
	if req.OrderID <= 0 {
		return errors.ErrValidationFailed.WithDetails("order id is required")
	}
	path := "orders/" + strconv.FormatInt(req.OrderID, 10) + "/confirm-payment"

	return g.client.Do(ctx, http.MethodPost, path, nil, &confirmPaymentDTO{
		TransactionID: req.TransactionID,
		Amount:        req.Amount.InexactFloat64(),
		PaymentMethod: entity.PaymentMethodBankTransfer,
	}, nil)
}

func (g *orderGateway) UpdatePaymentStatus(ctx context.Context, orderID int64, status, transactionID string) error {
	path := "orders/" + strconv.FormatInt(orderID, 10) + "/payment-status"

	return g.client.Do(ctx, http.MethodPut, path, nil, &paymentStatusDTO{Status: status, TransactionID: transactionID}, nil)
}

// GenerateInvoice asks the backend to issue an invoice for a placed order.
func (g *orderGateway) GenerateInvoice(ctx context.Context, orderID int64) (*entity.Invoice, error) {
	return g.invoice(ctx, http.MethodPost, "orders/"+strconv.FormatInt(orderID, 10)+"/invoice")
}

func (g *orderGateway) GetInvoice(ctx context.Context, orderID int64) (*entity.Invoice, error) {
	return g.invoice(ctx, http.MethodGet, "invoices/order/"+strconv.FormatInt(orderID, 10))
}

func (g *orderGateway) invoice(ctx context.Context, method, path string) (*entity.Invoice, error) {
	var envelope invoiceEnvelope
	if err := g.client.Do(ctx, method, path, nil, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Invoice == nil {
		return nil, errors.NewGatewayError(method, path, http.StatusOK, "response has no invoice")
	}

	return g.client.normalize.invoice(envelope.Invoice), nil
}
