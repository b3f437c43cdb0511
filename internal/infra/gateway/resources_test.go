package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// recorder answers every request with the canned body for its path and records it.
type recorder struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)

	r.mu.Lock()
	r.requests = append(r.requests, recordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.RawQuery,
		Body:   string(body),
	})
	resp, ok := r.responses[req.Method+" "+req.URL.Path]
	r.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)

		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(resp))
}

func (r *recorder) last() recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.requests[len(r.requests)-1]
}

const emptyCart = `{"cartId":1,"items":[]}`

func TestCartGateway_Routes(t *testing.T) {
	rec := &recorder{responses: map[string]string{
		"GET /api/ShoppingCart":           emptyCart,
		"POST /api/ShoppingCart":          emptyCart,
		"PUT /api/ShoppingCart/items/501": emptyCart,
		"DELETE /api/ShoppingCart/501":    emptyCart,
		"DELETE /api/ShoppingCart":        emptyCart,
	}}
	client, _ := newTestClient(t, rec)
	gw := NewCartGateway(client)
	ctx := context.Background()
	variantID := int64(70)

	_, err := gw.GetCart(ctx)
	require.NoError(t, err)

	_, err = gw.AddItem(ctx, entity.TransferItem{ProductID: 7, Quantity: 2, VariantID: &variantID})
	require.NoError(t, err)
	assert.JSONEq(t, `{"productId":7,"quantity":2,"variantId":70}`, rec.last().Body)

	_, err = gw.AddItem(ctx, entity.TransferItem{ProductID: 8, Quantity: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"productId":8,"quantity":1}`, rec.last().Body)

	_, err = gw.UpdateItem(ctx, 501, 3)
	require.NoError(t, err)
	assert.JSONEq(t, `{"quantity":3}`, rec.last().Body)

	_, err = gw.RemoveItem(ctx, 501)
	require.NoError(t, err)

	cart, err := gw.ClearCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.CartKindUser, cart.Kind)
	assert.Len(t, rec.requests, 6)
}

func TestOrderGateway_CalculateSummary(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrapped", `{"summary":{"items":[],"subtotal":250000,"shippingFee":20000,"discount":10000,"tax":0,"total":260000}}`},
		{"bare", `{"items":[],"subtotal":250000,"shippingFee":20000,"discount":10000,"tax":0,"total":260000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{responses: map[string]string{"POST /api/orders/calculate": tt.body}}
			client, _ := newTestClient(t, rec)

			summary, err := NewOrderGateway(client).CalculateSummary(context.Background(), &service.SummaryRequest{
				Items:        []service.SummaryItem{{ProductID: 7, Quantity: 2, Price: decimal.NewFromInt(125000)}},
				AddressID:    5,
				DiscountCode: "SALE10",
			})
			require.NoError(t, err)

			assert.JSONEq(t, `{"items":[{"productId":7,"quantity":2,"price":125000}],"addressId":5,"discountCode":"SALE10"}`, rec.last().Body)
			assert.Equal(t, entity.SummarySourceGateway, summary.Source)
			assert.True(t, decimal.NewFromInt(260000).Equal(summary.Total), "backend total is returned verbatim")
			assert.True(t, decimal.NewFromInt(10000).Equal(summary.Discount))
			assert.Equal(t, int64(5), summary.AddressID)
		})
	}
}

func TestOrderGateway_OrdersLifecycle(t *testing.T) {
	rec := &recorder{responses: map[string]string{
		"POST /api/Order/OrderProduces":      `{"orderId":9,"orderNumber":"ORD-9","status":"pending","totalAmount":280000}`,
		"GET /api/user/orders":               `{"orders":[{"orderId":9,"status":"pending"}],"total":1}`,
		"PUT /api/orders/9/cancel":           `{}`,
		"POST /api/orders/9/confirm-payment": `{}`,
	}}
	client, _ := newTestClient(t, rec)
	gw := NewOrderGateway(client)
	ctx := context.Background()

	order, err := gw.CreateOrder(ctx, &service.CreateOrderRequest{
		ShippingAddressID: 5,
		PaymentMethod:     entity.PaymentMethodCashOnDelivery,
		CartItemIDs:       []int64{501, 502},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-9", order.OrderNumber)
	assert.JSONEq(t, `{"shippingAddressId":5,"paymentMethod":"cash_on_delivery","cartItemIds":[501,502],"orderNotes":""}`, rec.last().Body)

	page, err := gw.ListOrders(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, "limit=10&page=2", rec.last().Query)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Orders, 1)

	require.NoError(t, gw.CancelOrder(ctx, 9, "đổi ý"))
	assert.JSONEq(t, `{"reason":"đổi ý"}`, rec.last().Body)

	require.NoError(t, gw.ConfirmPayment(ctx, &service.ConfirmPaymentRequest{
		OrderID: 9, TransactionID: "TX1", Amount: decimal.NewFromInt(280000),
	}))
	var confirm map[string]any
	require.NoError(t, json.Unmarshal([]byte(rec.last().Body), &confirm))
	assert.Equal(t, "bank_transfer", confirm["paymentMethod"])
	assert.InDelta(t, 280000, confirm["amount"], 0)

	err = gw.ConfirmPayment(ctx, &service.ConfirmPaymentRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressGateway_Routes(t *testing.T) {
	rec := &recorder{responses: map[string]string{
		"GET /api/user/addresses":           `[{"addressId":1,"addressLine1":"A","isDefault":false},{"id":2,"addressLine1":"B","isDefault":true}]`,
		"POST /api/User/AddAddress":         `{}`,
		"PUT /api/user/addresses/2":         `{"address":{"id":2,"addressLine1":"B2","isDefault":true}}`,
		"DELETE /api/user/addresses/1":      `{}`,
		"PUT /api/user/addresses/1/default": `{}`,
	}}
	client, _ := newTestClient(t, rec)
	gw := NewAddressGateway(client)
	ctx := context.Background()

	addresses, err := gw.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, int64(1), addresses[0].ID)
	assert.Equal(t, int64(2), entity.DefaultAddress(addresses).ID)

	require.NoError(t, gw.AddAddress(ctx, &entity.Address{AddressLine1: "C", City: "HN", State: "HK", PostalCode: "100000"}))
	assert.Contains(t, rec.last().Body, `"addressLine1":"C"`)

	updated, err := gw.UpdateAddress(ctx, &entity.Address{ID: 2, AddressLine1: "B2"})
	require.NoError(t, err)
	assert.Equal(t, "B2", updated.AddressLine1)

	require.NoError(t, gw.DeleteAddress(ctx, 1))
	require.NoError(t, gw.SetDefaultAddress(ctx, 1))
	assert.JSONEq(t, `{}`, rec.last().Body)
}

func TestPaymentGateway(t *testing.T) {
	rec := &recorder{responses: map[string]string{
		"GET /api/payment/methods":   `{"methods":[{"id":"bank_transfer","name":"Chuyển khoản","enabled":true}]}`,
		"GET /api/payment/bank-info": `{"bankInfo":{"bankName":"ACB","accountNumber":"999","accountName":"SHOP","transferContent":"DH [ORDER_NUMBER]"}}`,
	}}
	client, _ := newTestClient(t, rec)
	gw := NewPaymentGateway(client)

	methods, err := gw.ListPaymentMethods(context.Background())
	require.NoError(t, err)
	require.Len(t, methods, 1)
	assert.Equal(t, entity.PaymentMethodBankTransfer, methods[0].ID)

	info, err := gw.GetBankTransferInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "999", info.AccountNumber)
}

func TestPaymentGateway_MissingBankInfo(t *testing.T) {
	rec := &recorder{responses: map[string]string{"GET /api/payment/bank-info": `{}`}}
	client, _ := newTestClient(t, rec)

	_, err := NewPaymentGateway(client).GetBankTransferInfo(context.Background())

	var gwErr *domainerrors.GatewayError
	assert.True(t, errors.As(err, &gwErr))
}

func TestCatalogGateway(t *testing.T) {
	rec := &recorder{responses: map[string]string{
		"GET /api/Products/7":                   `{"name":"Áo","price":125000}`,
		"GET /api/Products/all":                 `[{"productId":1,"name":"A","price":1},{"productId":2,"name":"B","price":2}]`,
		"GET /api/Products/category/Thời trang": `[{"productId":3,"name":"C","price":3}]`,
	}}
	client, _ := newTestClient(t, rec)
	gw := NewCatalogGateway(client)
	ctx := context.Background()

	product, err := gw.GetProduct(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ProductID, "id falls back to the requested one")

	all, err := gw.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byCategory, err := gw.ListProductsByCategory(ctx, "Thời trang")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}

func TestAuthGateway(t *testing.T) {
	rec := &recorder{responses: map[string]string{
		"POST /api/user/login":    `{"message":"Đăng nhập thành công","user":{"fullName":"Lan","email":"lan@example.com"}}`,
		"POST /api/user/register": `{"message":"ok"}`,
	}}
	client, _ := newTestClient(t, rec)
	gw := NewAuthGateway(client)
	ctx := context.Background()

	user, err := gw.Login(ctx, "lan@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Lan", user.FullName)
	assert.JSONEq(t, `{"email":"lan@example.com","password":"secret"}`, rec.last().Body)

	require.NoError(t, gw.Register(ctx, &service.RegisterRequest{
		FullName: "Lan", Email: "lan@example.com", Password: "pw", ConfirmPassword: "pw", Phone: "0900000000",
	}))
	assert.JSONEq(t, `{"fullName":"Lan","email":"lan@example.com","password":"pw","confirmPassword":"pw","phone":"0900000000"}`, rec.last().Body)
}

func TestAuthGateway_LoginWithoutUser(t *testing.T) {
	rec := &recorder{responses: map[string]string{"POST /api/user/login": `{"message":"Sai mật khẩu"}`}}
	client, _ := newTestClient(t, rec)

	_, err := NewAuthGateway(client).Login(context.Background(), "lan@example.com", "bad")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCatalogGateway_CategoriesAndDeals(t *testing.T) {
	rec := &recorder{responses: map[string]string{
		"GET /api/Categories": `[{"id":1,"name":"Nam","image":"nam.png","gender":"Nam"},{"categoryId":2,"categoryName":"Nữ","description":"Thời trang nữ"}]`,
		"GET /api/Products/discounted": `[
			{"productId":3,"productName":"Váy","originalPrice":200000,"discountPercentage":25,"isActive":true,"discountEndDate":"2026-12-31T23:59:59"},
			{"productId":4,"originalPrice":100000,"discountedPrice":70000,"isActive":false}
		]`,
	}}
	client, _ := newTestClient(t, rec)
	gw := NewCatalogGateway(client)
	ctx := context.Background()

	categories, err := gw.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, entity.Category{CategoryID: 1, CategoryName: "Nam", Description: "Nam", ImageURL: "nam.png"}, *categories[0])
	assert.Equal(t, "Thời trang nữ", categories[1].Description)

	deals, err := gw.ListDiscountedProducts(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.True(t, deals[0].DiscountedPrice.Equal(decimal.NewFromInt(150000)), "price derived from the percentage")
	assert.Equal(t, 2026, deals[0].DiscountEndDate.Year())
	assert.True(t, deals[1].DiscountPercentage.Equal(decimal.NewFromInt(30)), "percentage derived from the price")
	assert.Equal(t, "Product 4", deals[1].ProductName)
	assert.NotEmpty(t, deals[1].ImageURL)
}

func TestOrderGateway_PaymentStatusAndInvoices(t *testing.T) {
	invoice := `{"invoice":{"invoiceId":4,"orderId":9,"invoiceNumber":"INV-9","issuedDate":"2026-10-01",
		"customerInfo":{"name":"An","email":"an@example.com"},
		"items":[{"productId":1,"productName":"Áo","quantity":2,"price":100000,"totalPrice":200000}],
		"subtotal":200000,"shippingFee":30000,"discount":0,"tax":0,"total":230000,
		"paymentMethod":"bank_transfer","paymentStatus":"completed"}}`
	rec := &recorder{responses: map[string]string{
		"PUT /api/orders/9/payment-status": `{}`,
		"POST /api/orders/9/invoice":       invoice,
		"GET /api/invoices/order/9":        invoice,
		"GET /api/invoices/order/10":       `{}`,
	}}
	client, _ := newTestClient(t, rec)
	gw := NewOrderGateway(client)
	ctx := context.Background()

	require.NoError(t, gw.UpdatePaymentStatus(ctx, 9, entity.PaymentStatusCompleted, "TX1"))
	assert.JSONEq(t, `{"status":"completed","transactionId":"TX1"}`, rec.last().Body)

	generated, err := gw.GenerateInvoice(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.last().Method)
	assert.Equal(t, "INV-9", generated.InvoiceNumber)
	assert.Equal(t, "An", generated.Customer.Name)
	require.Len(t, generated.Items, 1)
	assert.True(t, generated.Items[0].TotalPrice.Equal(decimal.NewFromInt(200000)))
	assert.True(t, generated.Total.Equal(decimal.NewFromInt(230000)))

	fetched, err := gw.GetInvoice(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, generated, fetched)

	_, err = gw.GetInvoice(ctx, 10)
	var gwErr *domainerrors.GatewayError
	assert.True(t, errors.As(err, &gwErr))
}

func TestPaymentGateway_CalculateShippingFee(t *testing.T) {
	rec := &recorder{responses: map[string]string{
		"POST /api/shipping/calculate": `{"shipping":{"baseShipping":25000,"expressShipping":-1}}`,
	}}
	client, _ := newTestClient(t, rec)

	quote, err := NewPaymentGateway(client).CalculateShippingFee(context.Background(), 5, decimal.NewFromInt(120000))
	require.NoError(t, err)
	assert.JSONEq(t, `{"addressId":5,"cartTotal":120000}`, rec.last().Body)
	assert.True(t, quote.BaseShipping.Valid)
	assert.True(t, quote.BaseShipping.Decimal.Equal(decimal.NewFromInt(25000)))
	assert.False(t, quote.ExpressShipping.Valid, "negative rates are dropped")
	assert.False(t, quote.FreeShippingThreshold.Valid)
}
