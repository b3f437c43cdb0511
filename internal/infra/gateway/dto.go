package gateway

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Wire shapes of the backend. Fields are optional on purpose: the backend has
// served more than one shape for the same resource and normalize.go reconciles them.

type variantDTO struct {
	VariantID     int64  `json:"variantId"`
	Color         string `json:"color"`
	Size          string `json:"size"`
	StockQuantity int    `json:"stockQuantity"`
}

type productDTO struct {
	ID              int64               `json:"id"`
	ProductID       int64               `json:"productId"`
	Name            string              `json:"name"`
	ProductName     string              `json:"productName"`
	CategoryName    string              `json:"categoryName"`
	ImageURL        string              `json:"imageUrl"`
	Price           decimal.NullDecimal `json:"price"`
	OriginalPrice   decimal.NullDecimal `json:"originalPrice"`
	DiscountedPrice decimal.NullDecimal `json:"discountedPrice"`
	Description     string              `json:"description"`
	StockQuantity   int                 `json:"stockQuantity"`
	Variants        []variantDTO        `json:"variants"`
}

type variantInfoDTO struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

type cartItemDTO struct {
	CartItemID       int64               `json:"cartItemId"`
	ProductID        int64               `json:"productId"`
	ProductName      string              `json:"productName"`
	ProductImage     string              `json:"productImage"`
	ProductVariantID *int64              `json:"productVariantId"`
	VariantInfo      *variantInfoDTO     `json:"variantInfo"`
	Variant          *variantDTO         `json:"variant"`
	Product          *productDTO         `json:"product"`
	Quantity         int                 `json:"quantity"`
	UnitPrice        decimal.NullDecimal `json:"unitPrice"`
	Price            decimal.NullDecimal `json:"price"`
	TotalPrice       decimal.NullDecimal `json:"totalPrice"`
	AddedAt          flexTime            `json:"addedAt"`
}

type cartDTO struct {
	CartID    int64         `json:"cartId"`
	Items     []cartItemDTO `json:"items"`
	CartItems []cartItemDTO `json:"cartItems"`
	UpdatedAt flexTime      `json:"updatedAt"`
}

type addCartItemDTO struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	VariantID *int64 `json:"variantId,omitempty"`
}

type updateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

type addressDTO struct {
	ID            int64  `json:"id,omitempty"`
	AddressID     int64  `json:"addressId,omitempty"`
	ReceiverName  string `json:"receiverName,omitempty"`
	ReceiverPhone string `json:"receiverPhone,omitempty"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country,omitempty"`
	IsDefault     bool   `json:"isDefault"`
}

type addressEnvelope struct {
	Address *addressDTO `json:"address"`
}

type orderItemDTO struct {
	OrderItemID      int64               `json:"orderItemId"`
	ProductID        int64               `json:"productId"`
	ProductName      string              `json:"productName"`
	Quantity         int                 `json:"quantity"`
	Price            decimal.NullDecimal `json:"price"`
	VariantID        *int64              `json:"variantId"`
	ProductVariantID *int64              `json:"productVariantId"`
	ImageURL         string              `json:"imageUrl"`
	ProductImage     string              `json:"productImage"`
	TotalPrice       decimal.NullDecimal `json:"totalPrice"`
}

type summaryDTO struct {
	Items       []orderItemDTO  `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

type summaryEnvelope struct {
	Summary *summaryDTO `json:"summary"`
}

// summaryItemDTO is an outbound priced line; money goes out as JSON numbers.
type summaryItemDTO struct {
	ProductID int64   `json:"productId"`
	VariantID *int64  `json:"variantId,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type calculateSummaryDTO struct {
	Items        []summaryItemDTO `json:"items"`
	AddressID    int64            `json:"addressId"`
	DiscountCode string           `json:"discountCode,omitempty"`
}

type createOrderDTO struct {
	ShippingAddressID int64   `json:"shippingAddressId"`
	PaymentMethod     string  `json:"paymentMethod"`
	CartItemIDs       []int64 `json:"cartItemIds"`
	OrderNotes        string  `json:"orderNotes"`
}

type orderDTO struct {
	OrderID         int64               `json:"orderId"`
	OrderNumber     string              `json:"orderNumber"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	PaymentStatus   string              `json:"paymentStatus"`
	ShippingAddress *addressDTO         `json:"shippingAddress"`
	Items           []orderItemDTO      `json:"items"`
	OrderItems      []orderItemDTO      `json:"orderItems"`
	Total           decimal.NullDecimal `json:"total"`
	TotalAmount     decimal.NullDecimal `json:"totalAmount"`
	Notes           string              `json:"notes"`
	CreatedAt       flexTime            `json:"createdAt"`
	OrderDate       flexTime            `json:"orderDate"`
}

type orderPageDTO struct {
	Orders []orderDTO `json:"orders"`
	Total  int        `json:"total"`
}

type cancelOrderDTO struct {
	Reason string `json:"reason"`
}

type confirmPaymentDTO struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type paymentMethodDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

type paymentMethodsEnvelope struct {
	Methods []paymentMethodDTO `json:"methods"`
}

type bankInfoDTO struct {
	BankName        string `json:"bankName"`
	AccountNumber   string `json:"accountNumber"`
	AccountName     string `json:"accountName"`
	TransferContent string `json:"transferContent"`
	QRCodeURL       string `json:"qrCodeUrl"`
}

type bankInfoEnvelope struct {
	BankInfo *bankInfoDTO `json:"bankInfo"`
}

type categoryDTO struct {
	ID           int64  `json:"id"`
	CategoryID   int64  `json:"categoryId"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Gender       string `json:"gender"`
}

type discountedProductDTO struct {
	ProductID          int64               `json:"productId"`
	ProductName        string              `json:"productName"`
	Description        string              `json:"description"`
	ImageURL           string              `json:"imageUrl"`
	OriginalPrice      decimal.NullDecimal `json:"originalPrice"`
	DiscountPercentage decimal.NullDecimal `json:"discountPercentage"`
	DiscountedPrice    decimal.NullDecimal `json:"discountedPrice"`
	DiscountStartDate  flexTime            `json:"discountStartDate"`
	DiscountEndDate    flexTime            `json:"discountEndDate"`
	IsActive           bool                `json:"isActive"`
}

type shippingRequestDTO struct {
	AddressID int64   `json:"addressId"`
	CartTotal float64 `json:"cartTotal"`
}

type shippingFeeDTO struct {
	BaseShipping          decimal.NullDecimal `json:"baseShipping"`
	ExpressShipping       decimal.NullDecimal `json:"expressShipping"`
	FreeShippingThreshold decimal.NullDecimal `json:"freeShippingThreshold"`
}

type shippingEnvelope struct {
	Shipping *shippingFeeDTO `json:"shipping"`
}

type paymentStatusDTO struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
}

type customerInfoDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type invoiceDTO struct {
	InvoiceID     int64           `json:"invoiceId"`
	OrderID       int64           `json:"orderId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	IssuedDate    flexTime        `json:"issuedDate"`
	DueDate       flexTime        `json:"dueDate"`
	CustomerInfo  customerInfoDTO `json:"customerInfo"`
	Items         []orderItemDTO  `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ShippingFee   decimal.Decimal `json:"shippingFee"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
}

type invoiceEnvelope struct {
	Invoice *invoiceDTO `json:"invoice"`
}

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDTO struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type loginResponseDTO struct {
	Message string   `json:"message"`
	User    *userDTO `json:"user"`
}

type registerDTO struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
}

// messageDTO is the error body shape the backend uses for rejected requests.
type messageDTO struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Title   string `json:"title"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime accepts the timestamp formats the backend emits. Unparseable values decode as zero.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed

			return nil
		}
	}

	return nil
}
