package gateway

import (
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
)

// normalizer turns backend payloads into entities. It is the only place that
// absorbs data-shape problems: missing names, images, prices and ids get defaults here.
type normalizer struct {
	placeholderImage string
}

func (n normalizer) image(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}

	return n.placeholderImage
}

// firstPrice returns the first valid, non-negative price, or zero.
func firstPrice(candidates ...decimal.NullDecimal) decimal.Decimal {
	for _, c := range candidates {
		if c.Valid && !c.Decimal.IsNegative() {
			return c.Decimal
		}
	}

	return decimal.Zero
}

func positive(d decimal.NullDecimal) decimal.NullDecimal {
	if d.Valid && d.Decimal.IsPositive() {
		return d
	}

	return decimal.NullDecimal{}
}

func (n normalizer) product(dto *productDTO) *entity.Product {
	if dto == nil {
		return nil
	}

	id := dto.ProductID
	if id == 0 {
		id = dto.ID
	}
	name := dto.Name
	if name == "" {
		name = dto.ProductName
	}

	product := &entity.Product{
		ProductID:       id,
		Name:            name,
		CategoryName:    dto.CategoryName,
		ImageURL:        n.image(dto.ImageURL),
		Price:           firstPrice(dto.Price, dto.OriginalPrice),
		DiscountedPrice: positive(dto.DiscountedPrice),
		Description:     dto.Description,
		StockQuantity:   dto.StockQuantity,
	}
	for _, v := range dto.Variants {
		product.Variants = append(product.Variants, entity.ProductVariant(v))
	}

	return product
}

func (n normalizer) products(dtos []productDTO) []*entity.Product {
	products := make([]*entity.Product, 0, len(dtos))
	for i := range dtos {
		products = append(products, n.product(&dtos[i]))
	}

	return products
}

// cartItem maps a server cart line. Unit price precedence:
// unitPrice, then price, then the product's discounted price, then the product's price.
// A line total sent by the server wins over quantity x unit price.
func (n normalizer) cartItem(dto *cartItemDTO) entity.LineItem {
	var productPrice, productDiscount decimal.NullDecimal
	var productName, productImage string
	if dto.Product != nil {
		productPrice = firstNull(dto.Product.Price, dto.Product.OriginalPrice)
		productDiscount = positive(dto.Product.DiscountedPrice)
		productName = dto.Product.Name
		if productName == "" {
			productName = dto.Product.ProductName
		}
		productImage = dto.Product.ImageURL
	}

	name := dto.ProductName
	if name == "" {
		name = productName
	}
	if name == "" {
		name = "Product #" + strconv.FormatInt(dto.ProductID, 10)
	}

	item := entity.LineItem{
		ID:              strconv.FormatInt(dto.CartItemID, 10),
		ProductID:       dto.ProductID,
		ProductName:     name,
		ProductImage:    n.image(dto.ProductImage, productImage),
		VariantID:       dto.ProductVariantID,
		UnitPrice:       firstPrice(dto.UnitPrice, dto.Price, productDiscount, productPrice),
		DiscountedPrice: productDiscount,
		AddedAt:         dto.AddedAt.Time,
	}

	if dto.Variant != nil {
		if item.VariantID == nil && dto.Variant.VariantID != 0 {
			variantID := dto.Variant.VariantID
			item.VariantID = &variantID
		}
		item.VariantInfo = &entity.VariantInfo{Color: dto.Variant.Color, Size: dto.Variant.Size}
	}
	if dto.VariantInfo != nil {
		item.VariantInfo = &entity.VariantInfo{Color: dto.VariantInfo.Color, Size: dto.VariantInfo.Size}
	}

	quantity := dto.Quantity
	if quantity < 0 {
		quantity = 0
	}
	item.SetQuantity(quantity)
	keepServerTotal(&item, dto.TotalPrice)

	return item
}

func keepServerTotal(item *entity.LineItem, total decimal.NullDecimal) {
	if total.Valid && !total.Decimal.IsNegative() {
		item.TotalPrice = total.Decimal
	}
}

func firstNull(candidates ...decimal.NullDecimal) decimal.NullDecimal {
	for _, c := range candidates {
		if c.Valid {
			return c
		}
	}

	return decimal.NullDecimal{}
}

// cart maps a server cart. Cart totals are recomputed from the line totals.
func (n normalizer) cart(dto *cartDTO) *entity.Cart {
	cart := &entity.Cart{
		Kind:  entity.CartKindUser,
		Items: []entity.LineItem{},
	}
	if dto == nil {
		return cart
	}
	cart.CartID = dto.CartID
	cart.UpdatedAt = dto.UpdatedAt.Time

	lines := dto.Items
	if len(lines) == 0 {
		lines = dto.CartItems
	}
	for i := range lines {
		cart.Items = append(cart.Items, n.cartItem(&lines[i]))
	}
	cart.Recalculate()

	return cart
}

func (n normalizer) address(dto *addressDTO) *entity.Address {
	if dto == nil {
		return nil
	}

	id := dto.ID
	if id == 0 {
		id = dto.AddressID
	}

	return &entity.Address{
		ID:            id,
		ReceiverName:  dto.ReceiverName,
		ReceiverPhone: dto.ReceiverPhone,
		AddressLine1:  dto.AddressLine1,
		AddressLine2:  dto.AddressLine2,
		City:          dto.City,
		State:         dto.State,
		PostalCode:    dto.PostalCode,
		Country:       dto.Country,
		IsDefault:     dto.IsDefault,
	}
}

func toAddressDTO(address *entity.Address) *addressDTO {
	return &addressDTO{
		ReceiverName:  address.ReceiverName,
		ReceiverPhone: address.ReceiverPhone,
		AddressLine1:  address.AddressLine1,
		AddressLine2:  address.AddressLine2,
		City:          address.City,
		State:         address.State,
		PostalCode:    address.PostalCode,
		Country:       address.Country,
		IsDefault:     address.IsDefault,
	}
}

func (n normalizer) orderItem(dto *orderItemDTO) entity.LineItem {
	variantID := dto.VariantID
	if variantID == nil {
		variantID = dto.ProductVariantID
	}
	name := dto.ProductName
	if name == "" {
		name = "Product #" + strconv.FormatInt(dto.ProductID, 10)
	}

	item := entity.LineItem{
		ProductID:    dto.ProductID,
		ProductName:  name,
		ProductImage: n.image(dto.ImageURL, dto.ProductImage),
		VariantID:    variantID,
		UnitPrice:    firstPrice(dto.Price),
	}
	if dto.OrderItemID != 0 {
		item.ID = strconv.FormatInt(dto.OrderItemID, 10)
	}
	item.SetQuantity(dto.Quantity)
	keepServerTotal(&item, dto.TotalPrice)

	return item
}

func (n normalizer) orderItems(dtos []orderItemDTO) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(dtos))
	for i := range dtos {
		items = append(items, n.orderItem(&dtos[i]))
	}

	return items
}

// summary maps a backend-computed summary verbatim; nothing is recomputed.
func (n normalizer) summary(dto *summaryDTO, addressID int64) *entity.OrderSummary {
	return &entity.OrderSummary{
		Items:       n.orderItems(dto.Items),
		Subtotal:    dto.Subtotal,
		ShippingFee: dto.ShippingFee,
		Discount:    dto.Discount,
		Tax:         dto.Tax,
		Total:       dto.Total,
		Source:      entity.SummarySourceGateway,
		AddressID:   addressID,
	}
}

func (n normalizer) order(dto *orderDTO) *entity.Order {
	items := dto.Items
	if len(items) == 0 {
		items = dto.OrderItems
	}
	createdAt := dto.CreatedAt.Time
	if createdAt.IsZero() {
		createdAt = dto.OrderDate.Time
	}
	orderNumber := dto.OrderNumber
	if orderNumber == "" && dto.OrderID != 0 {
		orderNumber = strconv.FormatInt(dto.OrderID, 10)
	}

	return &entity.Order{
		ID:              dto.OrderID,
		OrderNumber:     orderNumber,
		Status:          dto.Status,
		PaymentMethod:   dto.PaymentMethod,
		PaymentStatus:   dto.PaymentStatus,
		ShippingAddress: n.address(dto.ShippingAddress),
		Items:           n.orderItems(items),
		TotalAmount:     firstPrice(dto.TotalAmount, dto.Total),
		Notes:           dto.Notes,
		CreatedAt:       createdAt,
	}
}

func paymentMethod(dto *paymentMethodDTO) *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Enabled:     dto.Enabled,
	}
}

func bankInfo(dto *bankInfoDTO) *entity.BankTransferInfo {
	return &entity.BankTransferInfo{
		BankName:        dto.BankName,
		AccountNumber:   dto.AccountNumber,
		AccountName:     dto.AccountName,
		TransferContent: dto.TransferContent,
		QRCodeURL:       dto.QRCodeURL,
	}
}

func (n normalizer) category(dto *categoryDTO) *entity.Category {
	id := dto.CategoryID
	if id == 0 {
		id = dto.ID
	}
	name := dto.CategoryName
	if name == "" {
		name = dto.Name
	}
	description := dto.Description
	if description == "" {
		description = dto.Gender
	}

	return &entity.Category{
		CategoryID:   id,
		CategoryName: name,
		Description:  description,
		ImageURL:     dto.Image,
	}
}

// discounted fills whichever of the sale price and percentage the backend left out.
func (n normalizer) discounted(dto *discountedProductDTO) *entity.DiscountedProduct {
	original := firstPrice(dto.OriginalPrice)
	percentage := firstPrice(dto.DiscountPercentage)
	price := firstPrice(dto.DiscountedPrice, dto.OriginalPrice)
	hundred := decimal.NewFromInt(100)

	switch {
	case !dto.DiscountedPrice.Valid && percentage.IsPositive():
		price = original.Mul(hundred.Sub(percentage)).Div(hundred).Round(0)
	case !dto.DiscountPercentage.Valid && original.IsPositive() && price.LessThan(original):
		percentage = original.Sub(price).Mul(hundred).Div(original).Round(0)
	}
	name := dto.ProductName
	if name == "" {
		name = "Product " + strconv.FormatInt(dto.ProductID, 10)
	}

	return &entity.DiscountedProduct{
		ProductID:          dto.ProductID,
		ProductName:        name,
		Description:        dto.Description,
		ImageURL:           n.image(dto.ImageURL),
		OriginalPrice:      original,
		DiscountPercentage: percentage,
		DiscountedPrice:    price,
		DiscountStartDate:  dto.DiscountStartDate.Time,
		DiscountEndDate:    dto.DiscountEndDate.Time,
		IsActive:           dto.IsActive,
	}
}

// shippingQuote drops negative rates so the caller falls back for them.
func shippingQuote(dto *shippingFeeDTO) *service.ShippingQuote {
	nonNegative := func(d decimal.NullDecimal) decimal.NullDecimal {
		if d.Valid && d.Decimal.IsNegative() {
			return decimal.NullDecimal{}
		}

		return d
	}

	return &service.ShippingQuote{
		BaseShipping:          nonNegative(dto.BaseShipping),
		ExpressShipping:       nonNegative(dto.ExpressShipping),
		FreeShippingThreshold: nonNegative(dto.FreeShippingThreshold),
	}
}

func (n normalizer) invoice(dto *invoiceDTO) *entity.Invoice {
	return &entity.Invoice{
		InvoiceID:     dto.InvoiceID,
		OrderID:       dto.OrderID,
		InvoiceNumber: dto.InvoiceNumber,
		IssuedDate:    dto.IssuedDate.Time,
		DueDate:       dto.DueDate.Time,
		Customer: entity.InvoiceCustomer{
			Name:    dto.CustomerInfo.Name,
			Email:   dto.CustomerInfo.Email,
			Phone:   dto.CustomerInfo.Phone,
			Address: dto.CustomerInfo.Address,
		},
		Items:         n.orderItems(dto.Items),
		Subtotal:      dto.Subtotal,
		ShippingFee:   dto.ShippingFee,
		Discount:      dto.Discount,
		Tax:           dto.Tax,
		Total:         dto.Total,
		PaymentMethod: dto.PaymentMethod,
		PaymentStatus: dto.PaymentStatus,
	}
}
