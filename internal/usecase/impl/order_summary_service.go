package impl

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/shopspring/decimal"
)

// orderSummaryService implements the OrderSummaryUsecase interface.
type orderSummaryService struct {
	orders      service.OrderGateway
	shippingFee decimal.Decimal
	logger      *slog.Logger
}

// NewOrderSummaryService is the constructor for orderSummaryService.
func NewOrderSummaryService(orders service.OrderGateway, cfg *config.Config, logger *slog.Logger) usecase.OrderSummaryUsecase {
	return &orderSummaryService{
		orders:      orders,
		shippingFee: decimal.NewFromInt(cfg.Checkout.FallbackShippingFee),
		logger:      logger,
	}
}

func (srv *orderSummaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Calculate prices the items on the backend. Without an address, or when the backend
// call fails, the summary is computed locally with the configured shipping fee.
func (srv *orderSummaryService) Calculate(
	ctx context.Context,
	items []entity.LineItem,
	addressID int64,
	discountCode string,
) *entity.OrderSummary {
	fingerprint := summaryFingerprint(items, addressID, discountCode)

	if addressID > 0 {
		req := &service.SummaryRequest{
			Items:        make([]service.SummaryItem, 0, len(items)),
			AddressID:    addressID,
			DiscountCode: discountCode,
		}
		for i := range items {
			req.Items = append(req.Items, service.SummaryItem{
				ProductID: items[i].ProductID,
				VariantID: items[i].VariantID,
				Quantity:  items[i].Quantity,
				Price:     items[i].EffectivePrice(),
			})
		}

		summary, err := srv.orders.CalculateSummary(ctx, req)
		if err == nil {
			summary.Fingerprint = fingerprint

			return summary
		}
		srv.log(ctx).Warn("Order summary calculation failed, using local fallback",
			slog.Int64("address_id", addressID),
			slog.Any("error", err),
		)
	}

	return srv.fallback(items, addressID, fingerprint)
}

// fallback computes subtotal from discounted-or-unit prices plus the flat shipping fee.
// Discount and tax are zero.
func (srv *orderSummaryService) fallback(items []entity.LineItem, addressID int64, fingerprint string) *entity.OrderSummary {
	subtotal := decimal.Zero
	snapshot := make([]entity.LineItem, len(items))
	copy(snapshot, items)
	for i := range snapshot {
		subtotal = subtotal.Add(snapshot[i].EffectivePrice().Mul(decimal.NewFromInt(int64(snapshot[i].Quantity))))
	}

	return &entity.OrderSummary{
		Items:       snapshot,
		Subtotal:    subtotal,
		ShippingFee: srv.shippingFee,
		Discount:    decimal.Zero,
		Tax:         decimal.Zero,
		Total:       subtotal.Add(srv.shippingFee),
		Source:      entity.SummarySourceFallback,
		AddressID:   addressID,
		Fingerprint: fingerprint,
	}
}

// summaryFingerprint identifies the inputs of a summary; any change to them changes it.
func summaryFingerprint(items []entity.LineItem, addressID int64, discountCode string) string {
	parts := make([]string, 0, len(items)+2)
	parts = append(parts, strconv.FormatInt(addressID, 10), discountCode)
	for i := range items {
		variant := ""
		if items[i].VariantID != nil {
			variant = strconv.FormatInt(*items[i].VariantID, 10)
		}
		parts = append(parts, items[i].ID+"|"+
			strconv.FormatInt(items[i].ProductID, 10)+"|"+
			variant+"|"+
			strconv.Itoa(items[i].Quantity)+"|"+
			items[i].EffectivePrice().String())
	}

	return util.Checksum(parts...)
}
