package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	payments     service.PaymentGateway
	qrcodes      service.QRCodeService
	fallbackBank entity.BankTransferInfo
	fallbackShip entity.ShippingFee
	logger       *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	payments service.PaymentGateway,
	qrcodes service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	bank := cfg.BankTransfer
	rates := cfg.Checkout

	return &paymentService{
		payments: payments,
		qrcodes:  qrcodes,
		fallbackBank: entity.BankTransferInfo{
			BankName:        bank.BankName,
			AccountNumber:   bank.AccountNumber,
			AccountName:     bank.AccountName,
			TransferContent: bank.TransferContent,
		},
		fallbackShip: entity.ShippingFee{
			BaseShipping:          decimal.NewFromInt(rates.FallbackShippingFee),
			ExpressShipping:       decimal.NewFromInt(rates.FallbackExpressShippingFee),
			FreeShippingThreshold: decimal.NewFromInt(rates.FallbackFreeShippingThreshold),
			Source:                entity.ShippingSourceFallback,
		},
		logger: logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// defaultPaymentMethods is offered when the backend cannot list payment methods.
func defaultPaymentMethods() []*entity.PaymentMethod {
	return []*entity.PaymentMethod{
		{
			ID:          entity.PaymentMethodBankTransfer,
			Name:        "Chuyển khoản ngân hàng",
			Description: "Thanh toán qua chuyển khoản ngân hàng",
			Enabled:     true,
		},
		{
			ID:          entity.PaymentMethodCashOnDelivery,
			Name:        "Thanh toán khi nhận hàng",
			Description: "Thanh toán bằng tiền mặt khi nhận hàng",
			Enabled:     true,
		},
	}
}

// ListMethods returns the backend payment methods, or the defaults when none can be read.
func (srv *paymentService) ListMethods(ctx context.Context) []*entity.PaymentMethod {
	methods, err := srv.payments.ListPaymentMethods(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch payment methods, using defaults", slog.Any("error", err))

		return defaultPaymentMethods()
	}
	if len(methods) == 0 {
		return defaultPaymentMethods()
	}

	return methods
}

// BankTransferInfo returns the backend transfer account, or the configured one when it cannot be read.
func (srv *paymentService) BankTransferInfo(ctx context.Context, orderNumber string) *entity.BankTransferInfo {
	info, err := srv.payments.GetBankTransferInfo(ctx)
	if err != nil || info.AccountNumber == "" {
		if err != nil {
			srv.log(ctx).Warn("Failed to fetch bank transfer info, using configured account", slog.Any("error", err))
		}
		fallback := srv.fallbackBank
		info = &fallback
	}

	if orderNumber != "" {
		return info.ForOrder(orderNumber)
	}

	return info
}

// BankTransferQR renders the transfer details of an order as a PNG QR code.
func (srv *paymentService) BankTransferQR(ctx context.Context, orderNumber string) ([]byte, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order number is required")
	}

	png, err := srv.qrcodes.GenerateBankTransferQR(srv.BankTransferInfo(ctx, ""), orderNumber)
	if err != nil {
		srv.log(ctx).Error("Failed to generate bank transfer QR", slog.String("order_number", orderNumber), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

// ShippingFee overlays the backend rates on the configured fallback.
func (srv *paymentService) ShippingFee(ctx context.Context, input *usecase.ShippingFeeInput) (*entity.ShippingFee, error) {
	if input.CartTotal.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cart total must not be negative")
	}

	fee := srv.fallbackShip
	quote, err := srv.payments.CalculateShippingFee(ctx, input.AddressID, input.CartTotal)
	if err != nil {
		srv.log(ctx).Warn("Failed to calculate shipping fee, using defaults",
			slog.Int64("address_id", input.AddressID),
			slog.Any("error", err),
		)

		return &fee, nil
	}

	fee.Source = entity.ShippingSourceGateway
	if quote.BaseShipping.Valid {
		fee.BaseShipping = quote.BaseShipping.Decimal
	}
	if quote.ExpressShipping.Valid {
		fee.ExpressShipping = quote.ExpressShipping.Decimal
	}
	if quote.FreeShippingThreshold.Valid {
		fee.FreeShippingThreshold = quote.FreeShippingThreshold.Decimal
	}

	return &fee, nil
}
