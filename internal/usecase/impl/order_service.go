package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders    service.OrderGateway
	sessions  repository.SessionRepository
	pageLimit int
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders service.OrderGateway,
	sessions repository.SessionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:    orders,
		sessions:  sessions,
		pageLimit: cfg.Checkout.OrderPageLimit,
		logger:    logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// List returns one page of the order history.
func (srv *orderService) List(ctx context.Context, page, limit int) (*entity.OrderPage, error) {
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = srv.pageLimit
	}

	return srv.orders.ListOrders(ctx, page, limit)
}

// Cancel asks the backend to cancel an order.
func (srv *orderService) Cancel(ctx context.Context, orderID int64, input *usecase.CancelOrderInput) error {
	if orderID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order id must be positive")
	}
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return err
	}

	if err := srv.orders.CancelOrder(ctx, orderID, input.Reason); err != nil {
		srv.log(ctx).Warn("Failed to cancel order", slog.Int64("order_id", orderID), slog.Any("error", err))

		return err
	}
	srv.log(ctx).Info("Order cancelled", slog.Int64("order_id", orderID))

	return nil
}

// ConfirmPayment reports a completed bank transfer for an order.
func (srv *orderService) ConfirmPayment(ctx context.Context, orderID int64, input *usecase.ConfirmPaymentInput) error {
	if orderID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order id must be positive")
	}
	if !input.Amount.IsPositive() {
		return domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return err
	}

	return srv.orders.ConfirmPayment(ctx, &service.ConfirmPaymentRequest{
		OrderID:       orderID,
		TransactionID: input.TransactionID,
		Amount:        input.Amount,
	})
}

// UpdatePaymentStatus records a payment state change reported by the shopper.
func (srv *orderService) UpdatePaymentStatus(ctx context.Context, orderID int64, input *usecase.UpdatePaymentStatusInput) error {
	if orderID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order id must be positive")
	}
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return err
	}

	if err := srv.orders.UpdatePaymentStatus(ctx, orderID, input.Status, input.TransactionID); err != nil {
		srv.log(ctx).Warn("Failed to update payment status",
			slog.Int64("order_id", orderID),
			slog.String("status", input.Status),
			slog.Any("error", err),
		)

		return err
	}
	srv.log(ctx).Info("Payment status updated", slog.Int64("order_id", orderID), slog.String("status", input.Status))

	return nil
}

func (srv *orderService) GenerateInvoice(ctx context.Context, orderID int64) (*entity.Invoice, error) {
	if orderID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id must be positive")
	}
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return nil, err
	}

	invoice, err := srv.orders.GenerateInvoice(ctx, orderID)
	if err != nil {
		srv.log(ctx).Warn("Failed to generate invoice", slog.Int64("order_id", orderID), slog.Any("error", err))

		return nil, err
	}

	return invoice, nil
}

func (srv *orderService) GetInvoice(ctx context.Context, orderID int64) (*entity.Invoice, error) {
	if orderID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id must be positive")
	}
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return nil, err
	}

	return srv.orders.GetInvoice(ctx, orderID)
}
