package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartMergeService implements the CartMergeUsecase interface.
// mu serializes whole merges so overlapping logins cannot replay the same guest lines twice.
type cartMergeService struct {
	mu     sync.Mutex
	guest  usecase.GuestCartUsecase
	user   usecase.UserCartUsecase
	events service.EventBus
	logger *slog.Logger
}

// NewCartMergeService is the constructor for cartMergeService.
func NewCartMergeService(
	guest usecase.GuestCartUsecase,
	user usecase.UserCartUsecase,
	events service.EventBus,
	logger *slog.Logger,
) usecase.CartMergeUsecase {
	return &cartMergeService{
		guest:  guest,
		user:   user,
		events: events,
		logger: logger,
	}
}

func (srv *cartMergeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// MergeGuestCart replays every guest line into the authenticated cart, one at a time.
// A failed line is logged and skipped. The guest cart is cleared whatever the outcome,
// so running the merge twice never duplicates lines.
func (srv *cartMergeService) MergeGuestCart(ctx context.Context) (*entity.Cart, *usecase.MergeReport, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	report := &usecase.MergeReport{}

	items, err := srv.guest.Snapshot(ctx)
	if err != nil {
		return nil, report, errors.Wrap(err, "failed to read guest cart")
	}

	if len(items) == 0 {
		report.Skipped = true
		cart, err := srv.user.Get(ctx)
		if err != nil {
			return nil, report, err
		}

		return cart, report, nil
	}

	srv.log(ctx).Info("Merging guest cart", slog.Int("items", len(items)))

	for _, item := range items {
		_, err := srv.user.Add(ctx, &usecase.AddCartItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			VariantID: item.VariantID,
		})
		if err != nil {
			report.Failed++
			srv.log(ctx).Warn("Failed to merge guest cart item, skipping",
				slog.Int64("product_id", item.ProductID),
				slog.Int("quantity", item.Quantity),
				slog.Any("error", err),
			)

			continue
		}
		report.Replayed++
	}

	if _, err := srv.guest.Clear(ctx); err != nil {
		srv.log(ctx).Error("Failed to clear guest cart after merge", slog.Any("error", err))
	}

	cart, err := srv.user.Get(ctx)
	if err != nil {
		return nil, report, err
	}

	srv.log(ctx).Info("Guest cart merged",
		slog.Int("replayed", report.Replayed),
		slog.Int("failed", report.Failed),
		slog.Int("total_items", cart.TotalItems),
	)
	srv.events.Publish(ctx, newCartChangedEvent(ctx, true, cart.TotalItems))

	return cart, report, nil
}

// SubscribeCartMerge runs the guest cart merge whenever a login is announced.
func SubscribeCartMerge(events service.EventBus, merge usecase.CartMergeUsecase, logger *slog.Logger) {
	events.Subscribe(service.EventUserChanged, func(ctx context.Context, event *service.Event) {
		if !event.LoggedIn {
			return
		}

		if _, _, err := merge.MergeGuestCart(ctx); err != nil {
			deliverycontext.LoggerFrom(ctx, logger).Error("Guest cart merge failed", slog.Any("error", err))
		}
	})
}
