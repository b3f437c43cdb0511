package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx
type CheckoutServiceParams struct {
	fx.In

	Sessions  repository.SessionRepository
	Carts     usecase.UserCartUsecase
	Summaries usecase.OrderSummaryUsecase
	Addresses service.AddressGateway
	Payments  usecase.PaymentUsecase
	Orders    service.OrderGateway
	Events    service.EventBus
	Logger    *slog.Logger
}

// Checkouts are evicted once they sit untouched for longer than these.
const (
	completedCheckoutTTL = 30 * time.Minute
	abandonedCheckoutTTL = 24 * time.Hour
)

// checkoutService implements the CheckoutUsecase interface.
// Checkouts live in memory; handlers receive copies so a checkout is only mutated under mu.
// A checkout listed in placing has an order request in flight and accepts no other change.
type checkoutService struct {
	mu        sync.Mutex
	checkouts map[uuid.UUID]*entity.Checkout
	placing   map[uuid.UUID]bool
	now       func() time.Time

	sessions  repository.SessionRepository
	carts     usecase.UserCartUsecase
	summaries usecase.OrderSummaryUsecase
	addresses service.AddressGateway
	payments  usecase.PaymentUsecase
	orders    service.OrderGateway
	events    service.EventBus
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		checkouts: make(map[uuid.UUID]*entity.Checkout),
		placing:   make(map[uuid.UUID]bool),
		now:       time.Now,
		sessions:  params.Sessions,
		carts:     params.Carts,
		summaries: params.Summaries,
		addresses: params.Addresses,
		payments:  params.Payments,
		orders:    params.Orders,
		events:    params.Events,
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Begin snapshots the authenticated cart, or the selected lines of it, into a new checkout.
func (srv *checkoutService) Begin(ctx context.Context, input *usecase.BeginCheckoutInput) (*entity.Checkout, error) {
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return nil, err
	}

	cart, err := srv.carts.Get(ctx)
	if err != nil {
		return nil, err
	}

	items, err := selectItems(cart, input.CartItemIDs)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCheckout
	}

	now := srv.now().UTC()
	checkout := &entity.Checkout{
		ID:             uuid.New(),
		Items:          items,
		CartItemIDs:    make([]string, 0, len(items)),
		PaymentMethods: srv.payments.ListMethods(ctx),
		Step:           entity.CheckoutStepAddress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i := range items {
		checkout.CartItemIDs = append(checkout.CartItemIDs, items[i].ID)
	}

	addresses, err := srv.addresses.ListAddresses(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load addresses for checkout", slog.Any("error", err))
	}
	if address := entity.DefaultAddress(addresses); address != nil {
		checkout.Address = address
		checkout.Summary = srv.summaries.Calculate(ctx, items, address.ID, "")
		checkout.Step = entity.CheckoutStepPayment
	}

	srv.store(checkout)
	srv.log(ctx).Info("Checkout started",
		slog.String("checkout_id", checkout.ID.String()),
		slog.Int("items", len(items)),
		slog.String("step", string(checkout.Step)),
	)

	return checkout.Clone(), nil
}

// selectItems returns the cart lines with the given IDs in cart order, or every line when ids is empty.
func selectItems(cart *entity.Cart, ids []string) ([]entity.LineItem, error) {
	if len(ids) == 0 {
		items := make([]entity.LineItem, len(cart.Items))
		copy(items, cart.Items)

		return items, nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if cart.FindItem(id) < 0 {
			return nil, domainerrors.ErrCartItemNotFound.WithDetails(id)
		}
		wanted[id] = true
	}

	items := make([]entity.LineItem, 0, len(wanted))
	for _, item := range cart.Items {
		if wanted[item.ID] {
			items = append(items, item)
		}
	}

	return items, nil
}

// Get returns a checkout by ID.
func (srv *checkoutService) Get(_ context.Context, checkoutID uuid.UUID) (*entity.Checkout, error) {
	checkout, err := srv.load(checkoutID)
	if err != nil {
		return nil, err
	}

	return checkout, nil
}

// SelectAddress sets the shipping address from the address book and reprices the checkout.
func (srv *checkoutService) SelectAddress(ctx context.Context, checkoutID uuid.UUID, addressID int64) (*entity.Checkout, error) {
	checkout, err := srv.loadOpen(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	addresses, err := srv.addresses.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}

	var selected *entity.Address
	for _, address := range addresses {
		if address.ID == addressID {
			selected = address

			break
		}
	}
	if selected == nil {
		return nil, domainerrors.ErrAddressNotFound
	}

	checkout.Address = selected
	checkout.Summary = srv.summaries.Calculate(ctx, checkout.Items, selected.ID, checkout.DiscountCode)
	checkout.Step = nextStep(checkout)

	return srv.saveOpen(checkout)
}

// SelectPaymentMethod sets one of the enabled payment methods offered by the checkout.
func (srv *checkoutService) SelectPaymentMethod(ctx context.Context, checkoutID uuid.UUID, method string) (*entity.Checkout, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, domainerrors.ErrPaymentMethodRequired
	}

	checkout, err := srv.loadOpen(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	if !offersMethod(checkout.PaymentMethods, method) {
		return nil, domainerrors.ErrPaymentMethodUnavailable.WithDetails(method)
	}

	checkout.PaymentMethod = method
	checkout.Step = nextStep(checkout)

	return srv.saveOpen(checkout)
}

func offersMethod(methods []*entity.PaymentMethod, id string) bool {
	for _, m := range methods {
		if m.ID == id && m.Enabled {
			return true
		}
	}

	return false
}

// ApplyDiscountCode sets or clears the discount code and reprices the checkout.
func (srv *checkoutService) ApplyDiscountCode(ctx context.Context, checkoutID uuid.UUID, code string) (*entity.Checkout, error) {
	checkout, err := srv.loadOpen(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	checkout.DiscountCode = strings.TrimSpace(code)
	if checkout.Address != nil {
		checkout.Summary = srv.summaries.Calculate(ctx, checkout.Items, checkout.Address.ID, checkout.DiscountCode)
	}

	return srv.saveOpen(checkout)
}

// PlaceOrder creates the backend order for the checkout lines. A summary that no longer
// matches the checkout inputs is recomputed first. Only one order request per checkout
// can be in flight; a concurrent caller gets ErrCheckoutInProgress.
func (srv *checkoutService) PlaceOrder(ctx context.Context, checkoutID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Checkout, error) {
	checkout, err := srv.claim(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	defer srv.release(checkoutID)

	if checkout.Address == nil {
		return nil, domainerrors.ErrAddressRequired
	}
	if checkout.PaymentMethod == "" {
		return nil, domainerrors.ErrPaymentMethodRequired
	}

	cartItemIDs := make([]int64, 0, len(checkout.CartItemIDs))
	for _, id := range checkout.CartItemIDs {
		cartItemID, err := parseCartItemID(id)
		if err != nil {
			return nil, err
		}
		cartItemIDs = append(cartItemIDs, cartItemID)
	}

	fingerprint := summaryFingerprint(checkout.Items, checkout.AddressID(), checkout.DiscountCode)
	if checkout.Summary == nil || checkout.Summary.Fingerprint != fingerprint {
		checkout.Summary = srv.summaries.Calculate(ctx, checkout.Items, checkout.AddressID(), checkout.DiscountCode)
	}

	order, err := srv.orders.CreateOrder(ctx, &service.CreateOrderRequest{
		ShippingAddressID: checkout.Address.ID,
		PaymentMethod:     checkout.PaymentMethod,
		CartItemIDs:       cartItemIDs,
		Notes:             input.Notes,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order",
			slog.String("checkout_id", checkoutID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	checkout.Order = order
	checkout.Step = entity.CheckoutStepCompleted
	checkout.UpdatedAt = srv.now().UTC()
	srv.store(checkout)

	srv.log(ctx).Info("Order placed",
		slog.String("checkout_id", checkoutID.String()),
		slog.String("order_number", order.OrderNumber),
		slog.String("total", checkout.Summary.Total.String()),
	)
	srv.events.Publish(ctx, newCartChangedEvent(ctx, true, 0))

	return checkout, nil
}

func nextStep(checkout *entity.Checkout) entity.CheckoutStep {
	switch {
	case checkout.Address == nil:
		return entity.CheckoutStepAddress
	case checkout.PaymentMethod == "":
		return entity.CheckoutStepPayment
	default:
		return entity.CheckoutStepReview
	}
}

// loadOpen returns a copy of a checkout that still accepts changes.
func (srv *checkoutService) loadOpen(ctx context.Context, checkoutID uuid.UUID) (*entity.Checkout, error) {
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	checkout, err := srv.openLocked(checkoutID)
	if err != nil {
		return nil, err
	}

	return checkout.Clone(), nil
}

// claim returns a copy of an open checkout and marks it as placing until release.
func (srv *checkoutService) claim(ctx context.Context, checkoutID uuid.UUID) (*entity.Checkout, error) {
	if err := requireLogin(ctx, srv.sessions); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	checkout, err := srv.openLocked(checkoutID)
	if err != nil {
		return nil, err
	}
	srv.placing[checkoutID] = true

	return checkout.Clone(), nil
}

func (srv *checkoutService) release(checkoutID uuid.UUID) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.placing, checkoutID)
}

func (srv *checkoutService) openLocked(checkoutID uuid.UUID) (*entity.Checkout, error) {
	srv.pruneLocked()

	checkout, ok := srv.checkouts[checkoutID]
	switch {
	case !ok:
		return nil, errors.Wrap(domainerrors.ErrCheckoutNotFound, checkoutID.String())
	case checkout.Completed():
		return nil, domainerrors.ErrCheckoutCompleted
	case srv.placing[checkoutID]:
		return nil, domainerrors.ErrCheckoutInProgress
	}

	return checkout, nil
}

func (srv *checkoutService) load(checkoutID uuid.UUID) (*entity.Checkout, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.pruneLocked()
	checkout, ok := srv.checkouts[checkoutID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrCheckoutNotFound, checkoutID.String())
	}

	return checkout.Clone(), nil
}

func (srv *checkoutService) store(checkout *entity.Checkout) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.pruneLocked()
	srv.checkouts[checkout.ID] = checkout.Clone()
}

// saveOpen writes back a changed copy unless an order was placed or started meanwhile.
func (srv *checkoutService) saveOpen(checkout *entity.Checkout) (*entity.Checkout, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, err := srv.openLocked(checkout.ID); err != nil {
		return nil, err
	}
	checkout.UpdatedAt = srv.now().UTC()
	srv.checkouts[checkout.ID] = checkout.Clone()

	return checkout, nil
}

func (srv *checkoutService) pruneLocked() {
	now := srv.now()
	for id, checkout := range srv.checkouts {
		if srv.placing[id] {
			continue
		}
		idle := now.Sub(checkout.UpdatedAt)
		if idle > abandonedCheckoutTTL || (checkout.Completed() && idle > completedCheckoutTTL) {
			delete(srv.checkouts, id)
		}
	}
}
