package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/pubsub"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testPlaceholder = "https://via.placeholder.com/150"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{
			FallbackShippingFee:           30000,
			FallbackExpressShippingFee:    50000,
			FallbackFreeShippingThreshold: 500000,
			PlaceholderImage:              testPlaceholder,
			OrderPageLimit:                10,
		},
		BankTransfer: &config.BankTransferConfig{
			BankName:        "Vietcombank",
			AccountNumber:   "0123456789",
			AccountName:     "STOREFRONT",
			TransferContent: "Thanh toan don hang [ORDER_NUMBER]",
		},
	}
}

// testStore is a durable store on an in-memory bucket with the real repositories on top.
type testStore struct {
	kv       repository.KVStore
	carts    repository.GuestCartRepository
	sessions repository.SessionRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	store, err := blob.Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := newDiscardLogger()

	return &testStore{
		kv:       store,
		carts:    kv.NewGuestCartRepository(store, logger),
		sessions: kv.NewSessionRepository(store, logger),
	}
}

func (s *testStore) login(t *testing.T) {
	t.Helper()

	require.NoError(t, s.sessions.SaveUser(context.Background(), &entity.User{FullName: "Lan", Email: "lan@example.com"}))
}

func (s *testStore) hasKey(t *testing.T, key string) bool {
	t.Helper()

	_, err := s.kv.Get(context.Background(), key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return false
	}
	require.NoError(t, err)

	return true
}

func newTestBus() service.EventBus {
	return pubsub.NewInProcessEventBus(nil, newDiscardLogger())
}

// eventRecorder collects the events of one type published on a bus.
type eventRecorder struct {
	mu     sync.Mutex
	events []*service.Event
}

func recordEvents(bus service.EventBus, eventType service.EventType) *eventRecorder {
	rec := &eventRecorder{}
	bus.Subscribe(eventType, func(_ context.Context, event *service.Event) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.events = append(rec.events, event)
	})

	return rec
}

func (r *eventRecorder) all() []*service.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*service.Event(nil), r.events...)
}

func testProduct(id, price int64) *entity.Product {
	return &entity.Product{
		ProductID: id,
		Name:      "Product " + decimal.NewFromInt(id).String(),
		Price:     decimal.NewFromInt(price),
		Variants: []entity.ProductVariant{
			{VariantID: id * 10, Color: "Đỏ", Size: "M"},
			{VariantID: id*10 + 1, Color: "Xanh", Size: "L"},
		},
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func userCart(items ...entity.LineItem) *entity.Cart {
	cart := &entity.Cart{Kind: entity.CartKindUser, CartID: 1, Items: items}
	if cart.Items == nil {
		cart.Items = []entity.LineItem{}
	}
	cart.Recalculate()

	return cart
}

func userLine(id string, productID, unitPrice int64, quantity int) entity.LineItem {
	item := entity.LineItem{
		ID:          id,
		ProductID:   productID,
		ProductName: "Product",
		UnitPrice:   decimal.NewFromInt(unitPrice),
	}
	item.SetQuantity(quantity)

	return item
}
