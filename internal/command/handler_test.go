package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/catalog-cart/internal/analytics"
	"github.com/example/catalog-cart/internal/domain/cart"
	"github.com/example/catalog-cart/internal/domain/errs"
	"github.com/example/catalog-cart/internal/domain/product"
	"github.com/example/catalog-cart/internal/infrastructure/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockPublisher struct {
	events []analytics.Event
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, e analytics.Event) (string, error) {
	m.events = append(m.events, e)
	if m.err != nil {
		return "", m.err
	}
	return "evt-1", nil
}

type testHarness struct {
	handler   *Handler
	carts     *store.CartStore
	publisher *mockPublisher
	logs      *observer.ObservedLogs
}

func newTestCommandHandler() *testHarness {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	catalog := store.NewCatalogStore(product.SampleCatalog()...)
	carts := store.NewCartStore(decimal.RequireFromString("0.1"))
	publisher := &mockPublisher{}

	handler := NewHandler(catalog, carts, analytics.NewTracker(logger), publisher, logger)
	handler.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return &testHarness{handler: handler, carts: carts, publisher: publisher, logs: logs}
}

func cartIDs(carts *store.CartStore, sessionID string) []string {
	ids := []string{}
	carts.View(sessionID, func(c *cart.Cart) {
		for _, item := range c.Items() {
			ids = append(ids, item.ID)
		}
	})
	return ids
}

// ============================================
// AddToCart Tests
// ============================================

func TestHandler_AddToCart_Success(t *testing.T) {
	h := newTestCommandHandler()
	ctx := context.Background()

	err := h.handler.AddToCart(ctx, AddToCart{SessionID: "s1", ProductID: "1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, cartIDs(h.carts, "s1"))
	assert.Empty(t, cartIDs(h.carts, "s2"))
}

func TestHandler_AddToCart_UnknownProduct(t *testing.T) {
	h := newTestCommandHandler()

	err := h.handler.AddToCart(context.Background(), AddToCart{SessionID: "s1", ProductID: "missing"})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestHandler_AddToCart_OutOfStock(t *testing.T) {
	h := newTestCommandHandler()

	err := h.handler.AddToCart(context.Background(), AddToCart{SessionID: "s1", ProductID: "3"})

	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Contains(t, err.Error(), "is not in stock")
	assert.Empty(t, cartIDs(h.carts, "s1"))
}

// ============================================
// RemoveFromCart Tests
// ============================================

func TestHandler_RemoveFromCart(t *testing.T) {
	h := newTestCommandHandler()
	ctx := context.Background()
	require.NoError(t, h.handler.AddToCart(ctx, AddToCart{SessionID: "s1", ProductID: "1"}))
	require.NoError(t, h.handler.AddToCart(ctx, AddToCart{SessionID: "s1", ProductID: "2"}))

	require.NoError(t, h.handler.RemoveFromCart(ctx, RemoveFromCart{SessionID: "s1", ProductID: "1"}))
	require.NoError(t, h.handler.RemoveFromCart(ctx, RemoveFromCart{SessionID: "s1", ProductID: "missing"}))

	assert.Equal(t, []string{"2"}, cartIDs(h.carts, "s1"))
}

// ============================================
// Checkout Tests
// ============================================

func TestHandler_Checkout(t *testing.T) {
	h := newTestCommandHandler()
	ctx := context.Background()
	require.NoError(t, h.handler.AddToCart(ctx, AddToCart{SessionID: "s1", ProductID: "2"}))

	event, err := h.handler.Checkout(ctx, Checkout{SessionID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), event.Timestamp)
	assert.True(t, event.CartValue.Equal(decimal.RequireFromString("21.989")))
	require.Len(t, event.Products, 1)
	assert.Equal(t, "T-Shirt", event.Products[0].Name)

	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, analytics.TypeCheckout, h.publisher.events[0].EventType())
	require.Equal(t, 1, h.logs.Len())
	assert.Equal(t, "Checkout completed: 21.989", h.logs.All()[0].Message)

	// carts are never finalised
	assert.Equal(t, []string{"2"}, cartIDs(h.carts, "s1"))
}

func TestHandler_Checkout_EmptyCart(t *testing.T) {
	h := newTestCommandHandler()

	event, err := h.handler.Checkout(context.Background(), Checkout{SessionID: "s1"})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Nil(t, event)
	assert.Empty(t, h.publisher.events)
	assert.Equal(t, 0, h.logs.Len())
}

func TestHandler_Checkout_PublishFailureIsLogged(t *testing.T) {
	h := newTestCommandHandler()
	h.publisher.err = errors.New("broker down")
	ctx := context.Background()
	require.NoError(t, h.handler.AddToCart(ctx, AddToCart{SessionID: "s1", ProductID: "1"}))

	_, err := h.handler.Checkout(ctx, Checkout{SessionID: "s1"})

	require.NoError(t, err)
	warnings := h.logs.FilterMessage("Failed to publish analytics event").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "checkout", warnings[0].ContextMap()["type"])
}

// ============================================
// RecordProductView Tests
// ============================================

func TestHandler_RecordProductView(t *testing.T) {
	h := newTestCommandHandler()

	h.handler.RecordProductView(context.Background(), RecordProductView{ProductID: "42"})

	require.Equal(t, 1, h.logs.Len())
	assert.Equal(t, "Product viewed: 42", h.logs.All()[0].Message)
	require.Len(t, h.publisher.events, 1)
	view := h.publisher.events[0].(analytics.ProductView)
	assert.Equal(t, "42", view.ProductID)
	assert.Equal(t, int64(1700000000000), view.Timestamp)
}

func TestHandler_WithoutPublisher(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	handler := NewHandler(
		store.NewCatalogStore(product.SampleCatalog()...),
		store.NewCartStore(decimal.Zero),
		analytics.NewTracker(logger),
		nil,
		logger,
	)

	handler.RecordProductView(context.Background(), RecordProductView{ProductID: "1"})

	assert.Equal(t, 1, logs.Len())
}
