package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/catalog-cart/internal/analytics"
	"github.com/example/catalog-cart/internal/domain/cart"
	"github.com/example/catalog-cart/internal/domain/errs"
	"github.com/example/catalog-cart/internal/infrastructure/store"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCart       = fmt.Errorf("%w: cart is empty", errs.ErrInvalidState)
)

// EventPublisher forwards analytics events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, e analytics.Event) (string, error)
}

type Handler struct {
	catalog   *store.CatalogStore
	carts     *store.CartStore
	tracker   *analytics.Tracker
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandler wires the write side. publisher may be nil, in which case events are only logged.
func NewHandler(
	catalog *store.CatalogStore,
	carts *store.CartStore,
	tracker *analytics.Tracker,
	publisher EventPublisher,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		catalog:   catalog,
		carts:     carts,
		tracker:   tracker,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// AddToCart looks the product up in the catalog and adds it to the session's cart.
func (h *Handler) AddToCart(ctx context.Context, cmd AddToCart) error {
	p, ok := h.catalog.Get(cmd.ProductID)
	if !ok {
		return ErrProductNotFound
	}
	return h.carts.Do(cmd.SessionID, func(c *cart.Cart) error {
		return c.AddItem(p)
	})
}

func (h *Handler) RemoveFromCart(ctx context.Context, cmd RemoveFromCart) error {
	return h.carts.Do(cmd.SessionID, func(c *cart.Cart) error {
		c.RemoveItem(cmd.ProductID)
		return nil
	})
}

// Checkout records a checkout event for the session's current cart. The cart is left as is.
func (h *Handler) Checkout(ctx context.Context, cmd Checkout) (*analytics.Checkout, error) {
	var event analytics.Checkout
	err := h.carts.Do(cmd.SessionID, func(c *cart.Cart) error {
		if c.Len() == 0 {
			return ErrEmptyCart
		}
		event = analytics.NewCheckout(c, h.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.emit(ctx, event)
	return &event, nil
}

func (h *Handler) RecordProductView(ctx context.Context, cmd RecordProductView) {
	h.emit(ctx, analytics.NewProductView(cmd.ProductID, h.now()))
}

// emit tracks e locally and publishes it when a broker is configured.
// Publish failures are logged and never surface to the caller.
func (h *Handler) emit(ctx context.Context, e analytics.Event) {
	h.tracker.Track(e)
	if h.publisher == nil {
		return
	}
	if _, err := h.publisher.Publish(ctx, e); err != nil {
		h.logger.Warn("Failed to publish analytics event",
			zap.String("type", string(e.EventType())),
			zap.Error(err),
		)
	}
}
