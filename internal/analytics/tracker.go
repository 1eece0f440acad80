package analytics

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Tracker writes one log line per event.
type Tracker struct {
	logger *zap.Logger
}

func NewTracker(logger *zap.Logger) *Tracker {
	return &Tracker{logger: logger}
}

// Track logs e. Passing a type outside the Event union is a programming error and panics.
func (t *Tracker) Track(e Event) {
	switch e := e.(type) {
	case ProductView:
		t.productViewed(e)
	case *ProductView:
		t.productViewed(*e)
	case Checkout:
		t.checkoutCompleted(e)
	case *Checkout:
		t.checkoutCompleted(*e)
	default:
		panic(fmt.Sprintf("analytics: unhandled event type %T", e))
	}
}

func (t *Tracker) productViewed(e ProductView) {
	t.logger.Info(fmt.Sprintf("Product viewed: %s", e.ProductID),
		zap.String("type", string(TypeProductView)),
		zap.String("product_id", e.ProductID),
		zap.Int64("timestamp", e.Timestamp),
	)
}

func (t *Tracker) checkoutCompleted(e Checkout) {
	t.logger.Info(fmt.Sprintf("Checkout completed: %s", e.CartValue),
		zap.String("type", string(TypeCheckout)),
		zap.String("cart_value", e.CartValue.String()),
		zap.Int("products", len(e.Products)),
		zap.Int64("timestamp", e.Timestamp),
	)
}

// HandleMessage decodes an envelope received from the broker and tracks it.
func (t *Tracker) HandleMessage(ctx context.Context, key, value []byte) error {
	env, err := UnmarshalEnvelope(value)
	if err != nil {
		return err
	}
	e, err := env.Decode()
	if err != nil {
		return err
	}
	t.logger.Debug("Received event", zap.String("event_id", env.EventID), zap.String("type", string(env.Type)))
	t.Track(e)
	return nil
}
