// Package analytics classifies storefront events and carries them over the wire.
package analytics

import (
	"time"

	"github.com/example/catalog-cart/internal/domain/cart"
	"github.com/example/catalog-cart/internal/domain/product"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	TypeProductView EventType = "product-view"
	TypeCheckout    EventType = "checkout"
)

// Event is implemented only by ProductView and Checkout.
type Event interface {
	EventType() EventType
	// OccurredAt is the event time in Unix milliseconds.
	OccurredAt() int64
	isEvent()
}

type ProductView struct {
	Timestamp int64  `json:"timestamp"`
	ProductID string `json:"productId"`
}

func (ProductView) EventType() EventType { return TypeProductView }
func (e ProductView) OccurredAt() int64  { return e.Timestamp }
func (ProductView) isEvent()             {}

type Checkout struct {
	Timestamp int64             `json:"timestamp"`
	CartValue decimal.Decimal   `json:"cartValue"`
	Products  []product.Summary `json:"products"`
}

func (Checkout) EventType() EventType { return TypeCheckout }
func (e Checkout) OccurredAt() int64  { return e.Timestamp }
func (Checkout) isEvent()             {}

func NewProductView(productID string, at time.Time) ProductView {
	return ProductView{Timestamp: at.UnixMilli(), ProductID: productID}
}

// NewCheckout snapshots the cart total and contents.
func NewCheckout(c *cart.Cart, at time.Time) Checkout {
	return Checkout{
		Timestamp: at.UnixMilli(),
		CartValue: c.Total(),
		Products:  c.Summaries(),
	}
}
