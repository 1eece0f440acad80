package store

import (
	"sync"

	"github.com/example/catalog-cart/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// CartStore keeps one cart per session. Carts are not safe for concurrent use,
// so every access goes through the store's lock.
type CartStore struct {
	mu      sync.Mutex
	carts   map[string]*cart.Cart // sessionID -> cart
	taxRate decimal.Decimal
}

func NewCartStore(taxRate decimal.Decimal) *CartStore {
	return &CartStore{
		carts:   make(map[string]*cart.Cart),
		taxRate: taxRate,
	}
}

// Do runs fn with the session's cart, creating an empty cart on first use.
func (cs *CartStore) Do(sessionID string, fn func(c *cart.Cart) error) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	c, ok := cs.carts[sessionID]
	if !ok {
		c = cart.New(cs.taxRate)
		cs.carts[sessionID] = c
	}
	return fn(c)
}

// View runs fn with the session's cart without creating one. A session
// without a cart sees an empty cart.
func (cs *CartStore) View(sessionID string, fn func(c *cart.Cart)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	c, ok := cs.carts[sessionID]
	if !ok {
		c = cart.New(cs.taxRate)
	}
	fn(c)
}

// Sessions returns the number of sessions holding a cart.
func (cs *CartStore) Sessions() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.carts)
}
