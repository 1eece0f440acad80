package store

import (
	"sync"

	"github.com/example/catalog-cart/internal/domain/product"
)

// CatalogStore is an in-memory product catalog that preserves insertion order.
type CatalogStore struct {
	mu       sync.RWMutex
	order    []string
	products map[string]product.Product // productID -> product
}

func NewCatalogStore(products ...product.Product) *CatalogStore {
	cs := &CatalogStore{products: make(map[string]product.Product)}
	for _, p := range products {
		cs.Set(p)
	}
	return cs
}

// Set stores p, replacing any product with the same ID in place.
func (cs *CatalogStore) Set(p product.Product) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.products[p.ID]; !ok {
		cs.order = append(cs.order, p.ID)
	}
	cs.products[p.ID] = p.Clone()
}

// Get retrieves a product by id
func (cs *CatalogStore) Get(id string) (product.Product, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	p, ok := cs.products[id]
	if !ok {
		return product.Product{}, false
	}
	return p.Clone(), true
}

// List returns every product in insertion order.
func (cs *CatalogStore) List() []product.Product {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	products := make([]product.Product, 0, len(cs.order))
	for _, id := range cs.order {
		products = append(products, cs.products[id].Clone())
	}
	return products
}
