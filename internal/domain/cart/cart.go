package cart

import (
	"fmt"
	"slices"

	"github.com/example/catalog-cart/internal/domain/errs"
	"github.com/example/catalog-cart/internal/domain/product"
	"github.com/shopspring/decimal"
)

// OutOfStockError is returned when adding a product that is not available.
type OutOfStockError struct {
	ProductID string
	Name      string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %s is not in stock", e.Name)
}

func (e *OutOfStockError) Unwrap() error {
	return errs.ErrInvalidState
}

// Cart is an ordered list of products with a fixed tax rate.
// It is not safe for concurrent use; callers sharing a Cart must synchronise access.
type Cart struct {
	items   []product.Product
	taxRate decimal.Decimal
}

// New creates an empty cart. The tax rate is a fraction (0.1 is 10%) and cannot change later.
func New(taxRate decimal.Decimal) *Cart {
	return &Cart{taxRate: taxRate}
}

// AddItem appends p. Duplicates are kept as separate entries.
func (c *Cart) AddItem(p product.Product) error {
	if !p.InStock {
		return &OutOfStockError{ProductID: p.ID, Name: p.Name}
	}
	c.items = append(c.items, p.Clone())
	return nil
}

// RemoveItem removes the first item with the given id. Unknown ids are ignored.
func (c *Cart) RemoveItem(productID string) {
	i := slices.IndexFunc(c.items, func(p product.Product) bool {
		return p.ID == productID
	})
	if i == -1 {
		return
	}
	c.items = slices.Delete(c.items, i, i+1)
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.Price)
	}
	return sum
}

// Total applies the tax rate to the subtotal as a whole.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Mul(decimal.NewFromInt(1).Add(c.taxRate))
}

func (c *Cart) TaxRate() decimal.Decimal {
	return c.taxRate
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a snapshot of the cart contents.
func (c *Cart) Items() []product.Product {
	items := make([]product.Product, len(c.items))
	for i, item := range c.items {
		items[i] = item.Clone()
	}
	return items
}

// Summaries projects the contents for a checkout event.
func (c *Cart) Summaries() []product.Summary {
	summaries := make([]product.Summary, len(c.items))
	for i, item := range c.items {
		summaries[i] = item.Summary()
	}
	return summaries
}
