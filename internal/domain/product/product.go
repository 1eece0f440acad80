package product

import (
	"fmt"
	"slices"

	"github.com/example/catalog-cart/internal/domain/errs"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryFood        Category = "food"
	CategoryOther       Category = "other"
)

var categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryFood,
	CategoryOther,
}

// Categories returns every category in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

// ParseCategory converts s into a Category, rejecting anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", errs.ErrInvalidArgument, s)
	}
	return c, nil
}

// Product is a catalog record. ID uniqueness is the caller's responsibility.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
	InStock  bool            `json:"inStock"`
	Tags     []string        `json:"tags,omitempty"`
}

// Clone returns a copy that shares no memory with p.
func (p Product) Clone() Product {
	p.Tags = slices.Clone(p.Tags)
	return p
}

// Summary is the id/name/price projection carried by checkout events.
type Summary struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (p Product) Summary() Summary {
	return Summary{ID: p.ID, Name: p.Name, Price: p.Price}
}
