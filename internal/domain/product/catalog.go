package product

import "github.com/shopspring/decimal"

// Filter selects products for a listing. An empty Category matches every category.
type Filter struct {
	Category       Category
	ShowOutOfStock bool
}

func (f Filter) Matches(p Product) bool {
	if !f.ShowOutOfStock && !p.InStock {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}

// Apply returns the matching products in their original order.
func (f Filter) Apply(products []Product) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// SampleCatalog returns the demo products shown on the product list page.
func SampleCatalog() []Product {
	return []Product{
		{
			ID:       "1",
			Name:     "Laptop",
			Price:    decimal.RequireFromString("1299.99"),
			Category: CategoryElectronics,
			InStock:  true,
			Tags:     []string{"computer", "work", "high-performance"},
		},
		{
			ID:       "2",
			Name:     "T-Shirt",
			Price:    decimal.RequireFromString("19.99"),
			Category: CategoryClothing,
			InStock:  true,
		},
		{
			ID:       "3",
			Name:     "JavaScript: The Good Parts",
			Price:    decimal.RequireFromString("29.99"),
			Category: CategoryBooks,
			InStock:  false,
		},
	}
}
