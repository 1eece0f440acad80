package query

import (
	"github.com/example/catalog-cart/internal/domain/product"
	"github.com/shopspring/decimal"
)

type ProductReadModel struct {
	product.Product
	FormattedPrice string `json:"formattedPrice"`
}

type CartItemReadModel struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	FormattedPrice string          `json:"formattedPrice"`
}

type CartReadModel struct {
	SessionID      string              `json:"sessionId"`
	Items          []CartItemReadModel `json:"items"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	TaxRate        decimal.Decimal     `json:"taxRate"`
	Total          decimal.Decimal     `json:"total"`
	FormattedTotal string              `json:"formattedTotal"`
}

type DiscountReadModel struct {
	ProductID         string          `json:"productId"`
	Percent           decimal.Decimal `json:"percent"`
	Price             decimal.Decimal `json:"price"`
	DiscountedPrice   decimal.Decimal `json:"discountedPrice"`
	FormattedDiscount string          `json:"formattedDiscountedPrice"`
}
