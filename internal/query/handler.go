package query

import (
	"errors"

	"github.com/example/catalog-cart/internal/domain/cart"
	"github.com/example/catalog-cart/internal/domain/product"
	"github.com/example/catalog-cart/internal/infrastructure/store"
	"github.com/example/catalog-cart/internal/pricing"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Handler struct {
	catalog  *store.CatalogStore
	carts    *store.CartStore
	currency string
}

func NewHandler(catalog *store.CatalogStore, carts *store.CartStore, currency string) *Handler {
	return &Handler{catalog: catalog, carts: carts, currency: currency}
}

// Products
func (h *Handler) ListProducts(filter product.Filter, page, pageSize int) (Paginated[ProductReadModel], error) {
	matched := filter.Apply(h.catalog.List())
	models := make([]ProductReadModel, 0, len(matched))
	for _, p := range matched {
		models = append(models, h.productReadModel(p))
	}
	return Paginate(models, page, pageSize)
}

func (h *Handler) GetProduct(id string) (*ProductReadModel, bool) {
	p, ok := h.catalog.Get(id)
	if !ok {
		return nil, false
	}
	model := h.productReadModel(p)
	return &model, true
}

// Discount quotes a product's price after a percentage discount.
func (h *Handler) Discount(id string, percent decimal.Decimal) (*DiscountReadModel, error) {
	p, ok := h.catalog.Get(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	discounted, err := product.CalculateDiscount(p, percent)
	if err != nil {
		return nil, err
	}
	return &DiscountReadModel{
		ProductID:         p.ID,
		Percent:           percent,
		Price:             p.Price,
		DiscountedPrice:   discounted,
		FormattedDiscount: pricing.FormatPriceIn(discounted, h.currency),
	}, nil
}

// Cart
func (h *Handler) GetCart(sessionID string) *CartReadModel {
	model := &CartReadModel{SessionID: sessionID}
	h.carts.View(sessionID, func(c *cart.Cart) {
		items := c.Items()
		model.Items = make([]CartItemReadModel, 0, len(items))
		for _, item := range items {
			model.Items = append(model.Items, CartItemReadModel{
				ID:             item.ID,
				Name:           item.Name,
				Price:          item.Price,
				FormattedPrice: pricing.FormatPriceIn(item.Price, h.currency),
			})
		}
		model.Subtotal = c.Subtotal()
		model.TaxRate = c.TaxRate()
		model.Total = c.Total()
	})
	model.FormattedTotal = pricing.FormatPriceIn(model.Total, h.currency)
	return model
}

func (h *Handler) productReadModel(p product.Product) ProductReadModel {
	return ProductReadModel{
		Product:        p,
		FormattedPrice: pricing.FormatPriceIn(p.Price, h.currency),
	}
}
