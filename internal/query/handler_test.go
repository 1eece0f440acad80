package query

import (
	"math"
	"testing"

	"github.com/example/catalog-cart/internal/domain/cart"
	"github.com/example/catalog-cart/internal/domain/errs"
	"github.com/example/catalog-cart/internal/domain/product"
	"github.com/example/catalog-cart/internal/infrastructure/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueryHandler() (*Handler, *store.CartStore) {
	catalog := store.NewCatalogStore(product.SampleCatalog()...)
	carts := store.NewCartStore(decimal.RequireFromString("0.1"))
	return NewHandler(catalog, carts, "USD"), carts
}

// ============================================
// Pagination Tests
// ============================================

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name    string
		page    int
		size    int
		want    []int
		hasMore bool
	}{
		{"first page", 1, 2, []int{1, 2}, true},
		{"middle page", 2, 2, []int{3, 4}, true},
		{"last partial page", 3, 2, []int{5}, false},
		{"exact fit", 1, 5, []int{1, 2, 3, 4, 5}, false},
		{"past the end", 4, 2, []int{}, false},
		{"huge page number", math.MaxInt / 10, 20, []int{}, false},
		{"max page number", math.MaxInt, MaxPageSize, []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Paginate(items, tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Items)
			assert.Equal(t, 5, got.TotalCount)
			assert.Equal(t, tt.page, got.Page)
			assert.Equal(t, tt.size, got.PageSize)
			assert.Equal(t, tt.hasMore, got.HasMore)
		})
	}
}

func TestPaginate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
	}{
		{"zero page", 0, 10},
		{"negative page", -1, 10},
		{"zero size", 1, 0},
		{"size too large", 1, MaxPageSize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Paginate([]int{1}, tt.page, tt.size)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		})
	}
}

func TestPaginate_CopiesItems(t *testing.T) {
	items := []int{1, 2, 3}

	got, err := Paginate(items, 1, 2)
	require.NoError(t, err)
	got.Items[0] = 99

	assert.Equal(t, 1, items[0])
}

// ============================================
// Product Query Tests
// ============================================

func TestHandler_ListProducts(t *testing.T) {
	handler, _ := newTestQueryHandler()

	page, err := handler.ListProducts(product.Filter{}, 1, DefaultPageSize)

	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Laptop", page.Items[0].Name)
	assert.Equal(t, "$1,299.99", page.Items[0].FormattedPrice)
	assert.Equal(t, "$19.99", page.Items[1].FormattedPrice)
}

func TestHandler_ListProducts_FilteredAndPaged(t *testing.T) {
	handler, _ := newTestQueryHandler()

	page, err := handler.ListProducts(product.Filter{ShowOutOfStock: true}, 2, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "3", page.Items[0].ID)
	assert.False(t, page.HasMore)
}

func TestHandler_GetProduct(t *testing.T) {
	handler, _ := newTestQueryHandler()

	p, ok := handler.GetProduct("2")
	require.True(t, ok)
	assert.Equal(t, "T-Shirt", p.Name)

	_, ok = handler.GetProduct("missing")
	assert.False(t, ok)
}

func TestHandler_Discount(t *testing.T) {
	handler, _ := newTestQueryHandler()

	quote, err := handler.Discount("1", decimal.NewFromInt(10))

	require.NoError(t, err)
	assert.True(t, quote.DiscountedPrice.Equal(decimal.RequireFromString("1169.991")))
	assert.Equal(t, "$1,169.99", quote.FormattedDiscount)
}

func TestHandler_Discount_Errors(t *testing.T) {
	handler, _ := newTestQueryHandler()

	_, err := handler.Discount("missing", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = handler.Discount("1", decimal.NewFromInt(101))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

// ============================================
// Cart Query Tests
// ============================================

func TestHandler_GetCart_Empty(t *testing.T) {
	handler, carts := newTestQueryHandler()

	model := handler.GetCart("session-1")

	assert.Equal(t, "session-1", model.SessionID)
	assert.Empty(t, model.Items)
	assert.True(t, model.Total.IsZero())
	assert.Equal(t, "$0.00", model.FormattedTotal)
	assert.Equal(t, 0, carts.Sessions())
}

func TestHandler_GetCart_WithItems(t *testing.T) {
	handler, carts := newTestQueryHandler()
	err := carts.Do("session-1", func(c *cart.Cart) error {
		if err := c.AddItem(product.Product{ID: "a", Name: "A", Price: decimal.NewFromInt(10), InStock: true}); err != nil {
			return err
		}
		return c.AddItem(product.Product{ID: "b", Name: "B", Price: decimal.NewFromInt(20), InStock: true})
	})
	require.NoError(t, err)

	model := handler.GetCart("session-1")

	require.Len(t, model.Items, 2)
	assert.Equal(t, "$10.00", model.Items[0].FormattedPrice)
	assert.True(t, model.Subtotal.Equal(decimal.NewFromInt(30)))
	assert.True(t, model.TaxRate.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, model.Total.Equal(decimal.NewFromInt(33)))
	assert.Equal(t, "$33.00", model.FormattedTotal)
}
