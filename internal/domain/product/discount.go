package product

import (
	"fmt"

	"github.com/example/catalog-cart/internal/domain/errs"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	ErrDiscountOutOfRange = fmt.Errorf("%w: discount must be between 0 and 100", errs.ErrInvalidArgument)
)

// CalculateDiscount returns the product price reduced by percent, which must lie in [0, 100].
// The price itself is not validated.
func CalculateDiscount(p Product, percent decimal.Decimal) (decimal.Decimal, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero, ErrDiscountOutOfRange
	}
	return p.Price.Mul(decimal.NewFromInt(1).Sub(percent.Div(hundred))), nil
}
