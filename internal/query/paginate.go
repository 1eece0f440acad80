package query

import (
	"fmt"

	"github.com/example/catalog-cart/internal/domain/errs"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Paginated is one page of a larger result set. Page is 1-based.
type Paginated[T any] struct {
	Items      []T  `json:"items"`
	TotalCount int  `json:"totalCount"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	HasMore    bool `json:"hasMore"`
}

// Paginate slices items into the requested page. A page past the end is empty.
func Paginate[T any](items []T, page, pageSize int) (Paginated[T], error) {
	if page < 1 {
		return Paginated[T]{}, fmt.Errorf("%w: page must be at least 1", errs.ErrInvalidArgument)
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return Paginated[T]{}, fmt.Errorf("%w: page size must be between 1 and %d", errs.ErrInvalidArgument, MaxPageSize)
	}

	total := len(items)
	start := total
	// Compare in page units so a huge page number cannot overflow the offset.
	if page-1 < (total+pageSize-1)/pageSize {
		start = (page - 1) * pageSize
	}
	end := min(start+pageSize, total)

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return Paginated[T]{
		Items:      pageItems,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		HasMore:    end < total,
	}, nil
}
