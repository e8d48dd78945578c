package domain

import (
	"slices"
	"time"
)

// TransactionFilter is the normalised form of a transaction query.
// A nil pointer or an empty slice means the constraint is not applied.
type TransactionFilter struct {
	AccountID      *int64
	CounterpartyID *int64
	SearchText     string
	StartDate      *time.Time
	EndDate        *time.Time
	MinAmount      *int64
	MaxAmount      *int64
	CategoryIDs    []int64
	ProductNames   []string
}

// HasDetailFilter reports whether the filter constrains individual transaction details.
func (f TransactionFilter) HasDetailFilter() bool {
	return len(f.CategoryIDs) > 0 || len(f.ProductNames) > 0
}

// MatchesDetail reports whether a single detail satisfies both the category and the product name
// constraints. Both must hold on the same detail.
func (f TransactionFilter) MatchesDetail(d TransactionDetail) bool {
	if len(f.CategoryIDs) > 0 {
		if d.Product == nil || d.Product.CategoryID == nil || !slices.Contains(f.CategoryIDs, *d.Product.CategoryID) {
			return false
		}
	}
	if len(f.ProductNames) > 0 {
		if d.Product == nil || !slices.Contains(f.ProductNames, d.Product.Name) {
			return false
		}
	}
	return true
}
