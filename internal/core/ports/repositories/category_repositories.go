package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	// FindCategoryByID retrieves a category regardless of tenant, so callers can tell
	// a missing category from one that belongs to someone else.
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// ListCategories retrieves every category of the tenant ordered by id.
	ListCategories(ctx context.Context, tenantID int64) ([]domain.Category, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)

	// UpdateCategory overwrites name and parent of an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)

	// DeleteCategories deletes the given categories of the tenant one by one, in order.
	DeleteCategories(ctx context.Context, tenantID int64, categoryIDs []int64) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
