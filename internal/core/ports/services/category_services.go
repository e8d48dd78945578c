package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// CategoryReaderSvc defines read operations for categories.
type CategoryReaderSvc interface {
	// GetCategoryTree returns the tenant's category forest.
	GetCategoryTree(ctx context.Context, tenantID int64) ([]dto.CategoryTreeResponse, error)

	// ListCategorySelectItems returns every category labelled with its breadcrumb path, sorted by label.
	ListCategorySelectItems(ctx context.Context, tenantID int64) ([]dto.SelectItem, error)
}

// CategoryWriterSvc defines the guarded mutations of the category forest.
// Every mutation returns apperrors.ErrNotFound for missing categories and apperrors.ErrForbidden
// for categories of another tenant or for changes that would break the hierarchy.
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, tenantID int64, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, tenantID, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category and all of its subcategories, provided none of them holds products.
	DeleteCategory(ctx context.Context, tenantID, categoryID int64) error

	// MoveProducts reassigns every product of one category to another (nil uncategorises them).
	MoveProducts(ctx context.Context, tenantID, fromCategoryID int64, toCategoryID *int64) (int64, error)

	// MergeCategory moves the products of source to target and deletes source as one atomic unit.
	MergeCategory(ctx context.Context, tenantID, sourceCategoryID, targetCategoryID int64) (int64, error)
}

// CategorySvcFacade combines all category-related service interfaces.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
