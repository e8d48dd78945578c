package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// ProductScope selects which products a listing returns relative to a category.
type ProductScope int

const (
	// ProductScopeAll lists every product of the tenant.
	ProductScopeAll ProductScope = iota
	// ProductScopeInCategory lists products of CategoryID, or uncategorised ones when it is nil.
	ProductScopeInCategory
	// ProductScopeNotInCategory lists products assigned to a category other than CategoryID,
	// or every categorised product when it is nil.
	ProductScopeNotInCategory
)

// ProductListFilter narrows a product listing.
type ProductListFilter struct {
	Scope      ProductScope
	CategoryID *int64
}

// ProductReader defines read operations for products.
type ProductReader interface {
	// FindProductByID retrieves a product regardless of tenant.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// FindProductsByIDs retrieves the tenant's products among the given ids, keyed by id.
	// Ids that are missing or belong to another tenant are absent from the map.
	FindProductsByIDs(ctx context.Context, tenantID int64, productIDs []int64) (map[int64]domain.Product, error)

	// ListProducts retrieves the tenant's products ordered by name.
	ListProducts(ctx context.Context, tenantID int64, filter ProductListFilter) ([]domain.Product, error)

	// CountProductsInCategory counts the tenant's products directly assigned to the category.
	CountProductsInCategory(ctx context.Context, tenantID, categoryID int64) (int64, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	// UpdateProductCategory reassigns one product; a nil categoryID uncategorises it.
	UpdateProductCategory(ctx context.Context, tenantID, productID int64, categoryID *int64) error

	// MoveProducts reassigns every product of fromCategoryID and returns how many were moved.
	MoveProducts(ctx context.Context, tenantID, fromCategoryID int64, toCategoryID *int64) (int64, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
