package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// ProductReaderSvc defines read operations for products.
type ProductReaderSvc interface {
	ListProducts(ctx context.Context, tenantID int64) ([]domain.Product, error)
	ListProductSelectItems(ctx context.Context, tenantID int64) ([]dto.SelectItem, error)

	// ListProductsByCategory returns products of the category; a nil id selects uncategorised products.
	ListProductsByCategory(ctx context.Context, tenantID int64, categoryID *int64) ([]domain.Product, error)

	// ListProductsNotInCategory returns products assigned to any other category; a nil id selects
	// every categorised product.
	ListProductsNotInCategory(ctx context.Context, tenantID int64, categoryID *int64) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for products.
type ProductWriterSvc interface {
	CreateProduct(ctx context.Context, tenantID int64, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProductCategory(ctx context.Context, tenantID int64, req dto.UpdateProductCategoryRequest) (*domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
