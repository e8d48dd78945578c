package dto

import "github.com/SscSPs/household_ledger/internal/core/domain"

// CreateProductRequest defines the data needed to create a product or service.
type CreateProductRequest struct {
	Name            string `json:"name" binding:"required,notblank"`
	CategoryID      *int64 `json:"categoryId"`
	UnitID          *int64 `json:"unitId"`
	PieceSizeUnitID *int64 `json:"pieceSizeUnitId"`
}

// MoveProductsRequest moves every product of one category to another, or out of any category when
// toCategoryId is null.
type MoveProductsRequest struct {
	FromCategoryID int64  `json:"fromCategoryId" binding:"required"`
	ToCategoryID   *int64 `json:"toCategoryId"`
}

// MoveProductsResponse reports how many products were reassigned.
type MoveProductsResponse struct {
	Moved int64 `json:"moved"`
}

// UpdateProductCategoryRequest reassigns a single product.
type UpdateProductCategoryRequest struct {
	ProductID  int64  `json:"productId" binding:"required"`
	CategoryID *int64 `json:"categoryId"`
}

// ProductCategoryParams is the query string of the by-category listings.
// A missing or zero categoryId selects uncategorised products.
type ProductCategoryParams struct {
	CategoryID int64 `form:"categoryId"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	CategoryID    *int64            `json:"categoryId,omitempty"`
	Category      *CategoryResponse `json:"category,omitempty"`
	Unit          *UnitResponse     `json:"unit,omitempty"`
	PieceSizeUnit *UnitResponse     `json:"pieceSizeUnit,omitempty"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
// The embedded category is left without a path; the transaction assembler fills it in.
func ToProductResponse(p *domain.Product) ProductResponse {
	res := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		Unit:          ToUnitResponse(p.Unit),
		PieceSizeUnit: ToUnitResponse(p.PieceSizeUnit),
	}
	if p.Category != nil {
		c := ToCategoryResponse(p.Category)
		res.Category = &c
	}
	return res
}

// ToListProductResponse converts a slice of domain.Product to ProductResponse DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ToProductSelectItems converts products to select items labelled by name.
func ToProductSelectItems(products []domain.Product) []SelectItem {
	res := make([]SelectItem, len(products))
	for i, p := range products {
		res[i] = SelectItem{ID: p.ID, Label: p.Name}
	}
	return res
}
