package dto

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/taxonomy"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name            string `json:"name" binding:"required,notblank"`
	SuperCategoryID *int64 `json:"superCategoryId"` // Optional, nil creates a root
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// An absent superCategoryId keeps the current parent, an explicit null moves the category to the root.
type UpdateCategoryRequest struct {
	Name            string     `json:"name" binding:"required,notblank"`
	SuperCategoryID OptionalID `json:"superCategoryId" swaggertype:"integer"`
}

// MergeCategoryRequest names the category that absorbs the products of the merged one.
type MergeCategoryRequest struct {
	TargetCategoryID int64 `json:"targetCategoryId" binding:"required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	SuperCategoryID *int64  `json:"superCategoryId,omitempty"`
	CategoryPath    *string `json:"categoryPath,omitempty"`
}

// CategoryTreeResponse is a category with its subcategories nested.
type CategoryTreeResponse struct {
	ID              int64                  `json:"id"`
	Name            string                 `json:"name"`
	SuperCategoryID *int64                 `json:"superCategoryId,omitempty"`
	Children        []CategoryTreeResponse `json:"children"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		SuperCategoryID: c.SuperCategoryID,
	}
}

// ToCategoryTreeResponse converts a forest built by taxonomy.BuildTree.
func ToCategoryTreeResponse(roots []*taxonomy.TreeNode) []CategoryTreeResponse {
	type frame struct {
		node *taxonomy.TreeNode
		out  *CategoryTreeResponse
	}
	res := make([]CategoryTreeResponse, len(roots))
	var stack []frame
	for i, r := range roots {
		stack = append(stack, frame{node: r, out: &res[i]})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.out.ID = f.node.ID
		f.out.Name = f.node.Name
		f.out.SuperCategoryID = f.node.SuperCategoryID
		f.out.Children = make([]CategoryTreeResponse, len(f.node.Children))
		for i, child := range f.node.Children {
			stack = append(stack, frame{node: child, out: &f.out.Children[i]})
		}
	}
	return res
}
