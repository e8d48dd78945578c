package services

import (
	"context"
	"testing"

	"github.com/SscSPs/household_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.SeedReferenceData()
	categories := NewCategoryService(store)
	products := NewProductService(store)

	dairy, err := categories.CreateCategory(ctx, tenantA, dto.CreateCategoryRequest{Name: "Dairy"})
	require.NoError(t, err)
	fruit, err := categories.CreateCategory(ctx, tenantA, dto.CreateCategoryRequest{Name: "Fruit"})
	require.NoError(t, err)
	foreign, err := categories.CreateCategory(ctx, tenantB, dto.CreateCategoryRequest{Name: "Theirs"})
	require.NoError(t, err)

	kg := int64(2)
	milk, err := products.CreateProduct(ctx, tenantA, dto.CreateProductRequest{Name: "Milk", CategoryID: &dairy.ID, UnitID: &kg})
	require.NoError(t, err)
	_, err = products.CreateProduct(ctx, tenantA, dto.CreateProductRequest{Name: "Apple", CategoryID: &fruit.ID})
	require.NoError(t, err)
	_, err = products.CreateProduct(ctx, tenantA, dto.CreateProductRequest{Name: "Haircut"})
	require.NoError(t, err)

	t.Run("create validates references", func(t *testing.T) {
		_, err := products.CreateProduct(ctx, tenantA, dto.CreateProductRequest{Name: "Bad", CategoryID: &foreign.ID})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		missingUnit := int64(404)
		_, err = products.CreateProduct(ctx, tenantA, dto.CreateProductRequest{Name: "Bad", UnitID: &missingUnit})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		_, err = products.CreateProduct(ctx, tenantA, dto.CreateProductRequest{Name: " "})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("listings", func(t *testing.T) {
		items, err := products.ListProductSelectItems(ctx, tenantA)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Apple", items[0].Label)

		uncategorised, err := products.ListProductsByCategory(ctx, tenantA, nil)
		require.NoError(t, err)
		require.Len(t, uncategorised, 1)
		assert.Equal(t, "Haircut", uncategorised[0].Name)

		notDairy, err := products.ListProductsNotInCategory(ctx, tenantA, &dairy.ID)
		require.NoError(t, err)
		require.Len(t, notDairy, 1)
		assert.Equal(t, "Apple", notDairy[0].Name)

		categorised, err := products.ListProductsNotInCategory(ctx, tenantA, nil)
		require.NoError(t, err)
		assert.Len(t, categorised, 2)

		_, err = products.ListProductsByCategory(ctx, tenantA, &foreign.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		others, err := products.ListProducts(ctx, tenantB)
		require.NoError(t, err)
		assert.Empty(t, others)
	})

	t.Run("update category", func(t *testing.T) {
		updated, err := products.UpdateProductCategory(ctx, tenantA, dto.UpdateProductCategoryRequest{ProductID: milk.ID, CategoryID: &fruit.ID})
		require.NoError(t, err)
		assert.Equal(t, &fruit.ID, updated.CategoryID)

		_, err = products.UpdateProductCategory(ctx, tenantB, dto.UpdateProductCategoryRequest{ProductID: milk.ID})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		_, err = products.UpdateProductCategory(ctx, tenantA, dto.UpdateProductCategoryRequest{ProductID: milk.ID, CategoryID: &foreign.ID})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		cleared, err := products.UpdateProductCategory(ctx, tenantA, dto.UpdateProductCategoryRequest{ProductID: milk.ID})
		require.NoError(t, err)
		assert.Nil(t, cleared.CategoryID)
	})
}
