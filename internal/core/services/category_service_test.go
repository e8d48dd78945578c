package services

import (
	"context"
	"testing"

	"github.com/SscSPs/household_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

const (
	tenantA int64 = 1
	tenantB int64 = 2
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	service  portssvc.CategorySvcFacade
	products portssvc.ProductSvcFacade
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.store.SeedReferenceData()
	s.service = NewCategoryService(s.store)
	s.products = NewProductService(s.store)
}

func (s *CategoryServiceTestSuite) create(tenantID int64, name string, parentID *int64) *domain.Category {
	c, err := s.service.CreateCategory(s.ctx, tenantID, dto.CreateCategoryRequest{Name: name, SuperCategoryID: parentID})
	s.Require().NoError(err)
	return c
}

func (s *CategoryServiceTestSuite) product(name string, categoryID *int64) *domain.Product {
	p, err := s.products.CreateProduct(s.ctx, tenantA, dto.CreateProductRequest{Name: name, CategoryID: categoryID})
	s.Require().NoError(err)
	return p
}

func (s *CategoryServiceTestSuite) snapshot() []domain.Category {
	cats, err := s.store.Repositories().CategoryRepo.ListCategories(s.ctx, tenantA)
	s.Require().NoError(err)
	return cats
}

func (s *CategoryServiceTestSuite) TestCreate_ParentOfAnotherTenantIsForbidden() {
	foreign := s.create(tenantB, "Theirs", nil)

	_, err := s.service.CreateCategory(s.ctx, tenantA, dto.CreateCategoryRequest{Name: "Mine", SuperCategoryID: &foreign.ID})
	s.ErrorIs(err, apperrors.ErrForbidden)

	missing := int64(999)
	_, err = s.service.CreateCategory(s.ctx, tenantA, dto.CreateCategoryRequest{Name: "Mine", SuperCategoryID: &missing})
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.service.CreateCategory(s.ctx, tenantA, dto.CreateCategoryRequest{Name: "   "})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CategoryServiceTestSuite) TestUpdate_RejectsCycles() {
	a := s.create(tenantA, "A", nil)
	b := s.create(tenantA, "B", &a.ID)
	c := s.create(tenantA, "C", &b.ID)
	before := s.snapshot()

	_, err := s.service.UpdateCategory(s.ctx, tenantA, a.ID, dto.UpdateCategoryRequest{
		Name: "A", SuperCategoryID: dto.OptionalID{Set: true, Value: &c.ID},
	})
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.service.UpdateCategory(s.ctx, tenantA, a.ID, dto.UpdateCategoryRequest{
		Name: "A", SuperCategoryID: dto.OptionalID{Set: true, Value: &a.ID},
	})
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.Equal(before, s.snapshot())
}

func (s *CategoryServiceTestSuite) TestUpdate_ParentSemantics() {
	a := s.create(tenantA, "A", nil)
	b := s.create(tenantA, "B", &a.ID)
	other := s.create(tenantA, "Other", nil)

	renamed, err := s.service.UpdateCategory(s.ctx, tenantA, b.ID, dto.UpdateCategoryRequest{Name: " Bee "})
	s.Require().NoError(err)
	s.Equal("Bee", renamed.Name)
	s.Equal(&a.ID, renamed.SuperCategoryID, "absent parent keeps the current one")

	moved, err := s.service.UpdateCategory(s.ctx, tenantA, b.ID, dto.UpdateCategoryRequest{
		Name: "Bee", SuperCategoryID: dto.OptionalID{Set: true, Value: &other.ID},
	})
	s.Require().NoError(err)
	s.Equal(&other.ID, moved.SuperCategoryID)

	root, err := s.service.UpdateCategory(s.ctx, tenantA, b.ID, dto.UpdateCategoryRequest{
		Name: "Bee", SuperCategoryID: dto.OptionalID{Set: true},
	})
	s.Require().NoError(err)
	s.Nil(root.SuperCategoryID)

	_, err = s.service.UpdateCategory(s.ctx, tenantB, b.ID, dto.UpdateCategoryRequest{Name: "x"})
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CategoryServiceTestSuite) TestDelete_RefusedWhenSubtreeHasProducts() {
	food := s.create(tenantA, "Food", nil)
	dairy := s.create(tenantA, "Dairy", &food.ID)
	cheese := s.create(tenantA, "Cheese", &dairy.ID)
	s.product("Brie", &cheese.ID)
	before := s.snapshot()

	err := s.service.DeleteCategory(s.ctx, tenantA, food.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.Contains(err.Error(), "subcategory")
	s.Equal(before, s.snapshot())

	err = s.service.DeleteCategory(s.ctx, tenantA, cheese.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.NotContains(err.Error(), "subcategory")
	s.Equal(before, s.snapshot())
}

func (s *CategoryServiceTestSuite) TestDelete_CascadesToSubcategories() {
	food := s.create(tenantA, "Food", nil)
	dairy := s.create(tenantA, "Dairy", &food.ID)
	s.create(tenantA, "Cheese", &dairy.ID)
	keep := s.create(tenantA, "Transport", nil)

	s.Require().NoError(s.service.DeleteCategory(s.ctx, tenantA, food.ID))

	cats := s.snapshot()
	s.Require().Len(cats, 1)
	s.Equal(keep.ID, cats[0].ID)

	s.ErrorIs(s.service.DeleteCategory(s.ctx, tenantA, food.ID), apperrors.ErrNotFound)
	s.ErrorIs(s.service.DeleteCategory(s.ctx, tenantB, keep.ID), apperrors.ErrForbidden)
}

func (s *CategoryServiceTestSuite) TestMerge_MovesProductsAndRemovesSource() {
	dairy := s.create(tenantA, "Dairy", nil)
	cheese := s.create(tenantA, "Cheese", &dairy.ID)
	target := s.create(tenantA, "Fridge", nil)
	milk := s.product("Milk", &dairy.ID)
	s.product("Butter", &dairy.ID)

	moved, err := s.service.MergeCategory(s.ctx, tenantA, dairy.ID, target.ID)
	s.Require().NoError(err)
	s.EqualValues(2, moved)

	inTarget, err := s.products.ListProductsByCategory(s.ctx, tenantA, &target.ID)
	s.Require().NoError(err)
	s.Len(inTarget, 2)
	s.Equal("Butter", inTarget[0].Name)
	s.Contains([]int64{inTarget[0].ID, inTarget[1].ID}, milk.ID)

	_, err = s.products.ListProductsByCategory(s.ctx, tenantA, &dairy.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.products.ListProductsByCategory(s.ctx, tenantA, &cheese.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CategoryServiceTestSuite) TestMerge_IntoOwnSubtreeIsForbidden() {
	dairy := s.create(tenantA, "Dairy", nil)
	cheese := s.create(tenantA, "Cheese", &dairy.ID)
	s.product("Milk", &dairy.ID)
	before := s.snapshot()

	_, err := s.service.MergeCategory(s.ctx, tenantA, dairy.ID, cheese.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = s.service.MergeCategory(s.ctx, tenantA, dairy.ID, dairy.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.Equal(before, s.snapshot())
	left, err := s.products.ListProductsByCategory(s.ctx, tenantA, &dairy.ID)
	s.Require().NoError(err)
	s.Len(left, 1)
}

func (s *CategoryServiceTestSuite) TestMerge_RollsBackWhenSubtreeStillHasProducts() {
	dairy := s.create(tenantA, "Dairy", nil)
	cheese := s.create(tenantA, "Cheese", &dairy.ID)
	target := s.create(tenantA, "Fridge", nil)
	s.product("Milk", &dairy.ID)
	s.product("Brie", &cheese.ID)

	_, err := s.service.MergeCategory(s.ctx, tenantA, dairy.ID, target.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	stillThere, err := s.products.ListProductsByCategory(s.ctx, tenantA, &dairy.ID)
	s.Require().NoError(err)
	s.Len(stillThere, 1, "products move back when the merge is refused")
}

func (s *CategoryServiceTestSuite) TestMoveProducts() {
	dairy := s.create(tenantA, "Dairy", nil)
	s.product("Milk", &dairy.ID)
	s.product("Yoghurt", &dairy.ID)

	moved, err := s.service.MoveProducts(s.ctx, tenantA, dairy.ID, nil)
	s.Require().NoError(err)
	s.EqualValues(2, moved)

	uncategorised, err := s.products.ListProductsByCategory(s.ctx, tenantA, nil)
	s.Require().NoError(err)
	s.Len(uncategorised, 2)

	foreign := s.create(tenantB, "Theirs", nil)
	_, err = s.service.MoveProducts(s.ctx, tenantA, dairy.ID, &foreign.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CategoryServiceTestSuite) TestTreeAndSelectItems() {
	food := s.create(tenantA, "Food", nil)
	dairy := s.create(tenantA, "Dairy", &food.ID)
	s.create(tenantA, "Cheese", &dairy.ID)
	s.create(tenantA, "Bills", nil)
	s.create(tenantB, "Hidden", nil)

	tree, err := s.service.GetCategoryTree(s.ctx, tenantA)
	s.Require().NoError(err)
	s.Require().Len(tree, 2)
	s.Equal("Food", tree[0].Name)
	s.Equal("Cheese", tree[0].Children[0].Children[0].Name)

	items, err := s.service.ListCategorySelectItems(s.ctx, tenantA)
	s.Require().NoError(err)
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	s.Equal([]string{"Bills", "Food", "Food > Dairy", "Food > Dairy > Cheese"}, labels)
}
