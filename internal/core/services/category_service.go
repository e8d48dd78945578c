package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/core/taxonomy"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// categoryService guards every mutation of the category forest.
// Checks and writes of one mutation run inside a single atomic unit.
type categoryService struct {
	BaseService
	store portsrepo.Store
}

// NewCategoryService creates a new category service.
func NewCategoryService(store portsrepo.Store) portssvc.CategorySvcFacade {
	return &categoryService{store: store}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// ownedCategory loads a category and checks it belongs to the tenant.
func ownedCategory(ctx context.Context, repo portsrepo.CategoryReader, tenantID, categoryID int64) (*domain.Category, error) {
	cat, err := repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat.TenantID != tenantID {
		return nil, fmt.Errorf("%w: category %d belongs to another user", apperrors.ErrForbidden, categoryID)
	}
	return cat, nil
}

func loadIndex(ctx context.Context, repo portsrepo.CategoryReader, tenantID int64) (*taxonomy.Index, error) {
	cats, err := repo.ListCategories(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return taxonomy.NewIndex(cats), nil
}

func (s *categoryService) GetCategoryTree(ctx context.Context, tenantID int64) ([]dto.CategoryTreeResponse, error) {
	cats, err := s.store.Repositories().CategoryRepo.ListCategories(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.Int64("tenant_id", tenantID))
		return nil, err
	}

	if orphans := taxonomy.NewIndex(cats).Orphans(); len(orphans) > 0 {
		s.GetLogger(ctx).Warn("Categories reference a missing parent and are shown as roots",
			slog.Int64("tenant_id", tenantID), slog.Any("category_ids", orphans))
	}
	return dto.ToCategoryTreeResponse(taxonomy.BuildTree(cats)), nil
}

func (s *categoryService) ListCategorySelectItems(ctx context.Context, tenantID int64) ([]dto.SelectItem, error) {
	cats, err := s.store.Repositories().CategoryRepo.ListCategories(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.Int64("tenant_id", tenantID))
		return nil, err
	}

	idx := taxonomy.NewIndex(cats)
	items := make([]dto.SelectItem, 0, len(cats))
	for _, c := range cats {
		items = append(items, dto.SelectItem{ID: c.ID, Label: idx.Path(c.ID)})
	}
	slices.SortFunc(items, func(a, b dto.SelectItem) int {
		return cmp.Or(cmp.Compare(a.Label, b.Label), cmp.Compare(a.ID, b.ID))
	})
	return items, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, tenantID int64, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	var created *domain.Category
	err := s.store.RunAtomic(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if req.SuperCategoryID != nil {
			if _, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, *req.SuperCategoryID); err != nil {
				return err
			}
		}
		var err error
		created, err = repos.CategoryRepo.CreateCategory(ctx, domain.Category{
			TenantID:        tenantID,
			Name:            name,
			SuperCategoryID: req.SuperCategoryID,
		})
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create category", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.Int64("category_id", created.ID))
	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, tenantID, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	var updated *domain.Category
	err := s.store.RunAtomic(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		target, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, categoryID)
		if err != nil {
			return err
		}

		parentID := target.SuperCategoryID
		if req.SuperCategoryID.Set {
			parentID = req.SuperCategoryID.Value
			if parentID != nil {
				if err := checkReparent(ctx, repos.CategoryRepo, tenantID, categoryID, *parentID); err != nil {
					return err
				}
			}
		}

		target.Name = name
		target.SuperCategoryID = parentID
		updated, err = repos.CategoryRepo.UpdateCategory(ctx, *target)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update category", slog.Int64("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.Int64("category_id", categoryID))
	return updated, nil
}

// checkReparent rejects a new parent that is the category itself or lies inside its subtree.
func checkReparent(ctx context.Context, repo portsrepo.CategoryReader, tenantID, categoryID, parentID int64) error {
	if parentID == categoryID {
		return fmt.Errorf("%w: category %d cannot be its own parent", apperrors.ErrForbidden, categoryID)
	}
	if _, err := ownedCategory(ctx, repo, tenantID, parentID); err != nil {
		return err
	}
	idx, err := loadIndex(ctx, repo, tenantID)
	if err != nil {
		return err
	}
	if idx.IsDescendant(categoryID, parentID) {
		return fmt.Errorf("%w: category %d is a subcategory of category %d", apperrors.ErrForbidden, parentID, categoryID)
	}
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, tenantID, categoryID int64) error {
	err := s.store.RunAtomic(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, categoryID); err != nil {
			return err
		}
		return deleteSubtree(ctx, repos, tenantID, categoryID)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete category", slog.Int64("category_id", categoryID))
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.Int64("category_id", categoryID))
	return nil
}

// deleteSubtree removes categoryID and its descendants after checking, depth first, that none of
// them holds a product. The first category found with products aborts the deletion.
func deleteSubtree(ctx context.Context, repos portsrepo.RepositoryProvider, tenantID, categoryID int64) error {
	idx, err := loadIndex(ctx, repos.CategoryRepo, tenantID)
	if err != nil {
		return err
	}

	for _, id := range idx.Subtree(categoryID) {
		n, err := repos.ProductRepo.CountProductsInCategory(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		if id == categoryID {
			return fmt.Errorf("%w: category %d has %d products", apperrors.ErrForbidden, categoryID, n)
		}
		return fmt.Errorf("%w: subcategory %d of category %d has %d products", apperrors.ErrForbidden, id, categoryID, n)
	}

	return repos.CategoryRepo.DeleteCategories(ctx, tenantID, idx.DeletionOrder(categoryID))
}

func (s *categoryService) MoveProducts(ctx context.Context, tenantID, fromCategoryID int64, toCategoryID *int64) (int64, error) {
	var moved int64
	err := s.store.RunAtomic(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, fromCategoryID); err != nil {
			return err
		}
		if toCategoryID != nil {
			if _, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, *toCategoryID); err != nil {
				return err
			}
		}
		var err error
		moved, err = repos.ProductRepo.MoveProducts(ctx, tenantID, fromCategoryID, toCategoryID)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to move products", slog.Int64("from_category_id", fromCategoryID))
		return 0, err
	}

	s.LogInfo(ctx, "Products moved", slog.Int64("from_category_id", fromCategoryID), slog.Int64("moved", moved))
	return moved, nil
}

func (s *categoryService) MergeCategory(ctx context.Context, tenantID, sourceCategoryID, targetCategoryID int64) (int64, error) {
	var moved int64
	err := s.store.RunAtomic(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, sourceCategoryID); err != nil {
			return err
		}
		if _, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, targetCategoryID); err != nil {
			return err
		}
		if sourceCategoryID == targetCategoryID {
			return fmt.Errorf("%w: category %d cannot be merged into itself", apperrors.ErrForbidden, sourceCategoryID)
		}
		idx, err := loadIndex(ctx, repos.CategoryRepo, tenantID)
		if err != nil {
			return err
		}
		if idx.IsDescendant(sourceCategoryID, targetCategoryID) {
			return fmt.Errorf("%w: category %d is a subcategory of category %d", apperrors.ErrForbidden, targetCategoryID, sourceCategoryID)
		}

		moved, err = repos.ProductRepo.MoveProducts(ctx, tenantID, sourceCategoryID, &targetCategoryID)
		if err != nil {
			return err
		}
		return deleteSubtree(ctx, repos, tenantID, sourceCategoryID)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to merge category",
			slog.Int64("source_category_id", sourceCategoryID), slog.Int64("target_category_id", targetCategoryID))
		return 0, err
	}

	s.LogInfo(ctx, "Category merged",
		slog.Int64("source_category_id", sourceCategoryID), slog.Int64("target_category_id", targetCategoryID), slog.Int64("moved", moved))
	return moved, nil
}
