package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	store portsrepo.Store
}

// NewProductService creates a new product service.
func NewProductService(store portsrepo.Store) portssvc.ProductSvcFacade {
	return &productService{store: store}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) list(ctx context.Context, tenantID int64, filter portsrepo.ProductListFilter) ([]domain.Product, error) {
	products, err := s.store.Repositories().ProductRepo.ListProducts(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.Int64("tenant_id", tenantID))
		return nil, err
	}
	return products, nil
}

func (s *productService) ListProducts(ctx context.Context, tenantID int64) ([]domain.Product, error) {
	return s.list(ctx, tenantID, portsrepo.ProductListFilter{Scope: portsrepo.ProductScopeAll})
}

func (s *productService) ListProductSelectItems(ctx context.Context, tenantID int64) ([]dto.SelectItem, error) {
	products, err := s.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.ToProductSelectItems(products), nil
}

// ensureCategory checks that a category referenced by a listing exists and belongs to the tenant.
func (s *productService) ensureCategory(ctx context.Context, tenantID int64, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	if _, err := ownedCategory(ctx, s.store.Repositories().CategoryRepo, tenantID, *categoryID); err != nil {
		s.LogFailure(ctx, err, "Category lookup failed", slog.Int64("category_id", *categoryID))
		return err
	}
	return nil
}

func (s *productService) ListProductsByCategory(ctx context.Context, tenantID int64, categoryID *int64) ([]domain.Product, error) {
	if err := s.ensureCategory(ctx, tenantID, categoryID); err != nil {
		return nil, err
	}
	return s.list(ctx, tenantID, portsrepo.ProductListFilter{Scope: portsrepo.ProductScopeInCategory, CategoryID: categoryID})
}

func (s *productService) ListProductsNotInCategory(ctx context.Context, tenantID int64, categoryID *int64) ([]domain.Product, error) {
	if err := s.ensureCategory(ctx, tenantID, categoryID); err != nil {
		return nil, err
	}
	return s.list(ctx, tenantID, portsrepo.ProductListFilter{Scope: portsrepo.ProductScopeNotInCategory, CategoryID: categoryID})
}

func (s *productService) CreateProduct(ctx context.Context, tenantID int64, req dto.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}

	var created *domain.Product
	err := s.store.RunAtomic(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if req.CategoryID != nil {
			if _, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, *req.CategoryID); err != nil {
				return err
			}
		}
		for _, unitID := range []*int64{req.UnitID, req.PieceSizeUnitID} {
			if unitID == nil {
				continue
			}
			if _, err := repos.UnitRepo.FindUnitByID(ctx, *unitID); err != nil {
				return err
			}
		}
		var err error
		created, err = repos.ProductRepo.CreateProduct(ctx, domain.Product{
			TenantID:        tenantID,
			Name:            name,
			CategoryID:      req.CategoryID,
			UnitID:          req.UnitID,
			PieceSizeUnitID: req.PieceSizeUnitID,
		})
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create product", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.Int64("product_id", created.ID))
	return created, nil
}

func (s *productService) UpdateProductCategory(ctx context.Context, tenantID int64, req dto.UpdateProductCategoryRequest) (*domain.Product, error) {
	var updated *domain.Product
	err := s.store.RunAtomic(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		product, err := repos.ProductRepo.FindProductByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if product.TenantID != tenantID {
			return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, req.ProductID)
		}
		if req.CategoryID != nil {
			if _, err := ownedCategory(ctx, repos.CategoryRepo, tenantID, *req.CategoryID); err != nil {
				return err
			}
		}
		if err := repos.ProductRepo.UpdateProductCategory(ctx, tenantID, req.ProductID, req.CategoryID); err != nil {
			return err
		}
		product.CategoryID = req.CategoryID
		updated = product
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update product category", slog.Int64("product_id", req.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product category updated", slog.Int64("product_id", req.ProductID))
	return updated, nil
}
