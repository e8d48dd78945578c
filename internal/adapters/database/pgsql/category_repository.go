package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
)

type PgxCategoryRepository struct {
	db querier
}

func newPgxCategoryRepository(db querier) *PgxCategoryRepository {
	return &PgxCategoryRepository{db: db}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// FindCategoryByID retrieves a category by its ID without tenant scoping.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, super_category_id FROM categories WHERE id = $1;`, categoryID,
	).Scan(&c.ID, &c.TenantID, &c.Name, &c.SuperCategoryID)
	if err != nil {
		return nil, mapError(err, "find category "+strconv.FormatInt(categoryID, 10))
	}
	return &c, nil
}

// ListCategories retrieves all categories of the tenant ordered by id.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, tenantID int64) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, super_category_id FROM categories WHERE tenant_id = $1 ORDER BY id;`, tenantID)
	if err != nil {
		return nil, mapError(err, "list categories")
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.SuperCategoryID); err != nil {
			return nil, mapError(err, "scan category")
		}
		categories = append(categories, c)
	}
	return categories, mapError(rows.Err(), "iterate categories")
}

// CreateCategory inserts a new category.
func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (tenant_id, name, super_category_id) VALUES ($1, $2, $3) RETURNING id;`,
		category.TenantID, category.Name, category.SuperCategoryID,
	).Scan(&category.ID)
	if err != nil {
		return nil, mapError(err, "create category "+category.Name)
	}
	return &category, nil
}

// UpdateCategory overwrites name and parent of a category of the tenant.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var updated domain.Category
	err := r.db.QueryRow(ctx, `
		UPDATE categories SET name = $1, super_category_id = $2
		WHERE id = $3 AND tenant_id = $4
		RETURNING id, tenant_id, name, super_category_id;`,
		category.Name, category.SuperCategoryID, category.ID, category.TenantID,
	).Scan(&updated.ID, &updated.TenantID, &updated.Name, &updated.SuperCategoryID)
	if err != nil {
		return nil, mapError(err, "update category "+strconv.FormatInt(category.ID, 10))
	}
	return &updated, nil
}

// DeleteCategories deletes the categories one statement at a time, in the given order,
// so children go before their parents under the RESTRICT foreign key.
func (r *PgxCategoryRepository) DeleteCategories(ctx context.Context, tenantID int64, categoryIDs []int64) error {
	for _, id := range categoryIDs {
		tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND tenant_id = $2;`, id, tenantID)
		if err != nil {
			return mapError(err, "delete category "+strconv.FormatInt(id, 10))
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: category %d", apperrors.ErrNotFound, id)
		}
	}
	return nil
}
