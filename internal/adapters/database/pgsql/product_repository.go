package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, tenant_id, name, category_id, unit_id, piece_size_unit_id`

type PgxProductRepository struct {
	db querier
}

func newPgxProductRepository(db querier) *PgxProductRepository {
	return &PgxProductRepository{db: db}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.CategoryID, &p.UnitID, &p.PieceSizeUnitID); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()
	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, mapError(err, "scan product")
		}
		products = append(products, *p)
	}
	return products, mapError(rows.Err(), "iterate products")
}

// FindProductByID retrieves a product by its ID without tenant scoping.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1;`, productID))
	if err != nil {
		return nil, mapError(err, "find product "+strconv.FormatInt(productID, 10))
	}
	return p, nil
}

// FindProductsByIDs retrieves the tenant's products among the given ids.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, tenantID int64, productIDs []int64) (map[int64]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[int64]domain.Product{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE tenant_id = $1 AND id = ANY($2);`, tenantID, productIDs)
	if err != nil {
		return nil, mapError(err, "find products")
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

// productScopeClause renders the category condition of a listing.
func productScopeClause(filter portsrepo.ProductListFilter, args []any) (string, []any) {
	switch filter.Scope {
	case portsrepo.ProductScopeInCategory:
		if filter.CategoryID == nil {
			return ` AND category_id IS NULL`, args
		}
		args = append(args, *filter.CategoryID)
		return ` AND category_id = $` + strconv.Itoa(len(args)), args
	case portsrepo.ProductScopeNotInCategory:
		if filter.CategoryID == nil {
			return ` AND category_id IS NOT NULL`, args
		}
		args = append(args, *filter.CategoryID)
		return ` AND category_id <> $` + strconv.Itoa(len(args)), args
	default:
		return "", args
	}
}

// ListProducts retrieves the tenant's products ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context, tenantID int64, filter portsrepo.ProductListFilter) ([]domain.Product, error) {
	args := []any{tenantID}
	clause, args := productScopeClause(filter, args)
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1` + clause + ` ORDER BY name, id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list products")
	}
	return collectProducts(rows)
}

// CountProductsInCategory counts products directly assigned to the category.
func (r *PgxProductRepository) CountProductsInCategory(ctx context.Context, tenantID, categoryID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE tenant_id = $1 AND category_id = $2;`, tenantID, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, mapError(err, "count products of category "+strconv.FormatInt(categoryID, 10))
	}
	return n, nil
}

// CreateProduct inserts a new product.
func (r *PgxProductRepository) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	created, err := scanProduct(r.db.QueryRow(ctx, `
		INSERT INTO products (tenant_id, name, category_id, unit_id, piece_size_unit_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns+`;`,
		product.TenantID, product.Name, product.CategoryID, product.UnitID, product.PieceSizeUnitID,
	))
	if err != nil {
		return nil, mapError(err, "create product "+product.Name)
	}
	return created, nil
}

// UpdateProductCategory reassigns one product of the tenant.
func (r *PgxProductRepository) UpdateProductCategory(ctx context.Context, tenantID, productID int64, categoryID *int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET category_id = $1 WHERE id = $2 AND tenant_id = $3;`, categoryID, productID, tenantID)
	if err != nil {
		return mapError(err, "update category of product "+strconv.FormatInt(productID, 10))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, productID)
	}
	return nil
}

// MoveProducts reassigns every product of a category in one statement.
func (r *PgxProductRepository) MoveProducts(ctx context.Context, tenantID, fromCategoryID int64, toCategoryID *int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET category_id = $1 WHERE tenant_id = $2 AND category_id = $3;`,
		toCategoryID, tenantID, fromCategoryID)
	if err != nil {
		return 0, mapError(err, "move products of category "+strconv.FormatInt(fromCategoryID, 10))
	}
	return tag.RowsAffected(), nil
}
