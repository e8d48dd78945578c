package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
)

// fkViolation mirrors the AppError the Postgres adapter returns for a foreign key violation.
func fkViolation(format string, args ...any) error {
	return apperrors.NewAppError(500, "foreign key violation", fmt.Errorf(format, args...))
}

// --- currencies & units ---

type currencyRepository struct{ v *view }

var _ portsrepo.CurrencyRepositoryFacade = (*currencyRepository)(nil)

func (r *currencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	var out *domain.Currency
	err := r.v.read(func(d *dataset) error {
		c, ok := d.currencies[id]
		if !ok {
			return fmt.Errorf("%w: currency %d", apperrors.ErrNotFound, id)
		}
		out = &c
		return nil
	})
	return out, err
}

func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	var out *domain.Currency
	err := r.v.read(func(d *dataset) error {
		for _, c := range d.currencies {
			if strings.EqualFold(c.Code, code) {
				out = &c
				return nil
			}
		}
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
	})
	return out, err
}

func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var out []domain.Currency
	err := r.v.read(func(d *dataset) error {
		out = slices.SortedFunc(maps.Values(d.currencies), func(a, b domain.Currency) int {
			return cmp.Compare(a.Code, b.Code)
		})
		return nil
	})
	return out, err
}

type unitRepository struct{ v *view }

var _ portsrepo.UnitReader = (*unitRepository)(nil)

func (r *unitRepository) FindUnitByID(ctx context.Context, id int64) (*domain.MeasureUnit, error) {
	var out *domain.MeasureUnit
	err := r.v.read(func(d *dataset) error {
		u, ok := d.units[id]
		if !ok {
			return fmt.Errorf("%w: unit %d", apperrors.ErrNotFound, id)
		}
		out = &u
		return nil
	})
	return out, err
}

func (r *unitRepository) ListUnits(ctx context.Context) ([]domain.MeasureUnit, error) {
	var out []domain.MeasureUnit
	err := r.v.read(func(d *dataset) error {
		out = slices.SortedFunc(maps.Values(d.units), func(a, b domain.MeasureUnit) int {
			return cmp.Compare(a.ID, b.ID)
		})
		return nil
	})
	return out, err
}

// --- accounts ---

type accountRepository struct{ v *view }

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) FindAccountByID(ctx context.Context, tenantID, accountID int64) (*domain.Account, error) {
	var out *domain.Account
	err := r.v.read(func(d *dataset) error {
		a, ok := d.accounts[accountID]
		if !ok || a.TenantID != tenantID {
			return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		a.Currency = d.currencies[a.CurrencyID]
		out = &a
		return nil
	})
	return out, err
}

func (r *accountRepository) ListAccounts(ctx context.Context, tenantID int64, accountType *domain.AccountType) ([]domain.Account, error) {
	out := []domain.Account{}
	err := r.v.read(func(d *dataset) error {
		for _, a := range d.accounts {
			if a.TenantID != tenantID || (accountType != nil && a.Type != *accountType) {
				continue
			}
			a.Currency = d.currencies[a.CurrencyID]
			out = append(out, a)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Account) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, err
}

func (r *accountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var out *domain.Account
	err := r.v.write(func(d *dataset) error {
		cur, ok := d.currencies[account.CurrencyID]
		if !ok {
			return fkViolation("account currency %d does not exist", account.CurrencyID)
		}
		account.ID = d.nextID("accounts")
		account.Description = cloneString(account.Description)
		account.Currency = domain.Currency{}
		d.accounts[account.ID] = account
		account.Currency = cur
		out = &account
		return nil
	})
	return out, err
}

// --- categories ---

type categoryRepository struct{ v *view }

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	var out *domain.Category
	err := r.v.read(func(d *dataset) error {
		c, ok := d.categories[categoryID]
		if !ok {
			return fmt.Errorf("%w: category %d", apperrors.ErrNotFound, categoryID)
		}
		out = &c
		return nil
	})
	return out, err
}

func (r *categoryRepository) ListCategories(ctx context.Context, tenantID int64) ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.v.read(func(d *dataset) error {
		for _, c := range d.categories {
			if c.TenantID == tenantID {
				out = append(out, c)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Category) int { return cmp.Compare(a.ID, b.ID) })
	return out, err
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var out *domain.Category
	err := r.v.write(func(d *dataset) error {
		if category.SuperCategoryID != nil {
			if _, ok := d.categories[*category.SuperCategoryID]; !ok {
				return fkViolation("super category %d does not exist", *category.SuperCategoryID)
			}
		}
		category.ID = d.nextID("categories")
		category.SuperCategoryID = cloneID(category.SuperCategoryID)
		d.categories[category.ID] = category
		out = &category
		return nil
	})
	return out, err
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var out *domain.Category
	err := r.v.write(func(d *dataset) error {
		existing, ok := d.categories[category.ID]
		if !ok || existing.TenantID != category.TenantID {
			return fmt.Errorf("%w: category %d", apperrors.ErrNotFound, category.ID)
		}
		if category.SuperCategoryID != nil {
			if _, ok := d.categories[*category.SuperCategoryID]; !ok {
				return fkViolation("super category %d does not exist", *category.SuperCategoryID)
			}
		}
		existing.Name = category.Name
		existing.SuperCategoryID = cloneID(category.SuperCategoryID)
		d.categories[existing.ID] = existing
		out = &existing
		return nil
	})
	return out, err
}

func (r *categoryRepository) DeleteCategories(ctx context.Context, tenantID int64, categoryIDs []int64) error {
	return r.v.write(func(d *dataset) error {
		for _, id := range categoryIDs {
			c, ok := d.categories[id]
			if !ok || c.TenantID != tenantID {
				return fmt.Errorf("%w: category %d", apperrors.ErrNotFound, id)
			}
			for _, other := range d.categories {
				if other.SuperCategoryID != nil && *other.SuperCategoryID == id {
					return fkViolation("category %d still has subcategory %d", id, other.ID)
				}
			}
			for _, p := range d.products {
				if p.CategoryID != nil && *p.CategoryID == id {
					return fkViolation("category %d still has product %d", id, p.ID)
				}
			}
			delete(d.categories, id)
		}
		return nil
	})
}

// --- products ---

type productRepository struct{ v *view }

var _ portsrepo.ProductRepositoryFacade = (*productRepository)(nil)

func (r *productRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	var out *domain.Product
	err := r.v.read(func(d *dataset) error {
		p, ok := d.products[productID]
		if !ok {
			return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, productID)
		}
		out = &p
		return nil
	})
	return out, err
}

func (r *productRepository) FindProductsByIDs(ctx context.Context, tenantID int64, productIDs []int64) (map[int64]domain.Product, error) {
	out := make(map[int64]domain.Product, len(productIDs))
	err := r.v.read(func(d *dataset) error {
		for _, id := range productIDs {
			if p, ok := d.products[id]; ok && p.TenantID == tenantID {
				out[id] = p
			}
		}
		return nil
	})
	return out, err
}

func (r *productRepository) ListProducts(ctx context.Context, tenantID int64, filter portsrepo.ProductListFilter) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.v.read(func(d *dataset) error {
		for _, p := range d.products {
			if p.TenantID == tenantID && productInScope(p, filter) {
				out = append(out, p)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Product) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, err
}

func productInScope(p domain.Product, filter portsrepo.ProductListFilter) bool {
	switch filter.Scope {
	case portsrepo.ProductScopeInCategory:
		if filter.CategoryID == nil {
			return p.CategoryID == nil
		}
		return p.CategoryID != nil && *p.CategoryID == *filter.CategoryID
	case portsrepo.ProductScopeNotInCategory:
		if filter.CategoryID == nil {
			return p.CategoryID != nil
		}
		return p.CategoryID != nil && *p.CategoryID != *filter.CategoryID
	default:
		return true
	}
}

func (r *productRepository) CountProductsInCategory(ctx context.Context, tenantID, categoryID int64) (int64, error) {
	var n int64
	err := r.v.read(func(d *dataset) error {
		for _, p := range d.products {
			if p.TenantID == tenantID && p.CategoryID != nil && *p.CategoryID == categoryID {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var out *domain.Product
	err := r.v.write(func(d *dataset) error {
		if product.CategoryID != nil {
			if _, ok := d.categories[*product.CategoryID]; !ok {
				return fkViolation("product category %d does not exist", *product.CategoryID)
			}
		}
		for _, unitID := range []*int64{product.UnitID, product.PieceSizeUnitID} {
			if unitID == nil {
				continue
			}
			if _, ok := d.units[*unitID]; !ok {
				return fkViolation("unit %d does not exist", *unitID)
			}
		}
		product.ID = d.nextID("products")
		product.CategoryID = cloneID(product.CategoryID)
		product.UnitID = cloneID(product.UnitID)
		product.PieceSizeUnitID = cloneID(product.PieceSizeUnitID)
		product.Category, product.Unit, product.PieceSizeUnit = nil, nil, nil
		d.products[product.ID] = product
		out = &product
		return nil
	})
	return out, err
}

func (r *productRepository) UpdateProductCategory(ctx context.Context, tenantID, productID int64, categoryID *int64) error {
	return r.v.write(func(d *dataset) error {
		p, ok := d.products[productID]
		if !ok || p.TenantID != tenantID {
			return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, productID)
		}
		if categoryID != nil {
			if _, ok := d.categories[*categoryID]; !ok {
				return fkViolation("product category %d does not exist", *categoryID)
			}
		}
		p.CategoryID = cloneID(categoryID)
		d.products[productID] = p
		return nil
	})
}

func (r *productRepository) MoveProducts(ctx context.Context, tenantID, fromCategoryID int64, toCategoryID *int64) (int64, error) {
	var moved int64
	err := r.v.write(func(d *dataset) error {
		if toCategoryID != nil {
			if _, ok := d.categories[*toCategoryID]; !ok {
				return fkViolation("product category %d does not exist", *toCategoryID)
			}
		}
		for id, p := range d.products {
			if p.TenantID != tenantID || p.CategoryID == nil || *p.CategoryID != fromCategoryID {
				continue
			}
			p.CategoryID = cloneID(toCategoryID)
			d.products[id] = p
			moved++
		}
		return nil
	})
	return moved, err
}

// --- transactions ---

type transactionRepository struct{ v *view }

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	var out *domain.Transaction
	err := r.v.write(func(d *dataset) error {
		for _, accountID := range []int64{txn.AccountID, txn.CounterpartyID} {
			if _, ok := d.accounts[accountID]; !ok {
				return fkViolation("account %d does not exist", accountID)
			}
		}
		txn.ID = d.nextID("transactions")
		txn.Description = cloneString(txn.Description)
		txn.Account, txn.Counterparty, txn.Details = nil, nil, nil
		d.transactions[txn.ID] = txn
		out = &txn
		return nil
	})
	return out, err
}

func (r *transactionRepository) CreateTransactionDetails(ctx context.Context, details []domain.TransactionDetail) error {
	return r.v.write(func(d *dataset) error {
		for _, detail := range details {
			if _, ok := d.transactions[detail.TransactionID]; !ok {
				return fkViolation("transaction %d does not exist", detail.TransactionID)
			}
			if _, ok := d.products[detail.ProductOrServiceID]; !ok {
				return fkViolation("product %d does not exist", detail.ProductOrServiceID)
			}
			detail.ID = d.nextID("transaction_details")
			detail.Product = nil
			d.details[detail.ID] = detail
		}
		return nil
	})
}

func (r *transactionRepository) FindTransactions(ctx context.Context, tenantID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	err := r.v.read(func(d *dataset) error {
		detailsByTxn := make(map[int64][]domain.TransactionDetail)
		for _, detail := range d.details {
			if detail.TenantID == tenantID {
				detailsByTxn[detail.TransactionID] = append(detailsByTxn[detail.TransactionID], detail)
			}
		}

		for _, txn := range d.transactions {
			if txn.TenantID != tenantID || !matchesHeader(txn, filter) {
				continue
			}

			details := detailsByTxn[txn.ID]
			slices.SortFunc(details, func(a, b domain.TransactionDetail) int { return cmp.Compare(a.ID, b.ID) })
			for i := range details {
				details[i].Product = d.productGraph(details[i].ProductOrServiceID)
			}
			if filter.HasDetailFilter() && !slices.ContainsFunc(details, filter.MatchesDetail) {
				continue
			}

			txn.Account = d.accountGraph(txn.AccountID)
			txn.Counterparty = d.accountGraph(txn.CounterpartyID)
			txn.Details = details
			out = append(out, txn)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b domain.Transaction) int {
		return cmp.Or(b.Date.Compare(a.Date), cmp.Compare(b.ID, a.ID))
	})
	return out, err
}

func matchesHeader(txn domain.Transaction, f domain.TransactionFilter) bool {
	if f.AccountID != nil && txn.AccountID != *f.AccountID {
		return false
	}
	if f.CounterpartyID != nil && txn.CounterpartyID != *f.CounterpartyID {
		return false
	}
	if f.SearchText != "" && !strings.Contains(strings.ToLower(txn.Name), strings.ToLower(f.SearchText)) {
		return false
	}
	if f.StartDate != nil && txn.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && txn.Date.After(*f.EndDate) {
		return false
	}
	if f.MinAmount != nil && txn.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && txn.Amount > *f.MaxAmount {
		return false
	}
	return true
}

func (d *dataset) accountGraph(id int64) *domain.Account {
	a, ok := d.accounts[id]
	if !ok {
		return nil
	}
	a.Currency = d.currencies[a.CurrencyID]
	return &a
}

func (d *dataset) productGraph(id int64) *domain.Product {
	p, ok := d.products[id]
	if !ok {
		return nil
	}
	if p.CategoryID != nil {
		if c, ok := d.categories[*p.CategoryID]; ok {
			p.Category = &c
		}
	}
	if p.UnitID != nil {
		if u, ok := d.units[*p.UnitID]; ok {
			p.Unit = &u
		}
	}
	if p.PieceSizeUnitID != nil {
		if u, ok := d.units[*p.PieceSizeUnitID]; ok {
			p.PieceSizeUnit = &u
		}
	}
	return &p
}
