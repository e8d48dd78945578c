package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// accountSelect joins each account with its currency.
const accountSelect = `
	SELECT a.id, a.tenant_id, a.name, a.type, a.currency_id, a.description,
	       c.id, c.name, c.code, c.symbol, c.fractional_part_name, c.part_fraction
	FROM accounts a
	JOIN currencies c ON c.id = a.currency_id
`

type PgxAccountRepository struct {
	db querier
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(db querier) *PgxAccountRepository {
	return &PgxAccountRepository{db: db}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var accountType string
	err := row.Scan(
		&a.ID, &a.TenantID, &a.Name, &accountType, &a.CurrencyID, &a.Description,
		&a.Currency.ID, &a.Currency.Name, &a.Currency.Code, &a.Currency.Symbol,
		&a.Currency.FractionalPartName, &a.Currency.PartFraction,
	)
	if err != nil {
		return nil, err
	}
	a.Type = domain.AccountType(accountType)
	return &a, nil
}

// FindAccountByID retrieves an account of the tenant by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID int64) (*domain.Account, error) {
	query := accountSelect + ` WHERE a.id = $1 AND a.tenant_id = $2;`
	a, err := scanAccount(r.db.QueryRow(ctx, query, accountID, tenantID))
	if err != nil {
		return nil, mapError(err, "find account "+strconv.FormatInt(accountID, 10))
	}
	return a, nil
}

// ListAccounts retrieves the tenant's accounts ordered by name, optionally of a single type.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID int64, accountType *domain.AccountType) ([]domain.Account, error) {
	query := accountSelect + ` WHERE a.tenant_id = $1`
	args := []any{tenantID}
	if accountType != nil {
		args = append(args, string(*accountType))
		query += ` AND a.type = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY a.name, a.id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list accounts")
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "scan account")
		}
		accounts = append(accounts, *a)
	}
	return accounts, mapError(rows.Err(), "iterate accounts")
}

// CreateAccount inserts a new account and loads it back with its currency.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		WITH inserted AS (
			INSERT INTO accounts (tenant_id, name, type, currency_id, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, tenant_id, name, type, currency_id, description
		)
		SELECT a.id, a.tenant_id, a.name, a.type, a.currency_id, a.description,
		       c.id, c.name, c.code, c.symbol, c.fractional_part_name, c.part_fraction
		FROM inserted a
		JOIN currencies c ON c.id = a.currency_id;
	`
	created, err := scanAccount(r.db.QueryRow(ctx, query,
		account.TenantID,
		account.Name,
		string(account.Type),
		account.CurrencyID,
		account.Description,
	))
	if err != nil {
		return nil, mapError(err, "create account "+account.Name)
	}
	return created, nil
}
