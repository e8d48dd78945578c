package pgsql

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxTransactionRepository struct {
	db querier
}

func newPgxTransactionRepository(db querier) *PgxTransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// CreateTransaction inserts the transaction header.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (tenant_id, name, description, amount, date, account_id, counterparty_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		txn.TenantID,
		txn.Name,
		txn.Description,
		txn.Amount,
		txn.Date,
		txn.AccountID,
		txn.CounterpartyID,
	).Scan(&txn.ID)
	if err != nil {
		return nil, mapError(err, "create transaction "+txn.Name)
	}
	txn.Account, txn.Counterparty, txn.Details = nil, nil, nil
	return &txn, nil
}

// CreateTransactionDetails inserts all details in a single batch.
func (r *PgxTransactionRepository) CreateTransactionDetails(ctx context.Context, details []domain.TransactionDetail) error {
	if len(details) == 0 {
		return nil
	}
	query := `
		INSERT INTO transaction_details (transaction_id, tenant_id, product_or_service_id, quantity, price_per_unit)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, d := range details {
		batch.Queue(query, d.TransactionID, d.TenantID, d.ProductOrServiceID, d.Quantity, d.PricePerUnit)
	}

	br := r.db.SendBatch(ctx, batch)
	// Close reports the first failing statement of the batch.
	return mapError(br.Close(), "insert transaction details")
}

// FindTransactions loads matching headers first, then every detail of those transactions.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, tenantID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, args := buildTransactionQuery(tenantID, filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "query transactions")
	}

	transactions := []domain.Transaction{}
	ids := []int64{}
	for rows.Next() {
		txn, err := scanTransactionRow(rows)
		if err != nil {
			rows.Close()
			return nil, mapError(err, "scan transaction")
		}
		transactions = append(transactions, *txn)
		ids = append(ids, txn.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "iterate transactions")
	}
	if len(ids) == 0 {
		return transactions, nil
	}

	details, err := r.findDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range transactions {
		transactions[i].Details = details[transactions[i].ID]
	}
	return transactions, nil
}

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var a, cp domain.Account
	var accountType, counterpartyType string
	err := row.Scan(
		&t.ID, &t.TenantID, &t.Name, &t.Description, &t.Amount, &t.Date, &t.AccountID, &t.CounterpartyID,
		&a.ID, &a.TenantID, &a.Name, &accountType, &a.CurrencyID, &a.Description,
		&a.Currency.ID, &a.Currency.Name, &a.Currency.Code, &a.Currency.Symbol, &a.Currency.FractionalPartName, &a.Currency.PartFraction,
		&cp.ID, &cp.TenantID, &cp.Name, &counterpartyType, &cp.CurrencyID, &cp.Description,
		&cp.Currency.ID, &cp.Currency.Name, &cp.Currency.Code, &cp.Currency.Symbol, &cp.Currency.FractionalPartName, &cp.Currency.PartFraction,
	)
	if err != nil {
		return nil, err
	}
	a.Type = domain.AccountType(accountType)
	cp.Type = domain.AccountType(counterpartyType)
	t.Account = &a
	t.Counterparty = &cp
	return &t, nil
}

// nullableUnit holds the LEFT JOINed columns of a measure unit.
type nullableUnit struct {
	ID        *int64
	Name      *string
	ShortName *string
}

func (u nullableUnit) toDomain() *domain.MeasureUnit {
	if u.ID == nil {
		return nil
	}
	mu := &domain.MeasureUnit{ID: *u.ID}
	if u.Name != nil {
		mu.Name = *u.Name
	}
	if u.ShortName != nil {
		mu.ShortName = *u.ShortName
	}
	return mu
}

func (r *PgxTransactionRepository) findDetails(ctx context.Context, transactionIDs []int64) (map[int64][]domain.TransactionDetail, error) {
	rows, err := r.db.Query(ctx, detailSelect, transactionIDs)
	if err != nil {
		return nil, mapError(err, "query transaction details")
	}
	defer rows.Close()

	byTxn := make(map[int64][]domain.TransactionDetail, len(transactionIDs))
	for rows.Next() {
		var d domain.TransactionDetail
		var p domain.Product
		var catID, catTenantID *int64
		var catName *string
		var catParent *int64
		var unit, pieceUnit nullableUnit

		err := rows.Scan(
			&d.ID, &d.TransactionID, &d.TenantID, &d.ProductOrServiceID, &d.Quantity, &d.PricePerUnit,
			&p.ID, &p.TenantID, &p.Name, &p.CategoryID, &p.UnitID, &p.PieceSizeUnitID,
			&catID, &catTenantID, &catName, &catParent,
			&unit.ID, &unit.Name, &unit.ShortName,
			&pieceUnit.ID, &pieceUnit.Name, &pieceUnit.ShortName,
		)
		if err != nil {
			return nil, mapError(err, "scan transaction detail")
		}
		if catID != nil {
			c := domain.Category{ID: *catID, SuperCategoryID: catParent}
			if catTenantID != nil {
				c.TenantID = *catTenantID
			}
			if catName != nil {
				c.Name = *catName
			}
			p.Category = &c
		}
		p.Unit = unit.toDomain()
		p.PieceSizeUnit = pieceUnit.toDomain()
		d.Product = &p
		byTxn[d.TransactionID] = append(byTxn[d.TransactionID], d)
	}
	return byTxn, mapError(rows.Err(), "iterate transaction details")
}
