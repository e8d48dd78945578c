package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the Postgres implementation of portsrepo.Store.
type Store struct {
	BaseRepository
}

// NewStore creates a store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure Store implements portsrepo.Store
var _ portsrepo.Store = (*Store)(nil)

// Repositories returns repositories that run each statement on the pool.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return newProvider(s.Pool)
}

// RunAtomic runs fn inside one pgx transaction.
func (s *Store) RunAtomic(ctx context.Context, fn portsrepo.AtomicFunc) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.Rollback(ctx, tx) }()

	if err := fn(ctx, newProvider(tx)); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}

func newProvider(q querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(q),
		CurrencyRepo:    newPgxCurrencyRepository(q),
		UnitRepo:        newPgxUnitRepository(q),
		CategoryRepo:    newPgxCategoryRepository(q),
		ProductRepo:     newPgxProductRepository(q),
		TransactionRepo: newPgxTransactionRepository(q),
	}
}
