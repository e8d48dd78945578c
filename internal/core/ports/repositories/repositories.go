package repositories

import "context"

// RepositoryProvider holds all repository interfaces needed by services.
// Inside an atomic unit every field is bound to the same underlying store transaction.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	CurrencyRepo    CurrencyRepositoryFacade
	UnitRepo        UnitReader
	CategoryRepo    CategoryRepositoryFacade
	ProductRepo     ProductRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
}

// AtomicFunc is a unit of work executed against repositories bound to one store transaction.
type AtomicFunc func(ctx context.Context, repos RepositoryProvider) error

// Store is the persistence collaborator of the services.
type Store interface {
	// Repositories returns repositories operating outside any atomic unit.
	Repositories() RepositoryProvider

	// RunAtomic runs fn in a single store transaction. The transaction commits when fn
	// returns nil and rolls back otherwise; fn's error is returned unchanged.
	RunAtomic(ctx context.Context, fn AtomicFunc) error
}
