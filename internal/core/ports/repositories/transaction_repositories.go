package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	// FindTransactions retrieves the tenant's transactions matching filter, ordered by date
	// descending then id descending. Each transaction carries its account and counterparty
	// (with currencies) and all of its details with product, category and units. Detail
	// constraints select transactions having at least one detail satisfying all of them;
	// details are not pruned here.
	FindTransactions(ctx context.Context, tenantID int64, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	// CreateTransaction persists the transaction header and returns it with its generated id.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// CreateTransactionDetails bulk inserts details that already carry transaction and tenant ids.
	CreateTransactionDetails(ctx context.Context, details []domain.TransactionDetail) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
