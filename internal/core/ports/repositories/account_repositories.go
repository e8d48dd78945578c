package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Lookups are tenant scoped: an account of another tenant is reported as apperrors.ErrNotFound.
type AccountReader interface {
	// FindAccountByID retrieves an account of the tenant, with its currency.
	FindAccountByID(ctx context.Context, tenantID, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves the tenant's accounts ordered by name.
	// A nil accountType lists every type.
	ListAccounts(ctx context.Context, tenantID int64, accountType *domain.AccountType) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// CreateAccount persists a new account and returns it with its generated id.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
