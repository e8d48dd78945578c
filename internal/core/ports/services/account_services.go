package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	// ListAccounts returns every account of the tenant with its currency, ordered by name.
	ListAccounts(ctx context.Context, tenantID int64) ([]domain.Account, error)

	// ListAccountSelectItems returns the tenant's accounts of the given type as select items.
	ListAccountSelectItems(ctx context.Context, tenantID int64, accountType domain.AccountType) ([]dto.SelectItem, error)
}

// AccountWriterSvc defines write operations for accounts.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, tenantID int64, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
