package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithCurrencyRepository adds currency repository dependency
func WithCurrencyRepository(repo portsrepo.CurrencyReader) AccountServiceOption {
	return func(s *accountService) {
		s.currencyRepo = repo
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, tenantID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int64("tenant_id", tenantID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) ListAccountSelectItems(ctx context.Context, tenantID int64, accountType domain.AccountType) ([]dto.SelectItem, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID, &accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account select items",
			slog.Int64("tenant_id", tenantID), slog.String("type", string(accountType)))
		return nil, err
	}
	return dto.ToAccountSelectItems(accounts), nil
}

func (s *accountService) CreateAccount(ctx context.Context, tenantID int64, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}
	if s.currencyRepo == nil {
		return nil, apperrors.NewAppError(500, "account service has no currency repository", nil)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		s.LogFailure(ctx, err, "Invalid currency code", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("invalid currency code %s: %w", req.CurrencyCode, err)
	}

	account, err := s.accountRepo.CreateAccount(ctx, domain.Account{
		TenantID:    tenantID,
		Name:        name,
		Type:        req.Type,
		CurrencyID:  currency.ID,
		Description: req.Description,
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save account", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully", slog.Int64("account_id", account.ID))
	return account, nil
}
