package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/core/taxonomy"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils/accounting"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	store portsrepo.Store
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(store portsrepo.Store) portssvc.TransactionSvcFacade {
	return &transactionService{store: store}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) FindTransactions(ctx context.Context, tenantID int64, query dto.TransactionQuery) ([]dto.TransactionResponse, error) {
	filter := NormalizeTransactionQuery(query)
	repos := s.store.Repositories()

	txns, err := repos.TransactionRepo.FindTransactions(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transactions", slog.Int64("tenant_id", tenantID))
		return nil, err
	}
	txns = pruneDetails(txns, filter)

	cats, err := repos.CategoryRepo.ListCategories(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.Int64("tenant_id", tenantID))
		return nil, err
	}

	s.LogDebug(ctx, "Transactions found", slog.Int64("tenant_id", tenantID), slog.Int("count", len(txns)))
	return AssembleTransactions(txns, NewCategoryPathCache(taxonomy.NewIndex(cats), txns)), nil
}

// pruneDetails keeps only the details matching the detail constraints and drops transactions
// left without any. Without detail constraints txns is returned as is.
func pruneDetails(txns []domain.Transaction, filter domain.TransactionFilter) []domain.Transaction {
	if !filter.HasDetailFilter() {
		return txns
	}
	out := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		txn.Details = slices.DeleteFunc(slices.Clone(txn.Details), func(d domain.TransactionDetail) bool {
			return !filter.MatchesDetail(d)
		})
		if len(txn.Details) > 0 {
			out = append(out, txn)
		}
	}
	return out
}

func (s *transactionService) CreateTransaction(ctx context.Context, tenantID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: transaction name is required", apperrors.ErrValidation)
	}

	details := make([]domain.TransactionDetail, len(req.Details))
	for i, d := range req.Details {
		details[i] = domain.TransactionDetail{
			TenantID:           tenantID,
			ProductOrServiceID: d.ProductOrServiceID,
			Quantity:           d.Quantity,
			PricePerUnit:       d.PricePerUnit,
		}
	}
	if err := accounting.ValidateDetailLines(details); err != nil {
		s.LogFailure(ctx, err, "Invalid transaction details")
		return nil, err
	}
	if err := accounting.ReconcileAmount(req.Amount, details); err != nil {
		s.LogFailure(ctx, err, "Transaction amount does not reconcile", slog.Int64("amount", req.Amount))
		return nil, err
	}

	var created *domain.Transaction
	err := s.store.RunAtomic(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		for _, accountID := range []int64{req.AccountID, req.CounterpartyID} {
			if _, err := repos.AccountRepo.FindAccountByID(ctx, tenantID, accountID); err != nil {
				return err
			}
		}
		if err := ensureProducts(ctx, repos.ProductRepo, tenantID, details); err != nil {
			return err
		}

		var err error
		created, err = repos.TransactionRepo.CreateTransaction(ctx, domain.Transaction{
			TenantID:       tenantID,
			Name:           name,
			Description:    req.Description,
			Amount:         req.Amount,
			Date:           req.Date,
			AccountID:      req.AccountID,
			CounterpartyID: req.CounterpartyID,
		})
		if err != nil {
			return err
		}
		for i := range details {
			details[i].TransactionID = created.ID
		}
		if len(details) == 0 {
			return nil
		}
		return repos.TransactionRepo.CreateTransactionDetails(ctx, details)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create transaction", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.Int64("transaction_id", created.ID), slog.Int("details", len(details)))
	return created, nil
}

// ensureProducts checks that every referenced product belongs to the tenant.
func ensureProducts(ctx context.Context, repo portsrepo.ProductReader, tenantID int64, details []domain.TransactionDetail) error {
	if len(details) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ProductOrServiceID)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	found, err := repo.FindProductsByIDs(ctx, tenantID, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, id)
		}
	}
	return nil
}
