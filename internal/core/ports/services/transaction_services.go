package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// TransactionReaderSvc defines the filtered transaction history query.
type TransactionReaderSvc interface {
	// FindTransactions normalises query, loads matching transactions, prunes details that do not
	// satisfy the detail constraints and shapes the result for clients.
	FindTransactions(ctx context.Context, tenantID int64, query dto.TransactionQuery) ([]dto.TransactionResponse, error)
}

// TransactionWriterSvc defines transaction creation.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, tenantID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
