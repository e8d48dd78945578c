package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionDetailRequest is one line item of a new transaction.
type CreateTransactionDetailRequest struct {
	ProductOrServiceID int64           `json:"productOrServiceId" binding:"required"`
	Quantity           decimal.Decimal `json:"quantity" swaggertype:"string"`
	PricePerUnit       decimal.Decimal `json:"pricePerUnit" swaggertype:"string"`
}

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is in minor units and must equal the sum of quantity times price per unit.
type CreateTransactionRequest struct {
	Name           string                           `json:"name" binding:"required,notblank"`
	Description    *string                          `json:"description"`
	Amount         int64                            `json:"amount"`
	Date           time.Time                        `json:"date" binding:"required"`
	AccountID      int64                            `json:"accountId" binding:"required"`
	CounterpartyID int64                            `json:"counterpartyId" binding:"required"`
	Details        []CreateTransactionDetailRequest `json:"details" binding:"dive"`
}

// TransactionQuery is the raw, unnormalised transaction filter as received over HTTP.
// Every field is optional; malformed values are dropped during normalisation.
type TransactionQuery struct {
	AccountID      FlexibleString  `json:"accountId" swaggertype:"string"`
	CounterpartyID FlexibleString  `json:"counterpartyId" swaggertype:"string"`
	SearchText     FlexibleString  `json:"searchText" swaggertype:"string"`
	StartDate      FlexibleString  `json:"startDate" swaggertype:"string"`
	EndDate        FlexibleString  `json:"endDate" swaggertype:"string"`
	MinAmount      FlexibleString  `json:"minAmount" swaggertype:"string"`
	MaxAmount      FlexibleString  `json:"maxAmount" swaggertype:"string"`
	CategoryIDs    FlexibleStrings `json:"categoryIds" swaggertype:"array,string"`
	ProductNames   FlexibleStrings `json:"productNames" swaggertype:"array,string"`
}

// TransactionDetailResponse defines the data returned for a transaction detail.
type TransactionDetailResponse struct {
	ID                 int64           `json:"id"`
	TransactionID      int64           `json:"transactionId"`
	ProductOrServiceID int64           `json:"productOrServiceId"`
	Quantity           decimal.Decimal `json:"quantity" swaggertype:"string"`
	PricePerUnit       decimal.Decimal `json:"pricePerUnit" swaggertype:"string"`
	TenantID           int64           `json:"tenantId"`
	ProductOrService   ProductResponse `json:"productOrService"`
	CategoryPath       *string         `json:"categoryPath,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID              int64                       `json:"id"`
	Name            string                      `json:"name"`
	Description     *string                     `json:"description,omitempty"`
	Amount          int64                       `json:"amount"`
	FormattedAmount string                      `json:"formattedAmount"`
	Date            time.Time                   `json:"date"`
	Account         AccountResponse             `json:"account"`
	Counterparty    AccountResponse             `json:"counterparty"`
	TenantID        int64                       `json:"tenantId"`
	Details         []TransactionDetailResponse `json:"details"`
}

// CreatedTransactionResponse is the bare transaction returned after creation.
type CreatedTransactionResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Amount         int64     `json:"amount"`
	Date           time.Time `json:"date"`
	AccountID      int64     `json:"accountId"`
	CounterpartyID int64     `json:"counterpartyId"`
	TenantID       int64     `json:"tenantId"`
}

// ToCreatedTransactionResponse converts a freshly created domain.Transaction.
func ToCreatedTransactionResponse(txn *domain.Transaction) CreatedTransactionResponse {
	return CreatedTransactionResponse{
		ID:             txn.ID,
		Name:           txn.Name,
		Description:    txn.Description,
		Amount:         txn.Amount,
		Date:           txn.Date,
		AccountID:      txn.AccountID,
		CounterpartyID: txn.CounterpartyID,
		TenantID:       txn.TenantID,
	}
}
