package dto

import "github.com/SscSPs/household_ledger/internal/core/domain"

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required,notblank"`
	Type         domain.AccountType `json:"type" binding:"required,oneof=OWN COUNTERPARTY"`
	CurrencyCode string             `json:"currencyCode" binding:"required"`
	Description  *string            `json:"description"` // Optional
}

// AccountResponse defines the data returned for an account, with its currency nested.
type AccountResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Type        domain.AccountType `json:"type"`
	Description *string            `json:"description,omitempty"`
	TenantID    int64              `json:"tenantId"`
	Currency    CurrencyResponse   `json:"currency"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          acc.ID,
		Name:        acc.Name,
		Type:        acc.Type,
		Description: acc.Description,
		TenantID:    acc.TenantID,
		Currency:    ToCurrencyResponse(acc.Currency),
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToAccountSelectItems converts accounts to select items labelled by name.
func ToAccountSelectItems(accounts []domain.Account) []SelectItem {
	res := make([]SelectItem, len(accounts))
	for i, acc := range accounts {
		res[i] = SelectItem{ID: acc.ID, Label: acc.Name}
	}
	return res
}
