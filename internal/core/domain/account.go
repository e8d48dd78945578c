package domain

// AccountType distinguishes the tenant's own accounts from the parties it trades with.
type AccountType string

const (
	AccountTypeOwn          AccountType = "OWN"
	AccountTypeCounterparty AccountType = "COUNTERPARTY"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	return t == AccountTypeOwn || t == AccountTypeCounterparty
}

// Account represents a financial account within the core domain.
type Account struct {
	ID          int64       `json:"id"`
	TenantID    int64       `json:"tenantId"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	CurrencyID  int64       `json:"currencyId"`
	Currency    Currency    `json:"currency"`
	Description *string     `json:"description,omitempty"` // Nullable
}
