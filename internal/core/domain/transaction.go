package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a movement of value between one of the tenant's accounts and a counterparty.
// Amount is in minor units of the account currency.
type Transaction struct {
	ID             int64               `json:"id"`
	TenantID       int64               `json:"tenantId"`
	Name           string              `json:"name"`
	Description    *string             `json:"description,omitempty"`
	Amount         int64               `json:"amount"`
	Date           time.Time           `json:"date"`
	AccountID      int64               `json:"accountId"`
	CounterpartyID int64               `json:"counterpartyId"`
	Account        *Account            `json:"account,omitempty"`
	Counterparty   *Account            `json:"counterparty,omitempty"`
	Details        []TransactionDetail `json:"details,omitempty"`
}

// TransactionDetail is a single line item of a transaction. It is immutable once created.
type TransactionDetail struct {
	ID                 int64           `json:"id"`
	TransactionID      int64           `json:"transactionId"`
	TenantID           int64           `json:"tenantId"`
	ProductOrServiceID int64           `json:"productOrServiceId"`
	Quantity           decimal.Decimal `json:"quantity"`
	PricePerUnit       decimal.Decimal `json:"pricePerUnit"`
	Product            *Product        `json:"productOrService,omitempty"`
}

// LineTotal is quantity multiplied by price per unit.
func (d TransactionDetail) LineTotal() decimal.Decimal {
	return d.Quantity.Mul(d.PricePerUnit)
}
