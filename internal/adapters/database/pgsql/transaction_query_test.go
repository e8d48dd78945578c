package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildTransactionQuery_NoFilter(t *testing.T) {
	query, args := buildTransactionQuery(7, domain.TransactionFilter{})

	assert.Equal(t, []any{int64(7)}, args)
	assert.Contains(t, query, "WHERE t.tenant_id = $1 ORDER BY t.date DESC, t.id DESC;")
	assert.NotContains(t, query, "EXISTS")
}

func TestBuildTransactionQuery_AllFilters(t *testing.T) {
	account, counterparty := int64(3), int64(4)
	minAmount, maxAmount := int64(100), int64(900)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	query, args := buildTransactionQuery(1, domain.TransactionFilter{
		AccountID:      &account,
		CounterpartyID: &counterparty,
		SearchText:     "50%_off",
		StartDate:      &start,
		EndDate:        &end,
		MinAmount:      &minAmount,
		MaxAmount:      &maxAmount,
		CategoryIDs:    []int64{5, 6},
		ProductNames:   []string{"Milk"},
	})

	assert.Contains(t, query, "AND t.account_id = $2")
	assert.Contains(t, query, "AND t.counterparty_id = $3")
	assert.Contains(t, query, `AND t.name ILIKE $4 ESCAPE '\'`)
	assert.Contains(t, query, "AND t.date >= $5")
	assert.Contains(t, query, "AND t.date <= $6")
	assert.Contains(t, query, "AND t.amount >= $7")
	assert.Contains(t, query, "AND t.amount <= $8")
	assert.Contains(t, query, "WHERE d.transaction_id = t.id AND p.category_id = ANY($9) AND p.name = ANY($10))")

	assert.Equal(t, []any{
		int64(1), account, counterparty, `%50\%\_off%`, start, end, minAmount, maxAmount,
		[]int64{5, 6}, []string{"Milk"},
	}, args)
}

func TestBuildTransactionQuery_ProductNamesOnly(t *testing.T) {
	query, args := buildTransactionQuery(1, domain.TransactionFilter{ProductNames: []string{"Bread"}})

	assert.Contains(t, query, "WHERE d.transaction_id = t.id AND p.name = ANY($2))")
	assert.NotContains(t, query, "p.category_id")
	assert.Len(t, args, 2)
}
