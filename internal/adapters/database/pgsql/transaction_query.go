package pgsql

import (
	"strconv"
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

const transactionSelect = `
	SELECT t.id, t.tenant_id, t.name, t.description, t.amount, t.date, t.account_id, t.counterparty_id,
	       a.id, a.tenant_id, a.name, a.type, a.currency_id, a.description,
	       ac.id, ac.name, ac.code, ac.symbol, ac.fractional_part_name, ac.part_fraction,
	       cp.id, cp.tenant_id, cp.name, cp.type, cp.currency_id, cp.description,
	       cpc.id, cpc.name, cpc.code, cpc.symbol, cpc.fractional_part_name, cpc.part_fraction
	FROM transactions t
	JOIN accounts a ON a.id = t.account_id
	JOIN currencies ac ON ac.id = a.currency_id
	JOIN accounts cp ON cp.id = t.counterparty_id
	JOIN currencies cpc ON cpc.id = cp.currency_id
	WHERE t.tenant_id = $1`

const transactionOrder = ` ORDER BY t.date DESC, t.id DESC;`

// likeEscaper makes user text match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildTransactionQuery renders the transaction history statement for a normalised filter.
// Detail constraints are combined inside one EXISTS so that they must hold on the same detail row.
func buildTransactionQuery(tenantID int64, f domain.TransactionFilter) (string, []any) {
	args := []any{tenantID}
	var sb strings.Builder
	sb.WriteString(transactionSelect)

	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.AccountID != nil {
		sb.WriteString(" AND t.account_id = " + next(*f.AccountID))
	}
	if f.CounterpartyID != nil {
		sb.WriteString(" AND t.counterparty_id = " + next(*f.CounterpartyID))
	}
	if f.SearchText != "" {
		sb.WriteString(" AND t.name ILIKE " + next("%"+likeEscaper.Replace(f.SearchText)+"%") + ` ESCAPE '\'`)
	}
	if f.StartDate != nil {
		sb.WriteString(" AND t.date >= " + next(*f.StartDate))
	}
	if f.EndDate != nil {
		sb.WriteString(" AND t.date <= " + next(*f.EndDate))
	}
	if f.MinAmount != nil {
		sb.WriteString(" AND t.amount >= " + next(*f.MinAmount))
	}
	if f.MaxAmount != nil {
		sb.WriteString(" AND t.amount <= " + next(*f.MaxAmount))
	}
	if f.HasDetailFilter() {
		sb.WriteString(" AND EXISTS (SELECT 1 FROM transaction_details d JOIN products p ON p.id = d.product_or_service_id WHERE d.transaction_id = t.id")
		if len(f.CategoryIDs) > 0 {
			sb.WriteString(" AND p.category_id = ANY(" + next(f.CategoryIDs) + ")")
		}
		if len(f.ProductNames) > 0 {
			sb.WriteString(" AND p.name = ANY(" + next(f.ProductNames) + ")")
		}
		sb.WriteString(")")
	}
	sb.WriteString(transactionOrder)
	return sb.String(), args
}

const detailSelect = `
	SELECT d.id, d.transaction_id, d.tenant_id, d.product_or_service_id, d.quantity, d.price_per_unit,
	       p.id, p.tenant_id, p.name, p.category_id, p.unit_id, p.piece_size_unit_id,
	       c.id, c.tenant_id, c.name, c.super_category_id,
	       u.id, u.name, u.short_name,
	       pu.id, pu.name, pu.short_name
	FROM transaction_details d
	JOIN products p ON p.id = d.product_or_service_id
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN measure_units u ON u.id = p.unit_id
	LEFT JOIN measure_units pu ON pu.id = p.piece_size_unit_id
	WHERE d.transaction_id = ANY($1)
	ORDER BY d.transaction_id, d.id;`
