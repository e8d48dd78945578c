package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// queryDateLayouts are tried in order when parsing date bounds.
var queryDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// NormalizeTransactionQuery converts raw filter input into a TransactionFilter.
// Malformed values are dropped rather than rejected, so an unusable constraint is simply not applied.
// Normalising the query built from a filter yields the same filter.
func NormalizeTransactionQuery(q dto.TransactionQuery) domain.TransactionFilter {
	return domain.TransactionFilter{
		AccountID:      parseOptionalInt(string(q.AccountID)),
		CounterpartyID: parseOptionalInt(string(q.CounterpartyID)),
		SearchText:     strings.TrimSpace(string(q.SearchText)),
		StartDate:      parseOptionalDate(string(q.StartDate)),
		EndDate:        parseOptionalDate(string(q.EndDate)),
		MinAmount:      parseOptionalInt(string(q.MinAmount)),
		MaxAmount:      parseOptionalInt(string(q.MaxAmount)),
		CategoryIDs:    parseIDList(q.CategoryIDs),
		ProductNames:   parseNameList(q.ProductNames),
	}
}

func parseOptionalInt(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptionalDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range queryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func parseIDList(raw []string) []int64 {
	var ids []int64
	for _, s := range raw {
		if id := parseOptionalInt(s); id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

func parseNameList(raw []string) []string {
	var names []string
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			names = append(names, s)
		}
	}
	return names
}
