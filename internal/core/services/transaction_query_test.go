package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
)

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func TestNormalizeTransactionQuery(t *testing.T) {
	day := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2024, 1, 31, 12, 30, 0, 0, time.UTC)
	i64 := func(v int64) *int64 { return &v }

	testCases := []struct {
		name  string
		query dto.TransactionQuery
		want  domain.TransactionFilter
	}{
		{
			name:  "empty",
			query: dto.TransactionQuery{},
			want:  domain.TransactionFilter{},
		},
		{
			name: "scalars are trimmed and parsed",
			query: dto.TransactionQuery{
				AccountID: " 7 ", CounterpartyID: "8", SearchText: "  rent ",
				MinAmount: "-5", MaxAmount: "1000",
				StartDate: "2024-01-31", EndDate: "2024-01-31 12:30:00",
			},
			want: domain.TransactionFilter{
				AccountID: i64(7), CounterpartyID: i64(8), SearchText: "rent",
				MinAmount: i64(-5), MaxAmount: i64(1000),
				StartDate: &day, EndDate: &stamp,
			},
		},
		{
			name: "malformed values are dropped",
			query: dto.TransactionQuery{
				AccountID: "seven", MinAmount: "1.5", MaxAmount: "9223372036854775808",
				StartDate: "31/01/2024", EndDate: "yesterday",
				CategoryIDs:  dto.FlexibleStrings{"x", "", "3"},
				ProductNames: dto.FlexibleStrings{" ", ""},
			},
			want: domain.TransactionFilter{CategoryIDs: []int64{3}},
		},
		{
			name: "other date layouts",
			query: dto.TransactionQuery{
				StartDate: "2024-01-31T12:30:00", EndDate: "2024-01-31T12:30:00Z",
			},
			want: domain.TransactionFilter{StartDate: &stamp, EndDate: &stamp},
		},
		{
			name:  "names are trimmed",
			query: dto.TransactionQuery{ProductNames: dto.FlexibleStrings{" Milk ", "Bread"}},
			want:  domain.TransactionFilter{ProductNames: []string{"Milk", "Bread"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTransactionQuery(tc.query)
			assert.Equal(t, tc.want.AccountID, got.AccountID)
			assert.Equal(t, tc.want.CounterpartyID, got.CounterpartyID)
			assert.Equal(t, tc.want.SearchText, got.SearchText)
			assert.Equal(t, tc.want.MinAmount, got.MinAmount)
			assert.Equal(t, tc.want.MaxAmount, got.MaxAmount)
			assert.Equal(t, tc.want.CategoryIDs, got.CategoryIDs)
			assert.Equal(t, tc.want.ProductNames, got.ProductNames)
			assertSameTime(t, tc.want.StartDate, got.StartDate)
			assertSameTime(t, tc.want.EndDate, got.EndDate)
		})
	}
}

func TestNormalizeTransactionQuery_ScalarAndListAgree(t *testing.T) {
	scalar := NormalizeTransactionQuery(dto.TransactionQuery{CategoryIDs: dto.FlexibleStrings{"5"}})
	list := NormalizeTransactionQuery(dto.TransactionQuery{CategoryIDs: dto.FlexibleStrings{" 5 "}})
	assert.Equal(t, scalar, list)
	assert.Equal(t, []int64{5}, scalar.CategoryIDs)
}

func TestNormalizeTransactionQuery_Idempotent(t *testing.T) {
	first := NormalizeTransactionQuery(dto.TransactionQuery{
		AccountID: "3", SearchText: " Shop ", StartDate: "2024-02-01",
		CategoryIDs: dto.FlexibleStrings{"1", "bad", "2"}, ProductNames: dto.FlexibleStrings{" Milk "},
	})

	second := NormalizeTransactionQuery(toQuery(first))

	assert.Equal(t, first.AccountID, second.AccountID)
	assert.Equal(t, first.SearchText, second.SearchText)
	assert.Equal(t, first.CategoryIDs, second.CategoryIDs)
	assert.Equal(t, first.ProductNames, second.ProductNames)
	assertSameTime(t, first.StartDate, second.StartDate)
}

// toQuery renders a filter back into raw query form.
func toQuery(f domain.TransactionFilter) dto.TransactionQuery {
	q := dto.TransactionQuery{SearchText: dto.FlexibleString(f.SearchText)}
	if f.AccountID != nil {
		q.AccountID = dto.FlexibleString(itoa(*f.AccountID))
	}
	if f.StartDate != nil {
		q.StartDate = dto.FlexibleString(f.StartDate.Format(time.RFC3339Nano))
	}
	for _, id := range f.CategoryIDs {
		q.CategoryIDs = append(q.CategoryIDs, itoa(id))
	}
	q.ProductNames = append(q.ProductNames, f.ProductNames...)
	return q
}

func assertSameTime(t *testing.T, want, got *time.Time) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	if assert.NotNil(t, got) {
		assert.True(t, want.Equal(*got), "want %s, got %s", want, got)
	}
}
