package accounting

import (
	"errors"
	"testing"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(qty, price string) domain.TransactionDetail {
	return domain.TransactionDetail{
		Quantity:     decimal.RequireFromString(qty),
		PricePerUnit: decimal.RequireFromString(price),
	}
}

func TestSumDetails(t *testing.T) {
	assert.True(t, decimal.NewFromInt(100).Equal(SumDetails([]domain.TransactionDetail{line("2", "40"), line("1", "20")})))
	assert.True(t, decimal.Zero.Equal(SumDetails(nil)))
}

func TestReconcileAmount(t *testing.T) {
	details := []domain.TransactionDetail{line("2", "40"), line("1", "20")}

	testCases := []struct {
		name    string
		amount  int64
		details []domain.TransactionDetail
		wantErr bool
	}{
		{"exact match", 100, details, false},
		{"one short", 99, details, true},
		{"one over", 101, details, true},
		{"fractional within tolerance", 10, []domain.TransactionDetail{line("3", "3.335")}, false},
		{"fractional outside tolerance", 10, []domain.TransactionDetail{line("3", "3.32")}, true},
		{"no details zero amount", 0, nil, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ReconcileAmount(tc.amount, tc.details)
			if tc.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDetailLines(t *testing.T) {
	assert.NoError(t, ValidateDetailLines([]domain.TransactionDetail{line("0.5", "3")}))
	assert.ErrorIs(t, ValidateDetailLines([]domain.TransactionDetail{line("0", "3")}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateDetailLines([]domain.TransactionDetail{line("1", "-3")}), apperrors.ErrValidation)
}
