package accounting

import (
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountTolerance is the largest accepted gap between a transaction amount and the sum of its details.
var AmountTolerance = decimal.RequireFromString("0.01")

// SumDetails returns the sum of quantity times price per unit over all details.
func SumDetails(details []domain.TransactionDetail) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range details {
		sum = sum.Add(d.LineTotal())
	}
	return sum
}

// ValidateDetailLines checks that every detail has a positive quantity and price.
func ValidateDetailLines(details []domain.TransactionDetail) error {
	for i, d := range details {
		if !d.Quantity.IsPositive() {
			return fmt.Errorf("%w: detail %d quantity must be positive", apperrors.ErrValidation, i)
		}
		if !d.PricePerUnit.IsPositive() {
			return fmt.Errorf("%w: detail %d price per unit must be positive", apperrors.ErrValidation, i)
		}
	}
	return nil
}

// ReconcileAmount checks that the declared amount matches the sum of the details within AmountTolerance.
func ReconcileAmount(amount int64, details []domain.TransactionDetail) error {
	calculated := SumDetails(details)
	if calculated.Sub(decimal.NewFromInt(amount)).Abs().GreaterThan(AmountTolerance) {
		return fmt.Errorf("%w: Total amount does not match the sum of details. (amount %d, details %s)",
			apperrors.ErrValidation, amount, calculated.String())
	}
	return nil
}
