package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ToMajorUnits converts an amount in minor units to the currency's major unit.
// Example: 12345 with partFraction 100 returns 123.45
func ToMajorUnits(amount int64, currency domain.Currency) decimal.Decimal {
	if currency.PartFraction <= 1 {
		return decimal.NewFromInt(amount)
	}
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(currency.PartFraction))
}

// FormatAmount renders an amount in minor units for display.
// Currencies known to go-money whose fraction agrees with the stored part fraction use its
// template (e.g. "$123.45"); anything else falls back to the symbol followed by the major amount.
func FormatAmount(amount int64, currency domain.Currency) string {
	code := strings.ToUpper(currency.Code)
	if cur := money.GetCurrency(code); cur != nil && fractionOf(cur.Fraction) == currency.PartFraction {
		return money.New(amount, code).Display()
	}
	major := ToMajorUnits(amount, currency)
	return currency.Symbol + major.StringFixed(int32(decimalPlaces(currency.PartFraction)))
}

// fractionOf returns 10^digits.
func fractionOf(digits int) int64 {
	f := int64(1)
	for i := 0; i < digits; i++ {
		f *= 10
	}
	return f
}

// decimalPlaces returns how many decimal places are needed to show one minor unit.
func decimalPlaces(partFraction int64) int {
	places := 0
	for partFraction > 1 {
		partFraction /= 10
		places++
	}
	return places
}
