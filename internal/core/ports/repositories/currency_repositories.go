package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data.
type CurrencyReader interface {
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}

// UnitReader defines read operations for measure units.
type UnitReader interface {
	FindUnitByID(ctx context.Context, id int64) (*domain.MeasureUnit, error)
	ListUnits(ctx context.Context) ([]domain.MeasureUnit, error)
}
