package dto

import "github.com/SscSPs/household_ledger/internal/core/domain"

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Code               string `json:"code"`
	Symbol             string `json:"symbol"`
	FractionalPartName string `json:"fractionalPartName"`
	PartFraction       int64  `json:"partFraction"`
}

// UnitResponse defines the data returned for a measure unit.
type UnitResponse struct {
	ID        int64  `json:"id"`
	ShortName string `json:"shortName"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Code:               c.Code,
		Symbol:             c.Symbol,
		FractionalPartName: c.FractionalPartName,
		PartFraction:       c.PartFraction,
	}
}

// ToUnitResponse converts a domain.MeasureUnit to UnitResponse DTO. A nil unit yields nil.
func ToUnitResponse(u *domain.MeasureUnit) *UnitResponse {
	if u == nil {
		return nil
	}
	return &UnitResponse{ID: u.ID, ShortName: u.ShortName}
}
