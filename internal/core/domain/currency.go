package domain

// Currency represents a supported currency in the domain.
// Amounts are stored in minor units; PartFraction is the number of minor units in one major unit.
type Currency struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`               // e.g., "US Dollar"
	Code               string `json:"code"`               // e.g., "USD"
	Symbol             string `json:"symbol"`             // e.g., "$"
	FractionalPartName string `json:"fractionalPartName"` // e.g., "cent"
	PartFraction       int64  `json:"partFraction"`       // e.g., 100
}

// MeasureUnit is reference data describing how a product is counted or weighed.
type MeasureUnit struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}
