package domain

// Category is a node of a tenant's product classification forest.
// SuperCategoryID is nil for roots.
type Category struct {
	ID              int64  `json:"id"`
	TenantID        int64  `json:"tenantId"`
	Name            string `json:"name"`
	SuperCategoryID *int64 `json:"superCategoryId,omitempty"`
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.SuperCategoryID == nil
}

// Product is a product or service that transaction details refer to.
// Category, Unit and PieceSizeUnit are populated only when loaded through the transaction graph.
type Product struct {
	ID              int64        `json:"id"`
	TenantID        int64        `json:"tenantId"`
	Name            string       `json:"name"`
	CategoryID      *int64       `json:"categoryId,omitempty"`
	UnitID          *int64       `json:"unitId,omitempty"`
	PieceSizeUnitID *int64       `json:"pieceSizeUnitId,omitempty"`
	Category        *Category    `json:"category,omitempty"`
	Unit            *MeasureUnit `json:"unit,omitempty"`
	PieceSizeUnit   *MeasureUnit `json:"pieceSizeUnit,omitempty"`
}
