package domain

// Identity is the authenticated caller as resolved from a bearer token.
// TenantID scopes every read and write; for personal ledgers it equals UserID.
type Identity struct {
	UserID   int64 `json:"userId"`
	TenantID int64 `json:"tenantId"`
}
