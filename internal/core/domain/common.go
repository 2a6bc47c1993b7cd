package domain

import (
	"strings"
	"time"
)

// AuditFields holds standard audit information for domain entities.
// Every entity is owned by the account that created it, so only timestamps are tracked.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NormalizeName trims the outer whitespace of a user supplied name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NameKey is the case-folded form used to match client names within an account.
// It mirrors lower(btrim(name)) on the database side.
func NameKey(name string) string {
	return strings.ToLower(NormalizeName(name))
}
