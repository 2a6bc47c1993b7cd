package models

// Profile mirrors the profiles table.
type Profile struct {
	ProfileID    string `db:"profile_id"`
	DisplayName  string `db:"display_name"`
	BusinessName string `db:"business_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	AuditFields
}
