package domain

// Profile is the account that owns every other entity. ProfileID is the
// subject issued by the identity provider.
type Profile struct {
	ProfileID    string `json:"profileID"`
	DisplayName  string `json:"displayName"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AuditFields
}
