package domain

// User represents an owner of ledger entries.
// Email is unique across users; that invariant is enforced by the user service and the users table.
type User struct {
	UserID     int64  `json:"userID"` // Primary Key, assigned by storage
	Name       string `json:"name"`
	Email      string `json:"email"`
	Credential string `json:"-"` // Compared as-is on authentication, never serialized
	AuditFields
}
