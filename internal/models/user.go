package models

// User is a row of the users table.
type User struct {
	UserID     int64  `db:"user_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Credential string `db:"credential"`
	AuditFields
}
