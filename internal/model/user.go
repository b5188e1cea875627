package model

import "time"

// User represents an application account as stored in the `users` table.
// Each field corresponds to a column in the database.  The json tags are
// omitted because these structs are used internally by the repository
// layer; handlers define their own response types where needed.
//
// Fields:
//
//	ID           – primary key identifier of the account, immutable once assigned.
//	Username     – unique login name.
//	Email        – unique email address.
//	PasswordHash – bcrypt hashed password.
//	CreatedAt    – timestamp of registration.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
