package models

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash, never serialized
}

// BootstrapUser is a credential pair created at startup when missing.
type BootstrapUser struct {
	Username string
	Password string
}
