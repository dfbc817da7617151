package models

// Identity is the authenticated caller carried by a valid session.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
