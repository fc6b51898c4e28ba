package models

// User represents a registered account in the system
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"` // unique, case-sensitive
	Email        string `json:"email"`    // unique, case-sensitive
	PasswordHash string `json:"-"`        // bcrypt hash, never serialized
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
}
