package models

import "strings"

// Account is a locally stored user account.
// Pass is an opaque string compared verbatim; it is never hashed.
type Account struct {
	Username  string `json:"username"`
	Pass      string `json:"pass"`
	CreatedAt string `json:"created_at"`
}

// AccountKey returns the key accounts are stored under.
func AccountKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Session is the "current user" marker. At most one exists at a time.
type Session struct {
	Username string `json:"username"`
}
