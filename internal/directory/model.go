package directory

import "strings"

// Identity is a registered user's credential record. Email is the unique key;
// uniqueness is decided on the normalized (lowercased) form while the stored
// value keeps the casing the user entered.
type Identity struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NormalizeEmail lowercases an email for comparison. Stored identities keep
// their original casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}
