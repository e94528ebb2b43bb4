// Package models defines the data records persisted by userreg.
package models

// User is a single registered account.
// Password is stored verbatim.
type User struct {
	UserName string
	Email    string
	Password string
}
