// Package common contains shared constants and sentinel errors.
package common

// Role values stored on a user record.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AuthCookieName is the cookie carrying the bearer token for browser
// clients. The Authorization header takes precedence when both are set.
const AuthCookieName = "token"
