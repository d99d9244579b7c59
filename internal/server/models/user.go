// Package models defines the persistent records of the blog backend.
// JSON tags follow the wire format the frontend already speaks.
package models

import "time"

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"_id"`
	FullName     string    `json:"FullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserRef is the projection of a user embedded in posts and comments
// (author, commenter).
type UserRef struct {
	ID           string `json:"_id"`
	FullName     string `json:"FullName"`
	ProfileImage string `json:"profile,omitempty"`
}

// Ref returns the embeddable projection of the user.
func (u *User) Ref() *UserRef {
	return &UserRef{ID: u.ID, FullName: u.FullName, ProfileImage: u.ProfileImage}
}
