package models

import "time"

// Comment belongs to exactly one post and one user; both references are
// strong, so deleting either side requires explicit cleanup of the comment.
type Comment struct {
	ID        string    `json:"_id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"-"`
	Body      string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	// User is populated when the comment is returned to clients.
	User *UserRef `json:"userId,omitempty"`
}
