package models

import "time"

// Post is a blog entry. AuthorID is a weak reference: the author may be
// deleted without blocking the post, in which case Author resolves to nil.
type Post struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	Image       string    `json:"image,omitempty"`
	AuthorID    string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Author is populated on single-post reads.
	Author *UserRef `json:"author,omitempty"`

	// Comments are populated on single-post reads, newest first.
	Comments []*Comment `json:"comment,omitempty"`
}
