package models

import "time"

// Comment represents a reply to a post. Comments are never updated or deleted.
type Comment struct {
	ID             string    `json:"id"`
	PostID         string    `json:"postId"`
	Content        string    `json:"content"`
	Author         string    `json:"author"`
	AuthorUsername string    `json:"authorUsername"`
	CreatedAt      time.Time `json:"createdAt"`
	Upvotes        int       `json:"upvotes"`
	Downvotes      int       `json:"downvotes"`
}
