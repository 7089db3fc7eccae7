package models

import "time"

// Post represents a discussion entry inside a community. Author fields are
// snapshotted from the acting user at creation time.
type Post struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Author         string    `json:"author"`
	AuthorUsername string    `json:"authorUsername"`
	CommunityID    string    `json:"communityId"`
	CreatedAt      time.Time `json:"createdAt"`
	Upvotes        int       `json:"upvotes"`
	Downvotes      int       `json:"downvotes"`
	CommentCount   int       `json:"commentCount"`
}
