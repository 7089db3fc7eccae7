package dto

// CreatePostRequest carries the payload for creating a post in a community.
// The client is trusted, no field constraints are enforced beyond JSON shape.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateCommentRequest carries the payload for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content"`
}
