package models

// Community represents a discussion space scoped to one or more related movies
type Community struct {
	ID            string   `json:"id" example:"marvel-movies"`
	Name          string   `json:"name" example:"Marvel Movies"`
	Description   string   `json:"description"`
	MemberCount   int      `json:"memberCount" example:"15420"`
	CreatedBy     string   `json:"createdBy" example:"1"`
	RelatedMovies []string `json:"relatedMovies"`
	Banner        string   `json:"banner"`
}
