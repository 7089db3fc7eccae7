package models

// User defines a registered member of the platform
type User struct {
	ID                string   `json:"id" example:"1"`
	Username          string   `json:"username" example:"moviebuff123"`
	Email             string   `json:"email" example:"john@example.com"`
	Password          string   `json:"-"` // bcrypt hash, excluded from JSON
	Avatar            string   `json:"avatar" example:"https://api.dicebear.com/7.x/avataaars/svg?seed=John"`
	FavoriteGenres    []string `json:"favoriteGenres"`
	JoinedCommunities []string `json:"joinedCommunities"`
}

// HasJoinedCommunity reports whether the user already joined the given community
func (u *User) HasJoinedCommunity(communityID string) bool {
	for _, id := range u.JoinedCommunities {
		if id == communityID {
			return true
		}
	}
	return false
}
