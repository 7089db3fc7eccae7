package dto

// RegisterRequest carries the registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"moviebuff123"`
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required" example:"password"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"john@example.com"`
	Password string `json:"password" binding:"required" example:"password"`
}

// UserResponse is the public projection of a user. The password hash is
// never part of it.
type UserResponse struct {
	ID       string `json:"id" example:"1"`
	Username string `json:"username" example:"moviebuff123"`
	Email    string `json:"email" example:"john@example.com"`
	Avatar   string `json:"avatar"`
}

// AuthResponse is returned from register and login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
