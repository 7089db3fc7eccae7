package dto

// SuccessResponse represents a standard success response for API endpoints
// that only carry a confirmation message
type SuccessResponse struct {
	Message string `json:"message" example:"Joined community successfully"`
}
